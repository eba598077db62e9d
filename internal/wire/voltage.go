package wire

// EncodeVoltage splits a non-negative voltage reading into the wire pair
// (integer_part, fractional_byte), where fractional_byte = floor((v -
// floor(v)) * 256). This intentionally diverges from the source's
// encode_voltage, which multiplies the fractional remainder by 100 while the
// decoder on both the source and this implementation divides by 256 — see
// DESIGN.md's Open Question decisions for why the 256-based round adopted
// here is correct and the source's is not.
func EncodeVoltage(v float64) (integerPart, fractionalByte uint8) {
	if v < 0 {
		v = 0
	}
	whole := uint8(v)
	frac := v - float64(whole)
	return whole, uint8(frac * 256)
}

// DecodeVoltage reassembles a voltage reading from its wire pair.
func DecodeVoltage(integerPart, fractionalByte uint8) float64 {
	return float64(integerPart) + float64(fractionalByte)/256
}
