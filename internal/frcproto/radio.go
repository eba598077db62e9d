package frcproto

// BuildRadioPacket always returns an empty datagram — the 2015 protocol
// does not send the radio/bridge any specialized payload.
func BuildRadioPacket() []byte {
	return []byte{}
}

// ParseRadioPacket discards any inbound radio datagram and reports
// failure: the DS does not interact with the radio directly, so there is
// no success signal to feed the watchdog with.
func ParseRadioPacket(data []byte) bool {
	return false
}
