package dsprotocol

import "fmt"

// FMSAddress always returns the empty string: the FMS address is not
// derived from the team number, it is the source address of the most
// recently accepted FMS packet, which is a socket-layer concern outside
// this core (spec.md §6/§1 Non-goals).
func FMSAddress() string {
	return ""
}

// RadioAddress derives the radio bridge's link-local address from the
// team number: team 4499 -> 10.44.99.1.
func RadioAddress(teamNumber uint16) string {
	hi, lo := teamNumber/100, teamNumber%100
	return fmt.Sprintf("10.%d.%d.1", hi, lo)
}

// RobotAddress derives the roboRIO's mDNS hostname from the team number.
func RobotAddress(teamNumber uint16) string {
	return fmt.Sprintf("roboRIO-%d.local", teamNumber)
}
