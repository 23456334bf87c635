package maestro

// Command opcodes, per the Pololu serial protocol. On the wire they are
// sent under the chained-device preamble with the high bit stripped.
const (
	opSetTarget          = 0x04
	opSetSpeed           = 0x07
	opSetAcceleration    = 0x09
	opGetPosition        = 0x10
	opGetMovingState     = 0x13
	opSetMultipleTargets = 0x1F
	opGoHome             = 0x22
)

const (
	syncByte        = 0xAA
	devicePrimary   = 0x0C
	deviceSecondary = 0x0D

	channelsPerDevice = 12
)

const (
	// Channels is the width of the merged channel space: two chained
	// devices of twelve channels each.
	Channels = 24

	// MinPulse and MaxPulse bound the pulse widths (in us) the devices
	// will accept as targets.
	MinPulse = 736
	MaxPulse = 2272
)

// deviceFor maps a logical channel onto the device which owns it and
// the channel's local index on that device.
func deviceFor(channel int) (device byte, local byte) {
	if channel < channelsPerDevice {
		return devicePrimary, byte(channel) & 0x7F
	}
	return deviceSecondary, byte(channel-channelsPerDevice) & 0x7F
}

// encodeTarget splits a pulse width into the two 7-bit data bytes of a
// target command. The protocol counts in quarter-microseconds.
func encodeTarget(pulse int) (lo, hi byte) {
	q := pulse * 4
	return byte(q & 0x7F), byte((q >> 7) & 0x7F)
}

// decodeTarget reverses encodeTarget.
func decodeTarget(lo, hi byte) int {
	return (int(lo) | int(hi)<<7) / 4
}

// decodePosition converts a position response into a pulse width.
// Unlike command data, responses use full 8-bit bytes, little endian.
func decodePosition(lo, hi byte) int {
	return (int(lo) | int(hi)<<8) / 4
}

// command frames a single device-addressed command.
func command(device byte, op byte, payload ...byte) []byte {
	cmd := make([]byte, 0, 3+len(payload))
	cmd = append(cmd, syncByte, device, op&0x7F)
	return append(cmd, payload...)
}
