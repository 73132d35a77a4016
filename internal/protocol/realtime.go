package protocol

// decodeRealTime decodes a real-time measurement push:
// [0x69, mode, status, value, ...]. status != 0 is always an error
// regardless of mode; mode 1 is heart rate, mode 3 is SpO2. Any other
// mode is surfaced as Unknown rather than guessed at, per the open
// question over undocumented mode bytes.
func decodeRealTime(f Frame) CommandReply {
	p := f.Payload
	mode, status, value := p[1], p[2], p[3]

	if status != 0 {
		return RealTimeError{Code: status}
	}
	switch mode {
	case 1:
		return RealTimeHeartRate{BPM: value}
	case 3:
		return RealTimeOxygen{Percent: value}
	default:
		return Unknown{Channel: f.Channel, Opcode: f.Opcode(), Raw: append([]byte{}, p[:]...)}
	}
}
