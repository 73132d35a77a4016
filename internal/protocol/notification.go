package protocol

// decodeNotification decodes the UART channel's unsolicited "notification
// bus" frame: [0x73, subtype, ...]. Unrecognized subtypes degrade to
// Unknown rather than erroring, matching every other family's handling of
// unfamiliar firmware traffic.
func decodeNotification(f Frame) CommandReply {
	p := f.Payload
	subtype := p[1]

	switch subtype {
	case notifyNewHeartRate:
		return NewDataAvailable{Kind: DataKindHeartRate}
	case notifyNewOxygen:
		return NewDataAvailable{Kind: DataKindOxygen}
	case notifyNewSteps:
		return NewDataAvailable{Kind: DataKindSteps}
	case notifyBatteryLevel:
		return BatteryLevel{Level: p[2]}
	case notifyLiveActivity:
		steps := uint32(p[2])<<16 | uint32(p[3])<<8 | uint32(p[4])
		calories := uint32(p[5])<<16 | uint32(p[6])<<8 | uint32(p[7])
		distance := uint32(p[8])<<16 | uint32(p[9])<<8 | uint32(p[10])
		return LiveActivity{Steps: steps, Calories: float32(calories) / 10, Distance: distance}
	default:
		return Unknown{Channel: f.Channel, Opcode: f.Opcode(), Raw: append([]byte{}, p[:]...)}
	}
}
