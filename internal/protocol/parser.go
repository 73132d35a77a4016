package protocol

import "fmt"

// Parser holds the partial state of every independent multi-frame
// transaction family and turns a stream of Frames into a stream of
// CommandReply values. It is not safe for concurrent use — feed it frames
// from a single goroutine (the stream adapter owns exactly one Parser).
type Parser struct {
	clock Clock

	hr *heartRateState
	sd *sportDetailState
	st *stressState
	bd *bigDataState
}

// NewParser constructs a Parser. clock supplies "today" to the big-data
// decoders; pass protocol.SystemClock{} in production and a FixedClock in
// tests.
func NewParser(clock Clock) *Parser {
	return &Parser{clock: clock}
}

// Handle folds one frame into the parser's state and returns the
// CommandReply it produced, if the frame completed a transaction or
// stood alone. A nil, nil result means the frame was consumed as a
// mid-transaction continuation with nothing yet to report.
func (p *Parser) Handle(f Frame) (CommandReply, error) {
	switch f.Channel {
	case ChannelUART:
		return p.handleUART(f)
	case ChannelV2:
		return p.handleV2(f)
	default:
		return nil, fmt.Errorf("%w: frame tagged with unrecognized channel %v", ErrProtocolState, f.Channel)
	}
}

func (p *Parser) handleUART(f Frame) (CommandReply, error) {
	op := f.Opcode()
	switch op {
	case opSetDateTime:
		return SetTimeAck{}, nil
	case opBattery:
		return BatteryReply{Level: f.Payload[1], Charging: f.Payload[2] > 0}, nil
	case opPowerOff:
		return RebootAck{}, nil
	case opBlink:
		return BlinkTwiceAck{}, nil
	case opSyncHeartRate:
		return p.handleHeartRate(f)
	case opAutoHRPref:
		if f.Payload[2] == 1 || f.Payload[2] == 2 {
			return HeartRateSettingsReply{Enabled: f.Payload[2] == 1, Interval: f.Payload[3]}, nil
		}
		return p.unknown(f), nil
	case opSyncStress:
		return p.handleStress(f)
	case opSyncActivity:
		return p.handleSportDetail(f)
	case opManualHeartRate:
		return decodeRealTime(f), nil
	case opStopRealTime:
		return StopRealTimeAck{}, nil
	case opNotification:
		return decodeNotification(f), nil
	default:
		return p.unknown(f), nil
	}
}

func (p *Parser) handleV2(f Frame) (CommandReply, error) {
	op := f.Opcode()
	if op == opBigDataV2 {
		if p.bd != nil {
			// A new start frame for an already-active family discards the
			// partial state and begins fresh.
			p.bd = nil
		}
		state, reply, err := newBigDataState(f, p.clock)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		p.bd = state
		return nil, nil
	}

	if p.bd == nil {
		return p.unknown(f), nil
	}
	reply, err := p.bd.step(f)
	if err != nil {
		p.bd = nil
		return nil, err
	}
	if reply != nil {
		p.bd = nil
	}
	return reply, nil
}

func (p *Parser) handleHeartRate(f Frame) (CommandReply, error) {
	if p.hr == nil {
		state, reply, err := newHeartRateState(f)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		p.hr = state
		return nil, nil
	}
	reply, err := p.hr.step(f)
	if err != nil {
		p.hr = nil
		return nil, err
	}
	if reply != nil {
		p.hr = nil
	}
	return reply, nil
}

func (p *Parser) handleSportDetail(f Frame) (CommandReply, error) {
	if p.sd == nil {
		state, reply, err := newSportDetailState(f)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		p.sd = state
		return nil, nil
	}
	reply, err := p.sd.step(f)
	if err != nil {
		p.sd = nil
		return nil, err
	}
	if reply != nil {
		p.sd = nil
	}
	return reply, nil
}

func (p *Parser) handleStress(f Frame) (CommandReply, error) {
	if p.st == nil {
		state, reply, err := newStressState(f)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
		p.st = state
		return nil, nil
	}
	reply, err := p.st.step(f)
	if err != nil {
		p.st = nil
		return nil, err
	}
	if reply != nil {
		p.st = nil
	}
	return reply, nil
}

func (p *Parser) unknown(f Frame) CommandReply {
	return Unknown{Channel: f.Channel, Opcode: f.Opcode(), Raw: append([]byte{}, f.Payload...)}
}
