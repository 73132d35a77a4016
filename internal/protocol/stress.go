package protocol

import "fmt"

type stressStage int

const (
	stLength stressStage = iota
	stReceiving
)

// stressState reassembles one ReadStress transaction.
type stressState struct {
	stage        stressStage
	target       uint8 // continuation seq at which the batch completes
	minutesApart uint8
	measurements []uint8
}

// newStressState starts a transaction from its initial frame:
// [0x37, byte1, length, interval, ...0]. byte1==0xff is the device's
// sentinel for "no data for the requested day".
func newStressState(f Frame) (*stressState, CommandReply, error) {
	p := f.Payload
	if p[1] == 0xff {
		return nil, StressReply{Measurements: nil, MinutesApart: 0}, nil
	}
	length := p[2]
	interval := p[3]
	return &stressState{stage: stLength, target: length - 1, minutesApart: interval}, nil, nil
}

// step folds one continuation frame into the transaction.
func (s *stressState) step(f Frame) (CommandReply, error) {
	p := f.Payload
	if p[0] != opSyncStress {
		return nil, fmt.Errorf("%w: stress frame tagged 0x%02x, want 0x37", ErrProtocolState, p[0])
	}
	seq := p[1]

	switch s.stage {
	case stLength:
		if seq != 1 {
			return nil, fmt.Errorf("%w: stress expected first continuation (seq=1), got seq=%d", ErrProtocolState, seq)
		}
		if s.target == 0 && p[2] == 0 {
			return StressReply{Measurements: nil, MinutesApart: s.minutesApart}, nil
		}
		s.measurements = append(s.measurements, p[3:15]...)
	case stReceiving:
		s.measurements = append(s.measurements, p[2:15]...)
	}

	if seq == s.target {
		return StressReply{Measurements: s.measurements, MinutesApart: s.minutesApart}, nil
	}
	s.stage = stReceiving
	return nil, nil
}
