package protocol

import (
	"fmt"
	"time"
)

// heartRateStage names where a heartRateState machine is in its lifecycle.
type heartRateStage int

const (
	hrLength heartRateStage = iota
	hrReceiving
	hrComplete
)

// heartRateState reassembles one ReadHeartRate transaction's follow-on
// frames into a HeartRateReply.
type heartRateState struct {
	stage heartRateStage
	size  uint8 // total follow-on frame count, including the datetime frame
	rng   uint8
	date  time.Time
	rates []uint8
}

// newHeartRateState starts a heart-rate transaction from its initial
// frame: [0x15, seq=0, size, range, ...0]. size==0xff is the device's
// sentinel for "no data for the requested day".
func newHeartRateState(f Frame) (*heartRateState, CommandReply, error) {
	p := f.Payload
	if p[1] != 0 {
		return nil, nil, fmt.Errorf("%w: heart rate initial frame seq=%d, want 0", ErrProtocolState, p[1])
	}
	size := p[2]
	rng := p[3]
	if size == 0xff {
		return nil, HeartRateReply{Date: time.Unix(0, 0).UTC(), Range: 0, Rates: nil}, nil
	}
	return &heartRateState{stage: hrLength, size: size, rng: rng}, nil, nil
}

// step folds one follow-on frame into the transaction. It returns a
// non-nil CommandReply only when the transaction completes.
func (s *heartRateState) step(f Frame) (CommandReply, error) {
	p := f.Payload
	seq := p[1]

	switch s.stage {
	case hrLength:
		if seq != 1 {
			return nil, fmt.Errorf("%w: heart rate expected datetime frame (seq=1), got seq=%d", ErrProtocolState, seq)
		}
		s.date = time.Unix(int64(leUint32(p[2:6])), 0).UTC()
		s.rates = append(s.rates, p[6:15]...)
		s.stage = hrReceiving
	case hrReceiving:
		if seq < 2 {
			return nil, fmt.Errorf("%w: heart rate received out-of-order seq=%d", ErrProtocolState, seq)
		}
		s.rates = append(s.rates, p[2:15]...)
	default:
		return nil, fmt.Errorf("%w: heart rate step after complete", ErrProtocolState)
	}

	if seq == s.size {
		s.stage = hrComplete
		return HeartRateReply{Date: s.date, Range: s.rng, Rates: s.rates}, nil
	}
	return nil, nil
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
