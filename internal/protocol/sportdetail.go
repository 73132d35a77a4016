package protocol

import "fmt"

func bcd(b byte) int { return int((b>>4)&0x0f)*10 + int(b&0x0f) }

func leUint16(b []byte) int { return int(b[0]) | int(b[1])<<8 }

// parseSportDetailRecord decodes the 12-byte record embedded in a
// SportDetail frame at bytes [1:13], returning the record plus its
// ordinal index and the batch total it reports.
func parseSportDetailRecord(p []byte, newCalProto bool) (rec SportDetail, index, total uint8) {
	rec.Year = bcd(p[1]) + 2000
	rec.Month = bcd(p[2])
	rec.Day = bcd(p[3])
	rec.TimeIndex = p[4]
	index = p[5]
	total = p[6]
	rec.Calories = leUint16(p[7:9])
	rec.Steps = leUint16(p[9:11])
	rec.Distance = leUint16(p[11:13])
	if newCalProto {
		rec.Calories *= 10
	}
	return rec, index, total
}

type sportDetailStage int

const (
	sdAwaitingFirst sportDetailStage = iota
	sdReceiving
)

// sportDetailState reassembles one ReadSportDetail transaction. The
// "new-calorie protocol" is signaled by an 0xf0 prelude frame that
// carries no record of its own; every subsequent frame (prelude or not)
// carries exactly one record, terminated when its ordinal index reaches
// total-1.
type sportDetailState struct {
	stage   sportDetailStage
	newCal  bool
	total   uint8
	packets []SportDetail
}

// newSportDetailState starts a transaction from its initial frame.
func newSportDetailState(f Frame) (*sportDetailState, CommandReply, error) {
	p := f.Payload
	if p[0] != opSyncActivity {
		return nil, nil, fmt.Errorf("%w: sport detail frame tagged 0x%02x, want 0x43", ErrProtocolState, p[0])
	}
	switch p[1] {
	case 0xff:
		return nil, SportDetailReply{Records: nil}, nil
	case 0xf0:
		return &sportDetailState{stage: sdAwaitingFirst, newCal: true}, nil, nil
	default:
		rec, index, total := parseSportDetailRecord(p, false)
		packets := []SportDetail{rec}
		if index == total-1 {
			return nil, SportDetailReply{Records: packets}, nil
		}
		return &sportDetailState{stage: sdReceiving, total: total, packets: packets}, nil, nil
	}
}

// step folds one continuation frame into the transaction.
func (s *sportDetailState) step(f Frame) (CommandReply, error) {
	p := f.Payload
	if p[0] != opSyncActivity {
		return nil, fmt.Errorf("%w: sport detail frame tagged 0x%02x, want 0x43", ErrProtocolState, p[0])
	}
	rec, index, total := parseSportDetailRecord(p, s.newCal)

	if s.stage == sdAwaitingFirst {
		s.total = total
	} else if total != s.total {
		return nil, fmt.Errorf("%w: sport detail batch total changed mid-batch (%d -> %d)", ErrProtocolState, s.total, total)
	}

	s.packets = append(s.packets, rec)
	s.stage = sdReceiving

	if index == total-1 {
		return SportDetailReply{Records: s.packets}, nil
	}
	return nil, nil
}
