package protocol

import (
	"fmt"
	"time"
)

// decodeSleep decodes a reassembled 0xbc/kind=0x27 buffer into a
// SleepReply. Buffer layout: [days, <day_block> x days]; each day block is
// [days_ago, day_bytes, start_min_LE_u16, end_min_LE_u16, <stage,minutes> x k]
// with k = (day_bytes-4)/2.
func decodeSleep(buf []byte, clock Clock) (CommandReply, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: sleep buffer empty", ErrDecoder)
	}
	days := int(buf[0])
	offset := 1
	today := clock.Today()

	var sessions []SleepSession
	for d := 0; d < days; d++ {
		if offset+2 > len(buf) {
			return nil, fmt.Errorf("%w: sleep buffer truncated before day %d header", ErrDecoder, d)
		}
		daysAgo := int(buf[offset])
		dayBytes := int(buf[offset+1])
		offset += 2

		if dayBytes < 4 || offset+dayBytes > len(buf) {
			return nil, fmt.Errorf("%w: sleep buffer truncated in day %d body", ErrDecoder, d)
		}
		startMin := leUint16(buf[offset : offset+2])
		endMin := leUint16(buf[offset+2 : offset+4])
		k := (dayBytes - 4) / 2

		anchor := today.AddDate(0, 0, -daysAgo)
		var start time.Time
		if startMin > endMin {
			start = anchor.Add(time.Duration(startMin) * time.Minute)
		} else {
			start = anchor.AddDate(0, 0, -1).Add(time.Duration(startMin) * time.Minute)
		}
		end := anchor.Add(time.Duration(endMin) * time.Minute)

		stagesOffset := offset + 4
		var stages []SleepStage
		for i := 0; i < k; i++ {
			code := buf[stagesOffset+i*2]
			minutes := int(buf[stagesOffset+i*2+1])
			if code == 0 {
				continue
			}
			kind, err := sleepStageKind(code)
			if err != nil {
				return nil, err
			}
			stages = append(stages, SleepStage{Kind: kind, Minutes: minutes})
		}

		sessions = append(sessions, SleepSession{Start: start, End: end, Stages: stages})
		offset += dayBytes
	}

	return SleepReply{Sessions: sessions}, nil
}

func sleepStageKind(code byte) (SleepStageKind, error) {
	switch code {
	case sleepStageLight:
		return SleepStageLight, nil
	case sleepStageDeep:
		return SleepStageDeep, nil
	case sleepStageREM:
		return SleepStageREM, nil
	case sleepStageAwake:
		return SleepStageAwake, nil
	default:
		return SleepStageUnknown, fmt.Errorf("%w: unrecognized sleep stage code 0x%02x", ErrDecoder, code)
	}
}
