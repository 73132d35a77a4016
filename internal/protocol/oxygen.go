package protocol

import (
	"fmt"
	"time"
)

// decodeOxygen decodes a reassembled 0xbc/kind=0x2a buffer into an
// OxygenReply. Buffer layout: [days, (days_ago, (min,max) x 24) x days].
// If the buffer ends partway through a day's 24 hourly pairs, the
// remaining hours are treated as absent rather than an error.
func decodeOxygen(buf []byte, clock Clock) (CommandReply, error) {
	if len(buf) < 1 {
		return nil, fmt.Errorf("%w: oxygen buffer empty", ErrDecoder)
	}
	days := int(buf[0])
	offset := 1
	today := clock.Today()

	var measurements []OxygenMeasurement
dayLoop:
	for d := 0; d < days; d++ {
		if offset >= len(buf) {
			break
		}
		daysAgo := int(buf[offset])
		offset++
		anchor := today.AddDate(0, 0, -daysAgo)

		for hour := 0; hour < 24; hour++ {
			if offset+2 > len(buf) {
				break dayLoop
			}
			min, max := buf[offset], buf[offset+1]
			offset += 2
			if min == 0 && max == 0 {
				continue
			}
			measurements = append(measurements, OxygenMeasurement{
				Min:  min,
				Max:  max,
				When: anchor.Add(time.Duration(hour) * time.Hour),
			})
		}
	}

	return OxygenReply{Measurements: measurements}, nil
}
