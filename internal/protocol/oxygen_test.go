package protocol

import (
	"testing"
	"time"
)

func TestDecodeOxygenEmpty(t *testing.T) {
	reply, err := decodeOxygen([]byte{0x00}, testClock())
	if err != nil {
		t.Fatalf("decodeOxygen: %v", err)
	}
	or := reply.(OxygenReply)
	if len(or.Measurements) != 0 {
		t.Errorf("len(Measurements) = %d, want 0", len(or.Measurements))
	}
}

func TestDecodeOxygenSkipsZeroPairs(t *testing.T) {
	buf := make([]byte, 0, 1+1+48)
	buf = append(buf, 0x01, 0x00) // days=1, days_ago=0
	for h := 0; h < 24; h++ {
		if h == 3 {
			buf = append(buf, 90, 95)
		} else {
			buf = append(buf, 0, 0)
		}
	}
	reply, err := decodeOxygen(buf, testClock())
	if err != nil {
		t.Fatalf("decodeOxygen: %v", err)
	}
	or := reply.(OxygenReply)
	if len(or.Measurements) != 1 {
		t.Fatalf("len(Measurements) = %d, want 1", len(or.Measurements))
	}
	m := or.Measurements[0]
	if m.Min != 90 || m.Max != 95 {
		t.Errorf("Measurements[0] = %#v, want min=90 max=95", m)
	}
	wantWhen := testClock().Today().Add(3 * time.Hour)
	if !m.When.Equal(wantWhen) {
		t.Errorf("When = %v, want %v", m.When, wantWhen)
	}
}

func TestDecodeOxygenTruncatedDayStopsCleanly(t *testing.T) {
	buf := []byte{0x01, 0x00, 50, 60} // only one hourly pair present
	reply, err := decodeOxygen(buf, testClock())
	if err != nil {
		t.Fatalf("decodeOxygen: %v", err)
	}
	or := reply.(OxygenReply)
	if len(or.Measurements) != 1 {
		t.Fatalf("len(Measurements) = %d, want 1", len(or.Measurements))
	}
}
