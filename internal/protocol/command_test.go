package protocol

import "testing"

func sumChecksum(frame [16]byte) byte {
	var sum uint32
	for _, b := range frame[:15] {
		sum += uint32(b)
	}
	return byte(sum & 0xff)
}

func TestEncodeSyncSleepLayout(t *testing.T) {
	frame := SyncSleep{}.Encode()
	want := [7]byte{0xbc, 0x27, 0x01, 0x00, 0xff, 0x00, 0xff}
	for i, b := range want {
		if frame[i] != b {
			t.Errorf("frame[%d] = 0x%02x, want 0x%02x", i, frame[i], b)
		}
	}
	if Route(SyncSleep{}) != ChannelV2 {
		t.Errorf("Route(SyncSleep{}) = %v, want ChannelV2", Route(SyncSleep{}))
	}
}

func TestEncodeSyncOxygenLayout(t *testing.T) {
	frame := SyncOxygen{}.Encode()
	want := [7]byte{0xbc, 0x2a, 0x01, 0x00, 0xff, 0x00, 0xff}
	for i, b := range want {
		if frame[i] != b {
			t.Errorf("frame[%d] = 0x%02x, want 0x%02x", i, frame[i], b)
		}
	}
	if Route(SyncOxygen{}) != ChannelV2 {
		t.Errorf("Route(SyncOxygen{}) = %v, want ChannelV2", Route(SyncOxygen{}))
	}
}

func TestEncodeChecksumInvariant(t *testing.T) {
	cmds := []Command{
		ReadSportDetail{DayOffset: 1},
		ReadHeartRate{Timestamp: 1_700_000_000},
		ReadStress{DayOffset: 2},
		GetHeartRateSettings{},
		SetHeartRateSettings{Enabled: true, Interval: 5},
		StartRealTimeHeartRate{},
		ContinueRealTimeHeartRate{},
		StopRealTimeHeartRate{},
		StartSpO2{},
		StopSpO2{},
		Reboot{},
		SetTime{Year: 1970, Month: 1, Day: 1, Hour: 0, Minute: 0, Second: 0},
		BlinkTwice{},
		BatteryInfo{},
		SyncSleep{},
		SyncOxygen{},
	}
	for _, c := range cmds {
		frame := c.Encode()
		if len(frame) != 16 {
			t.Fatalf("%T: encoded frame is %d bytes, want 16", c, len(frame))
		}
		if got, want := frame[15], sumChecksum(frame); got != want {
			t.Errorf("%T: checksum byte = 0x%02x, want 0x%02x", c, got, want)
		}
	}
}

// S4 — SetTime encode.
func TestSetTimeEncode(t *testing.T) {
	c := SetTime{Year: 1970, Month: 1, Day: 1, Hour: 0, Minute: 0, Second: 0, Language: 0}
	got := c.Encode()
	want := [16]byte{0x01, 0x46, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}
	want[15] = sumChecksum(want)
	if got != want {
		t.Errorf("SetTime.Encode() = %#v, want %#v", got, want)
	}
	if got[1] != 0x46 {
		t.Errorf("year byte = 0x%02x, want 0x46 (1970 %% 100)", got[1])
	}
}

func TestRawTruncation(t *testing.T) {
	dropped := -1
	c := Raw{
		Bytes:      make([]byte, 20),
		onTruncate: func(d int) { dropped = d },
	}
	frame := c.Encode()
	if dropped != 5 {
		t.Errorf("onTruncate called with %d dropped bytes, want 5", dropped)
	}
	if len(frame) != 16 {
		t.Fatalf("Raw.Encode() produced %d bytes, want 16", len(frame))
	}
}

func TestRouteBigDataAndNotificationGoToV2(t *testing.T) {
	cases := []struct {
		cmd  Command
		want Channel
	}{
		{ReadSportDetail{}, ChannelUART},
		{ReadHeartRate{}, ChannelUART},
		{ReadStress{}, ChannelUART},
		{BatteryInfo{}, ChannelUART},
		{Raw{Bytes: []byte{opBigDataV2}}, ChannelV2},
		{Raw{Bytes: []byte{opNotification}}, ChannelV2},
	}
	for _, tc := range cases {
		if got := Route(tc.cmd); got != tc.want {
			t.Errorf("Route(%T) = %v, want %v", tc.cmd, got, tc.want)
		}
	}
}
