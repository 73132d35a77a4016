package protocol

import (
	"testing"
	"time"
)

func frame(t *testing.T, ch Channel, bytes ...byte) Frame {
	t.Helper()
	data := make([]byte, 16)
	copy(data, bytes)
	f, err := NewFrame(ch, data)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	return f
}

func testClock() FixedClock {
	return FixedClock(time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC))
}

// S1 — Battery, charging.
func TestParserBattery(t *testing.T) {
	p := NewParser(testClock())
	reply, err := p.Handle(frame(t, ChannelUART, 0x03, 0x02, 0x01))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := BatteryReply{Level: 2, Charging: true}
	if reply != want {
		t.Errorf("reply = %#v, want %#v", reply, want)
	}
}

// S2 — Heart-rate settings write-back.
func TestParserHeartRateSettings(t *testing.T) {
	p := NewParser(testClock())
	reply, err := p.Handle(frame(t, ChannelUART, 0x16, 0x00, 0x01, 0x7f))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := HeartRateSettingsReply{Enabled: true, Interval: 127}
	if reply != want {
		t.Errorf("reply = %#v, want %#v", reply, want)
	}
}

// S3 — Empty sport-detail batch.
func TestParserEmptySportDetail(t *testing.T) {
	p := NewParser(testClock())
	reply, err := p.Handle(frame(t, ChannelUART, 0x43, 0xff))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := SportDetailReply{Records: nil}
	if got, ok := reply.(SportDetailReply); !ok || len(got.Records) != len(want.Records) {
		t.Errorf("reply = %#v, want %#v", reply, want)
	}
}

func TestParserUnknownOpcodeDegrades(t *testing.T) {
	p := NewParser(testClock())
	reply, err := p.Handle(frame(t, ChannelUART, 0xee, 1, 2, 3))
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	u, ok := reply.(Unknown)
	if !ok {
		t.Fatalf("reply = %#v (%T), want Unknown", reply, reply)
	}
	if u.Opcode != 0xee || u.Channel != ChannelUART {
		t.Errorf("Unknown = %#v, want opcode 0xee on uart", u)
	}
}

func TestParserBigDataDiscardsStaleStateOnNewStart(t *testing.T) {
	p := NewParser(testClock())
	// Begin a sleep transaction declaring more bytes than one start frame
	// carries, so it stays partial...
	start := frame(t, ChannelV2, 0xbc, 0x27, 0x20, 0x00, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	reply, err := p.Handle(start)
	if err != nil {
		t.Fatalf("Handle start: %v", err)
	}
	if reply != nil {
		t.Fatalf("expected partial transaction, got reply %#v", reply)
	}
	// ...then a fresh start frame must discard that partial state rather
	// than folding into it.
	fresh := frame(t, ChannelV2, 0xbc, 0x27, 0x01, 0x00, 0, 0, 0x00)
	reply, err = p.Handle(fresh)
	if err != nil {
		t.Fatalf("Handle fresh start: %v", err)
	}
	if _, ok := reply.(SleepReply); !ok {
		t.Fatalf("reply = %#v (%T), want SleepReply from the fresh transaction", reply, reply)
	}
}

func TestParserHeartRateMultiFrame(t *testing.T) {
	p := NewParser(testClock())
	// size=2 follow-on frames: one datetime frame (seq=1), one data frame (seq=2).
	start := frame(t, ChannelUART, 0x15, 0x00, 0x02, 0x05)
	if reply, err := p.Handle(start); err != nil || reply != nil {
		t.Fatalf("Handle start: reply=%#v err=%v", reply, err)
	}
	dt := frame(t, ChannelUART, 0x15, 0x01, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if reply, err := p.Handle(dt); err != nil || reply != nil {
		t.Fatalf("Handle datetime frame: reply=%#v err=%v", reply, err)
	}
	data := frame(t, ChannelUART, 0x15, 0x02, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22)
	reply, err := p.Handle(data)
	if err != nil {
		t.Fatalf("Handle data frame: %v", err)
	}
	hr, ok := reply.(HeartRateReply)
	if !ok {
		t.Fatalf("reply = %#v (%T), want HeartRateReply", reply, reply)
	}
	if hr.Range != 5 {
		t.Errorf("Range = %d, want 5", hr.Range)
	}
	if len(hr.Rates) != 22 {
		t.Errorf("len(Rates) = %d, want 22", len(hr.Rates))
	}
}
