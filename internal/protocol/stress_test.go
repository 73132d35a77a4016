package protocol

import "testing"

func TestStressNoDataSentinel(t *testing.T) {
	f := frame(t, ChannelUART, 0x37, 0xff)
	state, reply, err := newStressState(f)
	if err != nil {
		t.Fatalf("newStressState: %v", err)
	}
	if state != nil {
		t.Fatalf("state = %#v, want nil", state)
	}
	sr, ok := reply.(StressReply)
	if !ok || sr.Measurements != nil {
		t.Fatalf("reply = %#v, want empty StressReply", reply)
	}
}

func TestStressSingleFrameBatch(t *testing.T) {
	// length=2 (target=1), interval=5: the whole batch fits in the
	// seq=1 continuation frame and completes without ever reaching
	// stReceiving.
	p := NewParser(testClock())
	start := frame(t, ChannelUART, 0x37, 0x00, 0x02, 0x05)
	if reply, err := p.Handle(start); err != nil || reply != nil {
		t.Fatalf("Handle start: reply=%#v err=%v", reply, err)
	}
	cont := frame(t, ChannelUART, 0x37, 0x01, 70, 71, 72, 73, 74, 75, 76, 77, 78, 79, 80, 81)
	reply, err := p.Handle(cont)
	if err != nil {
		t.Fatalf("Handle continuation: %v", err)
	}
	sr, ok := reply.(StressReply)
	if !ok {
		t.Fatalf("reply = %#v (%T), want StressReply", reply, reply)
	}
	if sr.MinutesApart != 5 {
		t.Errorf("MinutesApart = %d, want 5", sr.MinutesApart)
	}
	if len(sr.Measurements) != 12 {
		t.Errorf("len(Measurements) = %d, want 12", len(sr.Measurements))
	}
}

func TestStressMultiFrameBatch(t *testing.T) {
	p := NewParser(testClock())
	start := frame(t, ChannelUART, 0x37, 0x00, 0x03, 0x05)
	if reply, err := p.Handle(start); err != nil || reply != nil {
		t.Fatalf("Handle start: reply=%#v err=%v", reply, err)
	}
	first := frame(t, ChannelUART, 0x37, 0x01, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	if reply, err := p.Handle(first); err != nil || reply != nil {
		t.Fatalf("Handle first continuation: reply=%#v err=%v", reply, err)
	}
	second := frame(t, ChannelUART, 0x37, 0x02, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	reply, err := p.Handle(second)
	if err != nil {
		t.Fatalf("Handle second continuation: %v", err)
	}
	sr, ok := reply.(StressReply)
	if !ok {
		t.Fatalf("reply = %#v (%T), want StressReply", reply, reply)
	}
	if len(sr.Measurements) != 25 {
		t.Errorf("len(Measurements) = %d, want 25", len(sr.Measurements))
	}
}
