package protocol

import "testing"

func TestBigDataSingleFrameDecodesImmediately(t *testing.T) {
	// length=1: the start frame's own payload already satisfies the
	// declared length, so decoding happens without any continuation frame.
	start := frame(t, ChannelV2, 0xbc, bigDataKindSleep, 0x01, 0x00, 0, 0, 0x00)
	state, reply, err := newBigDataState(start, testClock())
	if err != nil {
		t.Fatalf("newBigDataState: %v", err)
	}
	if state != nil {
		t.Fatalf("state = %#v, want nil (already complete)", state)
	}
	if _, ok := reply.(SleepReply); !ok {
		t.Fatalf("reply = %#v (%T), want SleepReply", reply, reply)
	}
}

func TestBigDataMultiFrameReassembly(t *testing.T) {
	// Declare a length longer than one frame can carry so the state
	// machine must accumulate across continuation frames before decoding.
	// length=30: the 10-byte start payload plus one 16-byte continuation
	// is still short, so only the second continuation completes it.
	start := frame(t, ChannelV2, 0xbc, bigDataKindSleep, 0x1e, 0x00, 0, 0, 0x00)
	state, reply, err := newBigDataState(start, testClock())
	if err != nil {
		t.Fatalf("newBigDataState: %v", err)
	}
	if state == nil || reply != nil {
		t.Fatalf("length=30 start frame should stay partial; state=%#v reply=%#v", state, reply)
	}
	cont := frame(t, ChannelV2)
	reply, err = state.step(cont)
	if err != nil || reply != nil {
		t.Fatalf("first continuation: reply=%#v err=%v, want nil, nil (26 of 30 bytes)", reply, err)
	}
	reply, err = state.step(cont)
	if err != nil {
		t.Fatalf("second continuation: %v", err)
	}
	if _, ok := reply.(SleepReply); !ok {
		t.Fatalf("reply = %#v (%T), want SleepReply", reply, reply)
	}
}

func TestBigDataUnknownKindDegrades(t *testing.T) {
	start := frame(t, ChannelV2, 0xbc, 0x99, 0x01, 0x00, 0, 0, 0xaa)
	_, reply, err := newBigDataState(start, testClock())
	if err != nil {
		t.Fatalf("newBigDataState: %v", err)
	}
	u, ok := reply.(Unknown)
	if !ok {
		t.Fatalf("reply = %#v (%T), want Unknown", reply, reply)
	}
	if u.Channel != ChannelV2 || u.Opcode != opBigDataV2 {
		t.Errorf("Unknown = %#v, want channel=v2 opcode=0xbc", u)
	}
}

func TestBigDataStepAccumulatesAcrossFrames(t *testing.T) {
	// length=20: the 10-byte start-frame payload isn't enough, so step
	// must be called with a continuation frame before decoding fires.
	start := frame(t, ChannelV2, 0xbc, bigDataKindSleep, 0x14, 0x00, 0, 0, 0x00)
	state, reply, err := newBigDataState(start, testClock())
	if err != nil {
		t.Fatalf("newBigDataState: %v", err)
	}
	if reply != nil {
		t.Fatalf("reply = %#v, want nil (still partial)", reply)
	}
	cont := frame(t, ChannelV2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	reply, err = state.step(cont)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := reply.(SleepReply); !ok {
		t.Fatalf("reply = %#v (%T), want SleepReply", reply, reply)
	}
}

func TestBigDataStepAcceptsShortFinalV2Frame(t *testing.T) {
	// length=14: the 10-byte start-frame payload needs exactly 4 more
	// bytes, which real firmware delivers as a continuation frame shorter
	// than 16 bytes rather than padding it out.
	start := frame(t, ChannelV2, 0xbc, bigDataKindSleep, 0x0e, 0x00, 0, 0, 0x00)
	state, reply, err := newBigDataState(start, testClock())
	if err != nil {
		t.Fatalf("newBigDataState: %v", err)
	}
	if reply != nil {
		t.Fatalf("reply = %#v, want nil (still partial)", reply)
	}

	cont, err := NewFrame(ChannelV2, []byte{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	reply, err = state.step(cont)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := reply.(SleepReply); !ok {
		t.Fatalf("reply = %#v (%T), want SleepReply", reply, reply)
	}
}
