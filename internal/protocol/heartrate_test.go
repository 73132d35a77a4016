package protocol

import (
	"errors"
	"testing"
)

func TestHeartRateNoDataSentinel(t *testing.T) {
	f := frame(t, ChannelUART, 0x15, 0x00, 0xff, 0x05)
	state, reply, err := newHeartRateState(f)
	if err != nil {
		t.Fatalf("newHeartRateState: %v", err)
	}
	if state != nil {
		t.Fatalf("state = %#v, want nil for the no-data sentinel", state)
	}
	hr, ok := reply.(HeartRateReply)
	if !ok || hr.Rates != nil {
		t.Fatalf("reply = %#v, want empty HeartRateReply", reply)
	}
}

func TestHeartRateRejectsWrongInitialSeq(t *testing.T) {
	f := frame(t, ChannelUART, 0x15, 0x01, 0x02, 0x05)
	_, _, err := newHeartRateState(f)
	if !errors.Is(err, ErrProtocolState) {
		t.Fatalf("err = %v, want ErrProtocolState", err)
	}
}

func TestHeartRateRejectsOutOfOrderContinuation(t *testing.T) {
	start := frame(t, ChannelUART, 0x15, 0x00, 0x02, 0x05)
	state, _, err := newHeartRateState(start)
	if err != nil {
		t.Fatalf("newHeartRateState: %v", err)
	}
	bad := frame(t, ChannelUART, 0x15, 0x02) // skipped the seq=1 datetime frame
	_, err = state.step(bad)
	if !errors.Is(err, ErrProtocolState) {
		t.Fatalf("err = %v, want ErrProtocolState", err)
	}
}
