package protocol

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeSleepEmpty(t *testing.T) {
	reply, err := decodeSleep([]byte{0x00}, testClock())
	if err != nil {
		t.Fatalf("decodeSleep: %v", err)
	}
	sr := reply.(SleepReply)
	if len(sr.Sessions) != 0 {
		t.Errorf("len(Sessions) = %d, want 0", len(sr.Sessions))
	}
}

func TestDecodeSleepSingleDayAllStages(t *testing.T) {
	// One day, days_ago=1, start=22:00 (1320min) > end=06:00 (360min) so
	// start anchors to (today - 1 day) + 1320min rather than the prior
	// calendar day. Four 30-minute stages covering light/deep/rem/awake.
	buf := []byte{
		0x01,       // days
		0x01,       // days_ago
		4 + 4*2,    // day_bytes = 4 header + 4 stage pairs
		byte(1320 & 0xff), byte(1320 >> 8), // start_min LE
		byte(360 & 0xff), byte(360 >> 8), // end_min LE
		sleepStageLight, 30,
		sleepStageDeep, 30,
		sleepStageREM, 30,
		sleepStageAwake, 30,
	}
	reply, err := decodeSleep(buf, testClock())
	if err != nil {
		t.Fatalf("decodeSleep: %v", err)
	}
	sr := reply.(SleepReply)
	if len(sr.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(sr.Sessions))
	}
	sess := sr.Sessions[0]
	if len(sess.Stages) != 4 {
		t.Fatalf("len(Stages) = %d, want 4", len(sess.Stages))
	}
	kinds := []SleepStageKind{SleepStageLight, SleepStageDeep, SleepStageREM, SleepStageAwake}
	for i, k := range kinds {
		if sess.Stages[i].Kind != k || sess.Stages[i].Minutes != 30 {
			t.Errorf("Stages[%d] = %#v, want {%v 30}", i, sess.Stages[i], k)
		}
	}

	clockToday := testClock().Today()
	anchor := clockToday.AddDate(0, 0, -1)
	wantStart := anchor.Add(1320 * time.Minute)
	wantEnd := anchor.Add(360 * time.Minute)
	if !sess.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", sess.Start, wantStart)
	}
	if !sess.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", sess.End, wantEnd)
	}
}

func TestDecodeSleepPreviousDayWhenStartBeforeEnd(t *testing.T) {
	// start=60min < end=120min: the session's start falls on the
	// calendar day before the anchor.
	buf := []byte{
		0x01,
		0x00, // days_ago
		4,    // no stages
		byte(60), byte(60 >> 8),
		byte(120), byte(120 >> 8),
	}
	reply, err := decodeSleep(buf, testClock())
	if err != nil {
		t.Fatalf("decodeSleep: %v", err)
	}
	sess := reply.(SleepReply).Sessions[0]

	anchor := testClock().Today()
	wantStart := anchor.AddDate(0, 0, -1).Add(60 * time.Minute)
	wantEnd := anchor.Add(120 * time.Minute)
	if !sess.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", sess.Start, wantStart)
	}
	if !sess.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", sess.End, wantEnd)
	}
}

func TestDecodeSleepUnknownStageCode(t *testing.T) {
	buf := []byte{
		0x01,
		0x00,
		4 + 2,
		0, 0,
		0, 0,
		0x7f, 10, // unrecognized code
	}
	_, err := decodeSleep(buf, testClock())
	if !errors.Is(err, ErrDecoder) {
		t.Fatalf("err = %v, want ErrDecoder", err)
	}
}

func TestDecodeSleepTruncatedBuffer(t *testing.T) {
	_, err := decodeSleep([]byte{0x01, 0x00}, testClock())
	if !errors.Is(err, ErrDecoder) {
		t.Fatalf("err = %v, want ErrDecoder", err)
	}
}
