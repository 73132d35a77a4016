package protocol

import "testing"

func TestCommandJSONRoundTripsSetTime(t *testing.T) {
	want := SetTime{Year: 2026, Month: 7, Day: 30, Hour: 12, Minute: 0, Second: 0, Language: 1}

	data, err := MarshalCommandJSON(want)
	if err != nil {
		t.Fatalf("MarshalCommandJSON() error = %v", err)
	}

	got, err := UnmarshalCommandJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalCommandJSON() error = %v", err)
	}
	if got != Command(want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestCommandJSONRoundTripsZeroFieldCommand(t *testing.T) {
	data, err := MarshalCommandJSON(BatteryInfo{})
	if err != nil {
		t.Fatalf("MarshalCommandJSON() error = %v", err)
	}

	got, err := UnmarshalCommandJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalCommandJSON() error = %v", err)
	}
	if _, ok := got.(BatteryInfo); !ok {
		t.Errorf("UnmarshalCommandJSON() = %T, want BatteryInfo", got)
	}
}

func TestCommandJSONRoundTripsSyncSleepAndOxygen(t *testing.T) {
	for _, want := range []Command{SyncSleep{}, SyncOxygen{}} {
		data, err := MarshalCommandJSON(want)
		if err != nil {
			t.Fatalf("MarshalCommandJSON(%T) error = %v", want, err)
		}
		got, err := UnmarshalCommandJSON(data)
		if err != nil {
			t.Fatalf("UnmarshalCommandJSON(%T) error = %v", want, err)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestCommandJSONUnknownTagErrors(t *testing.T) {
	_, err := UnmarshalCommandJSON([]byte(`{"command":"not_a_real_command","data":{}}`))
	if err == nil {
		t.Fatal("UnmarshalCommandJSON() expected an error for an unrecognized tag")
	}
}

func TestCommandJSONRawRoundTrips(t *testing.T) {
	want := Raw{Bytes: []byte{0x7e, 0x01, 0x02}}

	data, err := MarshalCommandJSON(want)
	if err != nil {
		t.Fatalf("MarshalCommandJSON() error = %v", err)
	}

	got, err := UnmarshalCommandJSON(data)
	if err != nil {
		t.Fatalf("UnmarshalCommandJSON() error = %v", err)
	}
	raw, ok := got.(Raw)
	if !ok {
		t.Fatalf("UnmarshalCommandJSON() = %T, want Raw", got)
	}
	if string(raw.Bytes) != string(want.Bytes) {
		t.Errorf("Raw.Bytes = %v, want %v", raw.Bytes, want.Bytes)
	}
}
