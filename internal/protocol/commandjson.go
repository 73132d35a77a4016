package protocol

import (
	"encoding/json"
	"fmt"
)

// commandEnvelope is the JSON surface mirroring the tagged-union shape of
// Command: {"command": "...", "data": {...}}.
type commandEnvelope struct {
	Command string          `json:"command"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// MarshalCommandJSON renders a Command as a tagged JSON envelope.
func MarshalCommandJSON(cmd Command) ([]byte, error) {
	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	return json.Marshal(commandEnvelope{Command: commandTag(cmd), Data: data})
}

// UnmarshalCommandJSON parses a tagged JSON envelope produced by
// MarshalCommandJSON (or an equivalent caller) back into a concrete
// Command, ready to Encode.
func UnmarshalCommandJSON(raw []byte) (Command, error) {
	var env commandEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoder, err)
	}

	switch env.Command {
	case "read_sport_detail":
		var c ReadSportDetail
		return c, unmarshalData(env.Data, &c)
	case "read_heart_rate":
		var c ReadHeartRate
		return c, unmarshalData(env.Data, &c)
	case "read_stress":
		var c ReadStress
		return c, unmarshalData(env.Data, &c)
	case "get_heart_rate_settings":
		return GetHeartRateSettings{}, nil
	case "set_heart_rate_settings":
		var c SetHeartRateSettings
		return c, unmarshalData(env.Data, &c)
	case "start_real_time_heart_rate":
		return StartRealTimeHeartRate{}, nil
	case "continue_real_time_heart_rate":
		return ContinueRealTimeHeartRate{}, nil
	case "stop_real_time_heart_rate":
		return StopRealTimeHeartRate{}, nil
	case "start_spo2":
		return StartSpO2{}, nil
	case "stop_spo2":
		return StopSpO2{}, nil
	case "reboot":
		return Reboot{}, nil
	case "set_time":
		var c SetTime
		return c, unmarshalData(env.Data, &c)
	case "blink_twice":
		return BlinkTwice{}, nil
	case "battery_info":
		return BatteryInfo{}, nil
	case "sync_sleep":
		return SyncSleep{}, nil
	case "sync_oxygen":
		return SyncOxygen{}, nil
	case "raw":
		var c Raw
		return c, unmarshalData(env.Data, &c)
	default:
		return nil, fmt.Errorf("%w: unrecognized command tag %q", ErrDecoder, env.Command)
	}
}

func unmarshalData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecoder, err)
	}
	return nil
}

func commandTag(cmd Command) string {
	switch cmd.(type) {
	case ReadSportDetail:
		return "read_sport_detail"
	case ReadHeartRate:
		return "read_heart_rate"
	case ReadStress:
		return "read_stress"
	case GetHeartRateSettings:
		return "get_heart_rate_settings"
	case SetHeartRateSettings:
		return "set_heart_rate_settings"
	case StartRealTimeHeartRate:
		return "start_real_time_heart_rate"
	case ContinueRealTimeHeartRate:
		return "continue_real_time_heart_rate"
	case StopRealTimeHeartRate:
		return "stop_real_time_heart_rate"
	case StartSpO2:
		return "start_spo2"
	case StopSpO2:
		return "stop_spo2"
	case Reboot:
		return "reboot"
	case SetTime:
		return "set_time"
	case BlinkTwice:
		return "blink_twice"
	case BatteryInfo:
		return "battery_info"
	case SyncSleep:
		return "sync_sleep"
	case SyncOxygen:
		return "sync_oxygen"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}
