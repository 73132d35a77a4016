package protocol

import (
	"encoding/json"
	"time"
)

// CommandReply is a decoded reply or unsolicited push from the ring. Each
// concrete type below is one variant of the union.
type CommandReply interface {
	isReply()
	// Kind names the variant for logging and the JSON envelope.
	Kind() string
}

// BatteryReply answers BatteryInfo.
type BatteryReply struct {
	Level    uint8 `json:"level"`
	Charging bool  `json:"charging"`
}

func (BatteryReply) isReply()         {}
func (BatteryReply) Kind() string     { return "battery" }

// HeartRateSettingsReply answers GetHeartRateSettings.
type HeartRateSettingsReply struct {
	Enabled  bool  `json:"enabled"`
	Interval uint8 `json:"interval_minutes"`
}

func (HeartRateSettingsReply) isReply()     {}
func (HeartRateSettingsReply) Kind() string { return "heart_rate_settings" }

// HeartRateReply answers ReadHeartRate: the sampled rates for one day,
// beginning at Date, one reading every Range minutes.
type HeartRateReply struct {
	Date  time.Time `json:"date"`
	Range uint8     `json:"range_minutes"`
	Rates []uint8   `json:"rates"`
}

func (HeartRateReply) isReply()     {}
func (HeartRateReply) Kind() string { return "heart_rate" }

// SportDetail is one sport-detail record: steps/calories/distance for a
// single time bucket of a single day.
type SportDetail struct {
	Year      int   `json:"year"`
	Month     int   `json:"month"`
	Day       int   `json:"day"`
	TimeIndex uint8 `json:"time_index"`
	Calories  int   `json:"calories"` // tenths of a kilocalorie
	Steps     int   `json:"steps"`
	Distance  int   `json:"distance_meters"`
}

// SportDetailReply answers ReadSportDetail.
type SportDetailReply struct {
	Records []SportDetail `json:"records"`
}

func (SportDetailReply) isReply()     {}
func (SportDetailReply) Kind() string { return "sport_detail" }

// StressReply answers ReadStress: measurements for one day, one reading
// every MinutesApart minutes. A value of 0 marks a skipped sample.
type StressReply struct {
	MinutesApart uint8   `json:"minutes_apart"`
	Measurements []uint8 `json:"measurements"`
}

func (StressReply) isReply()     {}
func (StressReply) Kind() string { return "stress" }

// SleepStageKind names a single sleep stage.
type SleepStageKind int

const (
	SleepStageUnknown SleepStageKind = iota
	SleepStageLight
	SleepStageDeep
	SleepStageREM
	SleepStageAwake
)

func (k SleepStageKind) String() string {
	switch k {
	case SleepStageLight:
		return "light"
	case SleepStageDeep:
		return "deep"
	case SleepStageREM:
		return "rem"
	case SleepStageAwake:
		return "awake"
	default:
		return "unknown"
	}
}

func (k SleepStageKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// SleepStage is one contiguous stretch of a single sleep stage within a
// session.
type SleepStage struct {
	Kind    SleepStageKind `json:"kind"`
	Minutes int            `json:"minutes"`
}

// SleepSession is one night's sleep, as reassembled from the big-data
// sleep payload.
type SleepSession struct {
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
	Stages []SleepStage `json:"stages"`
}

// SleepReply answers a big-data sleep request.
type SleepReply struct {
	Sessions []SleepSession `json:"sessions"`
}

func (SleepReply) isReply()     {}
func (SleepReply) Kind() string { return "sleep" }

// OxygenMeasurement is one hour's min/max SpO2 reading.
type OxygenMeasurement struct {
	Min  uint8     `json:"min"`
	Max  uint8     `json:"max"`
	When time.Time `json:"when"`
}

// OxygenReply answers a big-data oxygen request.
type OxygenReply struct {
	Measurements []OxygenMeasurement `json:"measurements"`
}

func (OxygenReply) isReply()     {}
func (OxygenReply) Kind() string { return "oxygen" }

// RealTimeHeartRate is one spot heart-rate sample pushed during a
// real-time measurement session.
type RealTimeHeartRate struct {
	BPM uint8 `json:"bpm"`
}

func (RealTimeHeartRate) isReply()     {}
func (RealTimeHeartRate) Kind() string { return "real_time_heart_rate" }

// RealTimeOxygen is one spot SpO2 sample pushed during a real-time
// measurement session.
type RealTimeOxygen struct {
	Percent uint8 `json:"percent"`
}

func (RealTimeOxygen) isReply()     {}
func (RealTimeOxygen) Kind() string { return "real_time_oxygen" }

// RealTimeError reports a real-time measurement failure (e.g. the ring
// couldn't get a reading, or the finger/wrist contact was lost).
type RealTimeError struct {
	Code uint8 `json:"code"`
}

func (RealTimeError) isReply()     {}
func (RealTimeError) Kind() string { return "real_time_error" }

// DataKind names which data set a NewDataAvailable notification refers to.
type DataKind int

const (
	DataKindUnknown DataKind = iota
	DataKindHeartRate
	DataKindOxygen
	DataKindSteps
)

func (k DataKind) String() string {
	switch k {
	case DataKindHeartRate:
		return "heart_rate"
	case DataKindOxygen:
		return "oxygen"
	case DataKindSteps:
		return "steps"
	default:
		return "unknown"
	}
}

func (k DataKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// NewDataAvailable is an unsolicited push telling the caller fresh data of
// a given kind is ready to be read with the matching Read command.
type NewDataAvailable struct {
	Kind DataKind `json:"data_kind"`
}

func (NewDataAvailable) isReply()     {}
func (NewDataAvailable) Kind() string { return "new_data_available" }

// LiveActivity is an unsolicited push of the ring's running step/calorie/
// distance counters.
type LiveActivity struct {
	Steps    uint32  `json:"steps"`
	Calories float32 `json:"calories"`
	Distance uint32  `json:"distance_meters"`
}

func (LiveActivity) isReply()     {}
func (LiveActivity) Kind() string { return "live_activity" }

// BatteryLevel is an unsolicited battery-level push (distinct from the
// BatteryReply answer to an explicit BatteryInfo request).
type BatteryLevel struct {
	Level uint8 `json:"level"`
}

func (BatteryLevel) isReply()     {}
func (BatteryLevel) Kind() string { return "battery_level" }

// SetTimeAck acknowledges a SetTime command.
type SetTimeAck struct{}

func (SetTimeAck) isReply()     {}
func (SetTimeAck) Kind() string { return "set_time" }

// RebootAck acknowledges a Reboot command.
type RebootAck struct{}

func (RebootAck) isReply()     {}
func (RebootAck) Kind() string { return "reboot" }

// BlinkTwiceAck acknowledges a BlinkTwice command.
type BlinkTwiceAck struct{}

func (BlinkTwiceAck) isReply()     {}
func (BlinkTwiceAck) Kind() string { return "blink_twice" }

// StopRealTimeAck acknowledges a StopRealTimeHeartRate or StopSpO2 command.
type StopRealTimeAck struct{}

func (StopRealTimeAck) isReply()     {}
func (StopRealTimeAck) Kind() string { return "stop_real_time" }

// Unknown is returned for any frame this package recognizes the shape of
// but not the specific meaning of — an unrecognized opcode, or a
// recognized opcode with an unrecognized subtype. Decoding degrades to
// Unknown rather than erroring so an unfamiliar firmware revision doesn't
// stop the reply stream.
type Unknown struct {
	Channel Channel `json:"channel"`
	Opcode  byte    `json:"opcode"`
	Raw     []byte  `json:"raw"`
}

func (Unknown) isReply()     {}
func (Unknown) Kind() string { return "unknown" }

// replyEnvelope is the optional JSON surface mirroring the tagged-union
// shape of CommandReply: {"kind": "...", "data": {...}}.
type replyEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalReplyJSON renders a CommandReply as a tagged JSON envelope.
func MarshalReplyJSON(r CommandReply) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(replyEnvelope{Kind: r.Kind(), Data: data})
}
