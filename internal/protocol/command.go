package protocol

import (
	"fmt"

	"github.com/ringctl/colmi/internal/logging"
)

// Command is a request frame bound for the ring. Each concrete type below
// is one variant of the union; Encode produces the 16-byte frame the
// caller hands to the channel router.
type Command interface {
	// Encode renders the variant into its 16-byte wire frame, including
	// the trailing checksum byte.
	Encode() [16]byte

	// opcode returns the tag byte channel routing keys off of.
	opcode() byte
}

func checksum(frame [16]byte) byte {
	var sum uint32
	for _, b := range frame[:15] {
		sum += uint32(b)
	}
	return byte(sum & 0xff)
}

func sealed(frame [16]byte) [16]byte {
	frame[15] = checksum(frame)
	return frame
}

// ReadSportDetail requests the sport-detail log for the day dayOffset days
// before today (0 = today).
type ReadSportDetail struct {
	DayOffset uint8 `json:"day_offset"`
}

func (c ReadSportDetail) opcode() byte { return opSyncActivity }

func (c ReadSportDetail) Encode() [16]byte {
	var f [16]byte
	f[0] = opSyncActivity
	f[1] = c.DayOffset
	f[2] = 0x0f
	f[3] = 0x00
	f[4] = 0x5f
	f[5] = 0x01
	return sealed(f)
}

// ReadHeartRate requests the heart-rate log for the day containing
// Timestamp (Unix seconds, little-endian on the wire).
type ReadHeartRate struct {
	Timestamp uint32 `json:"timestamp"`
}

func (c ReadHeartRate) opcode() byte { return opSyncHeartRate }

func (c ReadHeartRate) Encode() [16]byte {
	var f [16]byte
	f[0] = opSyncHeartRate
	putUint32LE(f[1:5], c.Timestamp)
	return sealed(f)
}

// ReadStress requests the stress log for the day dayOffset days before
// today.
type ReadStress struct {
	DayOffset uint8 `json:"day_offset"`
}

func (c ReadStress) opcode() byte { return opSyncStress }

func (c ReadStress) Encode() [16]byte {
	var f [16]byte
	f[0] = opSyncStress
	f[1] = c.DayOffset
	return sealed(f)
}

// GetHeartRateSettings requests the ring's current periodic-sampling
// configuration.
type GetHeartRateSettings struct{}

func (c GetHeartRateSettings) opcode() byte { return opAutoHRPref }

func (c GetHeartRateSettings) Encode() [16]byte {
	var f [16]byte
	f[0] = opAutoHRPref
	f[1] = prefRead
	return sealed(f)
}

// SetHeartRateSettings configures periodic background sampling.
type SetHeartRateSettings struct {
	Enabled  bool  `json:"enabled"`
	Interval uint8 `json:"interval_minutes"` // sampling interval in minutes
}

func (c SetHeartRateSettings) opcode() byte { return opAutoHRPref }

func (c SetHeartRateSettings) Encode() [16]byte {
	var f [16]byte
	f[0] = opAutoHRPref
	f[1] = prefWrite
	if c.Enabled {
		f[2] = 1
	} else {
		f[2] = 2
	}
	f[3] = c.Interval
	return sealed(f)
}

// StartRealTimeHeartRate begins a continuous heart-rate measurement.
type StartRealTimeHeartRate struct{}

func (c StartRealTimeHeartRate) opcode() byte { return opManualHeartRate }

func (c StartRealTimeHeartRate) Encode() [16]byte {
	var f [16]byte
	f[0] = opManualHeartRate
	f[1] = 1
	return sealed(f)
}

// ContinueRealTimeHeartRate keeps an in-progress real-time measurement
// alive; the ring expects this periodically or it stops sampling.
type ContinueRealTimeHeartRate struct{}

func (c ContinueRealTimeHeartRate) opcode() byte { return opRealTimeContinue }

func (c ContinueRealTimeHeartRate) Encode() [16]byte {
	var f [16]byte
	f[0] = opRealTimeContinue
	f[1] = 3
	return sealed(f)
}

// StopRealTimeHeartRate ends an in-progress real-time measurement.
type StopRealTimeHeartRate struct{}

func (c StopRealTimeHeartRate) opcode() byte { return opStopRealTime }

func (c StopRealTimeHeartRate) Encode() [16]byte {
	var f [16]byte
	f[0] = opStopRealTime
	f[1] = 1
	return sealed(f)
}

// StartSpO2 begins a continuous blood-oxygen measurement.
type StartSpO2 struct{}

func (c StartSpO2) opcode() byte { return opManualHeartRate }

func (c StartSpO2) Encode() [16]byte {
	var f [16]byte
	f[0] = opManualHeartRate
	f[1] = 0x03
	f[2] = 0x25
	return sealed(f)
}

// StopSpO2 ends an in-progress blood-oxygen measurement.
type StopSpO2 struct{}

func (c StopSpO2) opcode() byte { return opStopRealTime }

func (c StopSpO2) Encode() [16]byte {
	var f [16]byte
	f[0] = opStopRealTime
	f[1] = 0x03
	return sealed(f)
}

// Reboot power-cycles the ring.
type Reboot struct{}

func (c Reboot) opcode() byte { return opPowerOff }

func (c Reboot) Encode() [16]byte {
	var f [16]byte
	f[0] = opPowerOff
	f[1] = 1
	return sealed(f)
}

// SetTime sets the ring's on-device clock and display language.
type SetTime struct {
	Year     int   `json:"year"`
	Month    int   `json:"month"`
	Day      int   `json:"day"`
	Hour     int   `json:"hour"`
	Minute   int   `json:"minute"`
	Second   int   `json:"second"`
	Language uint8 `json:"language"`
}

func (c SetTime) opcode() byte { return opSetDateTime }

func (c SetTime) Encode() [16]byte {
	var f [16]byte
	f[0] = opSetDateTime
	f[1] = byte(c.Year % 100)
	f[2] = byte(c.Month)
	f[3] = byte(c.Day)
	f[4] = byte(c.Hour)
	f[5] = byte(c.Minute)
	f[6] = byte(c.Second)
	f[7] = c.Language
	return sealed(f)
}

// BlinkTwice flashes the ring's LED, used to identify a physical device
// among several paired ones.
type BlinkTwice struct{}

func (c BlinkTwice) opcode() byte { return opBlink }

func (c BlinkTwice) Encode() [16]byte {
	var f [16]byte
	f[0] = opBlink
	return sealed(f)
}

// BatteryInfo requests the current battery level and charging state.
type BatteryInfo struct{}

func (c BatteryInfo) opcode() byte { return opBattery }

func (c BatteryInfo) Encode() [16]byte {
	var f [16]byte
	f[0] = opBattery
	return sealed(f)
}

// SyncSleep requests a big-data transfer of sleep history over the V2
// channel.
type SyncSleep struct{}

func (c SyncSleep) opcode() byte { return opBigDataV2 }

func (c SyncSleep) Encode() [16]byte {
	var f [16]byte
	f[0] = opBigDataV2
	f[1] = bigDataKindSleep
	f[2] = 0x01
	f[3] = 0x00
	f[4] = 0xff
	f[5] = 0x00
	f[6] = 0xff
	return sealed(f)
}

// SyncOxygen requests a big-data transfer of blood-oxygen history over the
// V2 channel.
type SyncOxygen struct{}

func (c SyncOxygen) opcode() byte { return opBigDataV2 }

func (c SyncOxygen) Encode() [16]byte {
	var f [16]byte
	f[0] = opBigDataV2
	f[1] = bigDataKindOxygen
	f[2] = 0x01
	f[3] = 0x00
	f[4] = 0xff
	f[5] = 0x00
	f[6] = 0xff
	return sealed(f)
}

// Raw sends caller-supplied bytes as the first 15 bytes of the frame,
// truncating anything past 15 bytes; Encode appends the checksum. It is
// an escape hatch for opcodes this package doesn't model explicitly.
type Raw struct {
	Bytes []byte `json:"bytes"`
	// onTruncate, when set, is invoked with the number of dropped bytes.
	// Used by tests to assert the truncation warning fires; production
	// callers should leave it nil and rely on the logging package instead.
	onTruncate func(dropped int)
}

func (c Raw) opcode() byte {
	if len(c.Bytes) == 0 {
		return 0
	}
	return c.Bytes[0]
}

func (c Raw) Encode() [16]byte {
	var f [16]byte
	n := copy(f[:15], c.Bytes)
	if dropped := len(c.Bytes) - n; dropped > 0 {
		logging.Warn(fmt.Sprintf("raw command truncated to 15 bytes, %d dropped", dropped))
		if c.onTruncate != nil {
			c.onTruncate(dropped)
		}
	}
	return sealed(f)
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
