package protocol

import "github.com/google/uuid"

// GATT service and characteristic UUIDs exposed by every supported ring.
var (
	UARTServiceUUID   = uuid.MustParse("6e40fff0-b5a3-f393-e0a9-e50e24dcca9e")
	UARTRXCharUUID    = uuid.MustParse("6e400002-b5a3-f393-e0a9-e50e24dcca9e")
	UARTTXCharUUID    = uuid.MustParse("6e400003-b5a3-f393-e0a9-e50e24dcca9e")
	V2ServiceUUID     = uuid.MustParse("de5bf728-d711-4e47-af26-65e3012a5dc7")
	V2CommandCharUUID = uuid.MustParse("de5bf72a-d711-4e47-af26-65e3012a5dc7")
	V2NotifyCharUUID  = uuid.MustParse("de5bf729-d711-4e47-af26-65e3012a5dc7")

	DeviceInfoServiceUUID = uuid.MustParse("0000180a-0000-1000-8000-00805f9b34fb")
	DeviceHardwareUUID    = uuid.MustParse("00002a27-0000-1000-8000-00805f9b34fb")
	DeviceFirmwareUUID    = uuid.MustParse("00002a26-0000-1000-8000-00805f9b34fb")
)

// Opcodes, the first byte of every 16-byte frame.
const (
	opSetDateTime      byte = 0x01
	opBattery          byte = 0x03
	opPhoneName        byte = 0x04
	opPowerOff         byte = 0x08
	opPreferences      byte = 0x0a
	opBlink            byte = 0x10
	opSyncHeartRate    byte = 0x15
	opAutoHRPref       byte = 0x16
	opGoals            byte = 0x21
	opAutoSpO2Pref     byte = 0x2c
	opPacketSize       byte = 0x2f
	opAutoStressPref   byte = 0x36
	opSyncStress       byte = 0x37
	opAutoHRVPref      byte = 0x38
	opSyncHRV          byte = 0x39
	opSyncActivity     byte = 0x43
	opFindDevice       byte = 0x50
	opManualHeartRate  byte = 0x69
	opStopRealTime     byte = 0x6a
	opRealTimeContinue byte = 0x1e
	opNotification     byte = 0x73
	opBigDataV2        byte = 0xbc
	opFactoryReset     byte = 0xff
)

// Preference sub-opcodes used with opPreferences-family reads/writes.
const (
	prefRead   byte = 0x01
	prefWrite  byte = 0x02
	prefDelete byte = 0x03
)

// Notification ("0x73") subtypes — see notification.go.
const (
	notifyNewHeartRate byte = 0x01
	notifyNewOxygen    byte = 0x03
	notifyNewSteps     byte = 0x04
	notifyBatteryLevel byte = 0x0c
	notifyLiveActivity byte = 0x12
)

// Big-data ("0xbc") payload kinds.
const (
	bigDataKindSleep  byte = 0x27
	bigDataKindOxygen byte = 0x2a
)

// Sleep stage codes used inside the sleep big-data payload.
const (
	sleepStageLight byte = 0x02
	sleepStageDeep  byte = 0x03
	sleepStageREM   byte = 0x04
	sleepStageAwake byte = 0x05
)

// DeviceNamePrefixes lists the BLE advertised-name prefixes known to belong
// to a ring that speaks this protocol. This module performs no scanning —
// the prefix table is exposed only so an external discovery component can
// filter candidates before handing a connected device to this package.
var DeviceNamePrefixes = []string{
	"R01", "R02", "R03", "R04", "R05", "R06", "R07", "R10",
	"VK-5098", "MERLIN", "Hello Ring", "RING1", "boAtring",
	"TR-R02", "SE", "EVOLVEO", "GL-SR2", "Blaupunkt", "KSIX RING", "COLMI R",
}
