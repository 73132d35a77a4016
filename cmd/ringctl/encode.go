package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ringctl/colmi/internal/protocol"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <command>",
	Short: "Build a command frame and print it as hex",
	Long: `Build a Command from flags and print the 16-byte frame it
encodes to, prefixed with the channel it routes to (uart: or v2:).`,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.AddCommand(
		encodeBatteryCmd,
		encodeRebootCmd,
		encodeBlinkCmd,
		encodeSetTimeCmd,
		encodeReadHeartRateCmd,
		encodeReadStressCmd,
		encodeReadSportDetailCmd,
		encodeHeartRateSettingsCmd,
		encodeRealTimeHeartRateCmd,
		encodeRealTimeOxygenCmd,
		encodeSyncSleepCmd,
		encodeSyncOxygenCmd,
		encodeRawCmd,
	)
}

func printEncoded(cmd protocol.Command) {
	frame := cmd.Encode()
	fmt.Printf("%s: %s\n", protocol.Route(cmd), hex.EncodeToString(frame[:]))
}

var encodeBatteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Request the current battery level",
	Run:   func(cmd *cobra.Command, args []string) { printEncoded(protocol.BatteryInfo{}) },
}

var encodeRebootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Power-cycle the ring",
	Run:   func(cmd *cobra.Command, args []string) { printEncoded(protocol.Reboot{}) },
}

var encodeBlinkCmd = &cobra.Command{
	Use:   "blink",
	Short: "Flash the ring's LED to identify it",
	Run:   func(cmd *cobra.Command, args []string) { printEncoded(protocol.BlinkTwice{}) },
}

var setTimeFlags struct {
	when     string
	language uint8
}

var encodeSetTimeCmd = &cobra.Command{
	Use:   "set-time",
	Short: "Set the ring's on-device clock",
	Long: `Set the ring's on-device clock and display language.

--when defaults to the current local time; pass an RFC3339 timestamp to
set a specific value instead (useful for reproducible testing).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := time.Now()
		if setTimeFlags.when != "" {
			parsed, err := time.Parse(time.RFC3339, setTimeFlags.when)
			if err != nil {
				return fmt.Errorf("invalid --when: %w", err)
			}
			t = parsed
		}
		printEncoded(protocol.SetTime{
			Year:     t.Year(),
			Month:    int(t.Month()),
			Day:      t.Day(),
			Hour:     t.Hour(),
			Minute:   t.Minute(),
			Second:   t.Second(),
			Language: setTimeFlags.language,
		})
		return nil
	},
}

func init() {
	encodeSetTimeCmd.Flags().StringVar(&setTimeFlags.when, "when", "", "RFC3339 timestamp (default: now)")
	encodeSetTimeCmd.Flags().Uint8Var(&setTimeFlags.language, "language", 0, "display language code")
}

var readHeartRateFlags struct{ when string }

var encodeReadHeartRateCmd = &cobra.Command{
	Use:   "read-heart-rate",
	Short: "Request the heart-rate log for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := time.Now()
		if readHeartRateFlags.when != "" {
			parsed, err := time.Parse(time.RFC3339, readHeartRateFlags.when)
			if err != nil {
				return fmt.Errorf("invalid --when: %w", err)
			}
			t = parsed
		}
		printEncoded(protocol.ReadHeartRate{Timestamp: uint32(t.Unix())})
		return nil
	},
}

func init() {
	encodeReadHeartRateCmd.Flags().StringVar(&readHeartRateFlags.when, "when", "", "RFC3339 timestamp within the target day (default: now)")
}

var readStressFlags struct{ dayOffset uint8 }

var encodeReadStressCmd = &cobra.Command{
	Use:   "read-stress",
	Short: "Request the stress log for a day",
	Run: func(cmd *cobra.Command, args []string) {
		printEncoded(protocol.ReadStress{DayOffset: readStressFlags.dayOffset})
	},
}

func init() {
	encodeReadStressCmd.Flags().Uint8Var(&readStressFlags.dayOffset, "day-offset", 0, "days before today (0 = today)")
}

var readSportDetailFlags struct{ dayOffset uint8 }

var encodeReadSportDetailCmd = &cobra.Command{
	Use:   "read-sport-detail",
	Short: "Request the sport-detail log for a day",
	Run: func(cmd *cobra.Command, args []string) {
		printEncoded(protocol.ReadSportDetail{DayOffset: readSportDetailFlags.dayOffset})
	},
}

func init() {
	encodeReadSportDetailCmd.Flags().Uint8Var(&readSportDetailFlags.dayOffset, "day-offset", 0, "days before today (0 = today)")
}

var hrSettingsFlags struct {
	read     bool
	enabled  bool
	interval uint8
}

var encodeHeartRateSettingsCmd = &cobra.Command{
	Use:   "heart-rate-settings",
	Short: "Read or write periodic heart-rate sampling settings",
	Run: func(cmd *cobra.Command, args []string) {
		if hrSettingsFlags.read {
			printEncoded(protocol.GetHeartRateSettings{})
			return
		}
		printEncoded(protocol.SetHeartRateSettings{
			Enabled:  hrSettingsFlags.enabled,
			Interval: hrSettingsFlags.interval,
		})
	},
}

func init() {
	encodeHeartRateSettingsCmd.Flags().BoolVar(&hrSettingsFlags.read, "read", false, "read current settings instead of writing new ones")
	encodeHeartRateSettingsCmd.Flags().BoolVar(&hrSettingsFlags.enabled, "enabled", true, "enable periodic sampling")
	encodeHeartRateSettingsCmd.Flags().Uint8Var(&hrSettingsFlags.interval, "interval", 5, "sampling interval in minutes")
}

var encodeRealTimeHeartRateCmd = &cobra.Command{
	Use:       "real-time-heart-rate <start|continue|stop>",
	Short:     "Control a real-time heart-rate measurement session",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"start", "continue", "stop"},
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "start":
			printEncoded(protocol.StartRealTimeHeartRate{})
		case "continue":
			printEncoded(protocol.ContinueRealTimeHeartRate{})
		case "stop":
			printEncoded(protocol.StopRealTimeHeartRate{})
		}
	},
}

var encodeRealTimeOxygenCmd = &cobra.Command{
	Use:       "real-time-oxygen <start|stop>",
	Short:     "Control a real-time blood-oxygen measurement session",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"start", "stop"},
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "start":
			printEncoded(protocol.StartSpO2{})
		case "stop":
			printEncoded(protocol.StopSpO2{})
		}
	},
}

var encodeSyncSleepCmd = &cobra.Command{
	Use:   "sync-sleep",
	Short: "Begin a big-data transfer of sleep history",
	Run:   func(cmd *cobra.Command, args []string) { printEncoded(protocol.SyncSleep{}) },
}

var encodeSyncOxygenCmd = &cobra.Command{
	Use:   "sync-oxygen",
	Short: "Begin a big-data transfer of blood-oxygen history",
	Run:   func(cmd *cobra.Command, args []string) { printEncoded(protocol.SyncOxygen{}) },
}

var encodeRawCmd = &cobra.Command{
	Use:   "raw <hex>",
	Short: "Seal caller-supplied bytes into a frame (escape hatch for unmodeled opcodes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return fmt.Errorf("invalid hex: %w", err)
		}
		printEncoded(protocol.Raw{Bytes: b})
		return nil
	},
}
