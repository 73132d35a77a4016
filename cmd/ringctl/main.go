// Ringctl is a development and test aid for the colmi ring protocol
// library. It builds command frames, decodes captured notification
// frames, and relays a live decoded feed over WebSocket — it is not a
// production front-end, just a way to drive and inspect the protocol
// package from a shell.
//
// Usage:
//
//	ringctl [command] [flags]
//
// See 'ringctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ringctl/colmi/internal/logging"
	"github.com/ringctl/colmi/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringctl",
	Short: "colmi ring protocol inspection tool",
	Long: `A development utility for the colmi ring protocol library.

Builds 16-byte command frames from flags, decodes captured notification
frames back into typed replies, and relays a live decoded feed over
WebSocket for a second process to watch.`,
	Version:           version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return logging.InitializeFromEnv() },
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ringctl %s\n", version.Full())
	},
}
