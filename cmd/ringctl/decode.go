package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ringctl/colmi/internal/protocol"
	"github.com/ringctl/colmi/internal/relay"
)

var decodeFlags struct {
	file  string
	relay string
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a captured stream of frames into JSON replies",
	Long: `Read newline-delimited hex frames from stdin or a file, each
prefixed with the channel it was captured on ("uart:" or "v2:"), and
print the decoded reply stream as JSON, one object per line.

Blank lines and lines starting with # are ignored.

--relay additionally serves the same decoded replies to any number of
WebSocket subscribers at /ws on the given address, for a live dashboard
watching the capture replay alongside the stdout JSON.`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodeFlags.file, "file", "f", "", "read frames from this file instead of stdin")
	decodeCmd.Flags().StringVar(&decodeFlags.relay, "relay", "", "also serve decoded replies over WebSocket at this address (e.g. :8787)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if decodeFlags.file != "" {
		f, err := os.Open(decodeFlags.file)
		if err != nil {
			return fmt.Errorf("open %s: %w", decodeFlags.file, err)
		}
		defer f.Close()
		r = f
	}

	var hub *relay.Hub
	if decodeFlags.relay != "" {
		hub = relay.NewHub()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.ServeHTTP)
		server := &http.Server{Addr: decodeFlags.relay, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "relay: %v\n", err)
			}
		}()
		fmt.Fprintf(os.Stderr, "relay listening on %s (ws at /ws)\n", decodeFlags.relay)
	}

	parser := protocol.NewParser(protocol.SystemClock{})
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		frame, err := parseFrameLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		reply, err := parser.Handle(frame)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: decode error: %v\n", lineNo, err)
			continue
		}
		if reply == nil {
			continue
		}

		out, err := protocol.MarshalReplyJSON(reply)
		if err != nil {
			return fmt.Errorf("line %d: marshal reply: %w", lineNo, err)
		}
		fmt.Println(string(out))

		if hub != nil {
			hub.Publish(reply)
		}
	}
	return scanner.Err()
}

func parseFrameLine(line string) (protocol.Frame, error) {
	var channel protocol.Channel
	var hexPart string
	switch {
	case strings.HasPrefix(line, "uart:"):
		channel = protocol.ChannelUART
		hexPart = strings.TrimPrefix(line, "uart:")
	case strings.HasPrefix(line, "v2:"):
		channel = protocol.ChannelV2
		hexPart = strings.TrimPrefix(line, "v2:")
	default:
		return protocol.Frame{}, fmt.Errorf("missing channel tag (want \"uart:\" or \"v2:\"): %q", line)
	}

	raw, err := hex.DecodeString(strings.TrimSpace(hexPart))
	if err != nil {
		return protocol.Frame{}, fmt.Errorf("invalid hex: %w", err)
	}
	return protocol.NewFrame(channel, raw)
}
