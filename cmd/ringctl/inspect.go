package main

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// capturedFrame is one line of a capture file: a single 16-byte
// command/notify frame tagged with the channel and sequence it was
// observed on.
type capturedFrame struct {
	Seq     int    `json:"seq"`
	Channel string `json:"channel"`
	Hex     string `json:"hex"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <jsonl-file>",
	Short: "Pretty-print a capture file as 32-bit words and ASCII",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var cf capturedFrame
		if err := json.Unmarshal(line, &cf); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			continue
		}

		payload, err := hex.DecodeString(cf.Hex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: invalid hex: %v\n", lineNo, err)
			continue
		}

		inspectFrame(cf, payload)
	}
	return scanner.Err()
}

func inspectFrame(cf capturedFrame, payload []byte) {
	fmt.Printf("========================================\n")
	fmt.Printf("#%d  channel=%s  %d bytes\n", cf.Seq, cf.Channel, len(payload))
	fmt.Printf("========================================\n")

	fmt.Println("32-bit Little-Endian Words:")
	fmt.Println("Offset  Hex        Decimal")
	fmt.Println("------  ---------- -----------")
	for i := 0; i+4 <= len(payload); i += 4 {
		word := binary.LittleEndian.Uint32(payload[i : i+4])
		fmt.Printf("[%02d-%02d] 0x%08x %11d\n", i, i+3, word, word)
	}
	if rem := len(payload) % 4; rem > 0 {
		start := len(payload) - rem
		fmt.Printf("[%02d-%02d] tail: %s\n", start, len(payload)-1, hex.EncodeToString(payload[start:]))
	}

	if len(payload) == 16 {
		sum := byte(0)
		for _, b := range payload[:15] {
			sum += b
		}
		status := "MISMATCH"
		if sum == payload[15] {
			status = "ok"
		}
		fmt.Printf("\nOpcode: 0x%02x  Checksum: 0x%02x (computed 0x%02x, %s)\n", payload[0], payload[15], sum, status)
	}

	fmt.Println("\nHex:   ", hex.EncodeToString(payload))
	fmt.Println("ASCII: ", asciiPrintable(payload))
	fmt.Println()
}

func asciiPrintable(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 0x20 && c < 0x7f {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
