package protocol

import "errors"

// Sentinel error kinds. The parser never terminates a reply stream on one
// of these — they describe a single malformed transaction, reported to
// the caller and skipped so the stream can resynchronize on the next frame. Only a
// transport-level error (read/write failure on the underlying
// characteristic) ends a stream.
var (
	// ErrFrameShape means a frame arrived shorter than its opcode requires,
	// or with a length-prefix that disagrees with what followed it.
	ErrFrameShape = errors.New("protocol: frame shorter than its opcode requires")

	// ErrProtocolState means a frame arrived with a sub-sequence byte the
	// active transaction state machine did not expect (e.g. a continuation
	// packet whose tag byte doesn't match the family currently open).
	ErrProtocolState = errors.New("protocol: unexpected sub-sequence for the active transaction")

	// ErrDecoder means a fully reassembled buffer could not be decoded into
	// its target type (bad stage code, truncated record, etc.).
	ErrDecoder = errors.New("protocol: reassembled buffer invalid")

	// ErrUnknownChannel means a caller asked to route a command whose
	// opcode this package does not recognize. Route itself never returns
	// it: unrecognized opcodes route to the UART channel.
	ErrUnknownChannel = errors.New("protocol: unknown opcode, cannot route")

	// ErrChecksum means an inbound frame failed the running checksum
	// check. Unlike the other kinds this is never produced by decoding
	// logic that already trusts frame.go's demux — it exists for callers
	// that want to validate raw bytes before handing them to the parser.
	ErrChecksum = errors.New("protocol: checksum mismatch")
)
