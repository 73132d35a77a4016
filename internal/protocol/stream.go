package protocol

import (
	"context"

	"github.com/ringctl/colmi/internal/logging"
)

// Result pairs one Parser.Handle outcome for delivery over Stream's
// output channel. Exactly one of Reply or Err is non-nil, except for
// mid-transaction continuations, which Stream never forwards.
type Result struct {
	Reply CommandReply
	Err   error
}

// Stream merges a UART and a V2 notification channel — each a stream of
// raw frame payloads (16 bytes on UART, 1-16 on V2), as returned by a transport Characteristic's
// Subscribe — into one fairly-interleaved channel of decoded replies. It
// owns the single Parser that must see every frame from both channels.
//
// Go's select already picks pseudo-randomly among ready cases, which is
// exactly the fair, non-starving poll the two channels need: a burst on
// one channel cannot starve the other, and frames within a single
// channel are never reordered relative to each other.
type Stream struct {
	parser *Parser
	out    chan Result
}

// NewStream starts merging uart and v2 immediately in a background
// goroutine. The returned Stream's Replies channel closes once both
// input channels are closed (or ctx is cancelled) and every in-flight
// frame has been processed; dropping the Stream without draining
// Replies leaks nothing since the goroutine exits on ctx cancellation.
func NewStream(ctx context.Context, uart, v2 <-chan []byte, clock Clock) *Stream {
	s := &Stream{
		parser: NewParser(clock),
		out:    make(chan Result),
	}
	go s.run(ctx, uart, v2)
	return s
}

// Replies is the merged, decoded output. It is closed when the stream
// ends — either both input channels closed, or ctx was cancelled.
func (s *Stream) Replies() <-chan Result {
	return s.out
}

func (s *Stream) run(ctx context.Context, uart, v2 <-chan []byte) {
	defer close(s.out)

	for uart != nil || v2 != nil {
		var (
			payload []byte
			ch      Channel
			ok      bool
		)

		select {
		case <-ctx.Done():
			return
		case payload, ok = <-uart:
			ch = ChannelUART
			if !ok {
				uart = nil
				continue
			}
		case payload, ok = <-v2:
			ch = ChannelV2
			if !ok {
				v2 = nil
				continue
			}
		}

		frame, err := NewFrame(ch, payload)
		if err != nil {
			if !s.emit(ctx, Result{Err: err}) {
				return
			}
			continue
		}
		logging.LogFrame("in", ch.String(), frame.Opcode(), frame.Payload)

		reply, err := s.parser.Handle(frame)
		if err != nil {
			if !s.emit(ctx, Result{Err: err}) {
				return
			}
			continue
		}
		if reply == nil {
			continue
		}
		logging.LogReply(reply.Kind(), frame.Payload)
		if !s.emit(ctx, Result{Reply: reply}) {
			return
		}
	}
}

// emit delivers r to the output channel, returning false if ctx was
// cancelled first so run can stop promptly instead of blocking forever
// on a consumer that stopped reading.
func (s *Stream) emit(ctx context.Context, r Result) bool {
	select {
	case s.out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}
