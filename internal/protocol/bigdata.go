package protocol

import "fmt"

// bigDataState reassembles one 0xbc transaction on the V2 channel. The
// start frame declares a kind and a total payload length; every frame
// after it (start included) contributes bytes verbatim until the
// declared length is reached, at which point the buffer is handed to the
// decoder for that kind.
type bigDataState struct {
	kind   byte
	length uint16
	crc    uint16
	buf    []byte
	clock  Clock
}

// newBigDataState starts a transaction from its start frame:
// [0xbc, kind, len_LE_u16, crc_LE_u16, payload_begin(10 bytes)].
func newBigDataState(f Frame, clock Clock) (*bigDataState, CommandReply, error) {
	p := f.Payload
	if len(p) != 16 {
		return nil, nil, fmt.Errorf("%w: big-data start frame is %d bytes, want 16", ErrFrameShape, len(p))
	}
	kind := p[1]
	length := uint16(leUint16(p[2:4]))
	crc := uint16(leUint16(p[4:6]))

	s := &bigDataState{kind: kind, length: length, crc: crc, clock: clock}
	s.buf = append(s.buf, p[6:16]...)

	if len(s.buf) >= int(s.length) {
		reply, err := decodeBigData(s.kind, s.buf[:s.length], s.clock)
		return nil, reply, err
	}
	return s, nil, nil
}

// step appends one continuation frame's bytes to the buffer. Every
// continuation is a full 16 bytes except possibly the last, which carries
// only whatever remains of the declared length.
func (s *bigDataState) step(f Frame) (CommandReply, error) {
	s.buf = append(s.buf, f.Payload...)
	if len(s.buf) < int(s.length) {
		return nil, nil
	}
	return decodeBigData(s.kind, s.buf[:s.length], s.clock)
}

func decodeBigData(kind byte, buf []byte, clock Clock) (CommandReply, error) {
	switch kind {
	case bigDataKindSleep:
		return decodeSleep(buf, clock)
	case bigDataKindOxygen:
		return decodeOxygen(buf, clock)
	default:
		return Unknown{Channel: ChannelV2, Opcode: opBigDataV2, Raw: append([]byte{kind}, buf...)}, nil
	}
}
