package frame

import (
	"encoding/binary"
	"errors"
	"io"
)

// HeaderLen is the length-prefixed message header: one flag byte then a
// big-endian uint32 payload length.
const HeaderLen = 5

const (
	FlagCompressed byte = 0x01
	// FlagTrailer marks a gRPC-Web trailer frame.
	FlagTrailer byte = 0x80
)

var (
	ErrShortHeader     = errors.New("frame: short message header")
	ErrPayloadTooLarge = errors.New("frame: payload too large")
	ErrCompressed      = errors.New("frame: compressed payloads are not supported")
	ErrTruncated       = errors.New("frame: payload truncated")
)

// Frame is one length-prefixed message.
type Frame struct {
	Flags   byte
	Payload []byte
}

func (f Frame) Compressed() bool { return f.Flags&FlagCompressed != 0 }

func (f Frame) Trailer() bool { return f.Flags&FlagTrailer != 0 }

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxPayloadBytes int
}

func DefaultLimits() Limits {
	return Limits{MaxPayloadBytes: 4 * 1024 * 1024}
}

// ReadFrame reads one frame. A reader already at its end yields io.EOF.
func ReadFrame(r io.Reader, limits Limits) (Frame, error) {
	var header [HeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	flags, n := DecodeHeader(header[:])
	if err := check(flags, n, limits); err != nil {
		return Frame{}, err
	}

	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Frame{}, ErrTruncated
			}
			return Frame{}, err
		}
	}
	return Frame{Flags: flags, Payload: payload}, nil
}

func WriteFrame(w io.Writer, f Frame, limits Limits) error {
	if f.Compressed() {
		return ErrCompressed
	}
	if len(f.Payload) > limits.MaxPayloadBytes {
		return ErrPayloadTooLarge
	}
	if _, err := w.Write(EncodeHeader(f.Flags, uint32(len(f.Payload)))); err != nil {
		return err
	}
	if len(f.Payload) > 0 {
		if _, err := w.Write(f.Payload); err != nil {
			return err
		}
	}
	return nil
}

// SplitFrames cuts a complete body into frames. Payloads alias body.
func SplitFrames(body []byte, limits Limits) ([]Frame, error) {
	var frames []Frame
	for len(body) > 0 {
		if len(body) < HeaderLen {
			return nil, ErrShortHeader
		}
		flags, n := DecodeHeader(body)
		if err := check(flags, n, limits); err != nil {
			return nil, err
		}
		body = body[HeaderLen:]
		if uint64(n) > uint64(len(body)) {
			return nil, ErrTruncated
		}
		frames = append(frames, Frame{Flags: flags, Payload: body[:n:n]})
		body = body[n:]
	}
	return frames, nil
}

// Encode returns the framed form of payload.
func Encode(payload []byte) []byte {
	out := make([]byte, 0, HeaderLen+len(payload))
	out = append(out, EncodeHeader(0, uint32(len(payload)))...)
	return append(out, payload...)
}

func EncodeHeader(flags byte, n uint32) []byte {
	buf := make([]byte, HeaderLen)
	buf[0] = flags
	binary.BigEndian.PutUint32(buf[1:], n)
	return buf
}

func DecodeHeader(b []byte) (byte, uint32) {
	return b[0], binary.BigEndian.Uint32(b[1:HeaderLen])
}

func check(flags byte, n uint32, limits Limits) error {
	if flags&FlagCompressed != 0 {
		return ErrCompressed
	}
	if uint64(n) > uint64(limits.MaxPayloadBytes) {
		return ErrPayloadTooLarge
	}
	return nil
}
