package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/danmuck/ragwire/internal/protocol/wire"
	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func samplePayload() []byte {
	b := wire.NewBuffer(0)
	b.WriteTag(1, wire.BytesType)
	b.WriteString("intent-1")
	return b.Bytes()
}

func TestReadWriteFrameRoundTrip(t *testing.T) {
	testlog.Start(t)

	payload := samplePayload()
	var buf bytes.Buffer
	if err := WriteFrame(&buf, Frame{Payload: payload}, DefaultLimits()); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	if err := WriteFrame(&buf, Frame{}, DefaultLimits()); err != nil {
		t.Fatalf("write empty frame: %v", err)
	}
	if got := buf.Bytes()[:HeaderLen]; !bytes.Equal(got, []byte{0, 0, 0, 0, byte(len(payload))}) {
		t.Fatalf("header=% x", got)
	}

	out, err := ReadFrame(&buf, DefaultLimits())
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if !bytes.Equal(out.Payload, payload) {
		t.Fatalf("payload mismatch")
	}
	empty, err := ReadFrame(&buf, DefaultLimits())
	if err != nil || len(empty.Payload) != 0 {
		t.Fatalf("empty frame: %+v %v", empty, err)
	}
	if _, err := ReadFrame(&buf, DefaultLimits()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at end, got %v", err)
	}
}

func TestReadFrameMalformedHeaderIsDeterministic(t *testing.T) {
	testlog.Start(t)
	_, err := ReadFrame(bytes.NewReader([]byte{0, 0, 0}), DefaultLimits())
	if !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}

func TestReadFrameRejects(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{"compressed", append(EncodeHeader(FlagCompressed, 1), 0x00), ErrCompressed},
		{"too large", EncodeHeader(0, 1<<30), ErrPayloadTooLarge},
		{"truncated payload", append(EncodeHeader(0, 4), 1, 2), ErrTruncated},
	}
	for _, tc := range cases {
		if _, err := ReadFrame(bytes.NewReader(tc.in), DefaultLimits()); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if _, err := SplitFrames(tc.in, DefaultLimits()); !errors.Is(err, tc.want) {
			t.Fatalf("%s split: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestWriteFrameLimits(t *testing.T) {
	testlog.Start(t)

	var buf bytes.Buffer
	err := WriteFrame(&buf, Frame{Payload: make([]byte, 9)}, Limits{MaxPayloadBytes: 8})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if err := WriteFrame(&buf, Frame{Flags: FlagCompressed}, DefaultLimits()); !errors.Is(err, ErrCompressed) {
		t.Fatalf("expected ErrCompressed, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("rejected frames must not write, wrote %d bytes", buf.Len())
	}
}

func TestSplitFrames(t *testing.T) {
	testlog.Start(t)

	first := samplePayload()
	body := append(Encode(first), Encode(nil)...)
	body = append(body, append(EncodeHeader(FlagTrailer, 3), 'a', '=', 'b')...)

	frames, err := SplitFrames(body, DefaultLimits())
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	if !bytes.Equal(frames[0].Payload, first) || len(frames[1].Payload) != 0 {
		t.Fatalf("unexpected payloads: %+v", frames)
	}
	if frames[0].Trailer() || !frames[2].Trailer() {
		t.Fatalf("trailer flags wrong: %+v", frames)
	}

	if _, err := SplitFrames(body[:len(body)-1], DefaultLimits()); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := SplitFrames(body[:2], DefaultLimits()); !errors.Is(err, ErrShortHeader) {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
	if frames, err := SplitFrames(nil, DefaultLimits()); err != nil || len(frames) != 0 {
		t.Fatalf("empty body: %v %v", frames, err)
	}
}
