package raw

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/ragwire/internal/protocol/wire"
	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func TestDecodeEncodeFieldsRoundTripPreservesUnknown(t *testing.T) {
	testlog.Start(t)

	b := wire.NewBuffer(0)
	b.WriteTag(1, wire.BytesType)
	b.WriteString("n1")
	b.WriteTag(7, wire.VarintType)
	b.WriteInt32(4)
	b.WriteTag(9999, wire.Fixed32Type)
	b.WriteFloat32(0.5)
	b.WriteTag(3, wire.Fixed64Type)
	b.WriteFloat64(2.5)
	in := b.Bytes()

	fields, err := DecodeFields(in)
	if err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	if fields[0].Number != 1 || string(fields[0].Value) != "n1" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if v, err := fields[1].Varint(); err != nil || v != 4 {
		t.Fatalf("varint field: got %d err=%v", v, err)
	}
	if fields[2].Number != 9999 || fields[2].Type != wire.Fixed32Type || len(fields[2].Value) != 4 {
		t.Fatalf("unknown field not preserved: %+v", fields[2])
	}
	if out := EncodeFields(fields); !bytes.Equal(out, in) {
		t.Fatalf("re-encode mismatch:\n got %x\nwant %x", out, in)
	}

	bounds := Boundaries(fields)
	if bounds[len(bounds)-1] != len(in) {
		t.Fatalf("last boundary %d != payload length %d", bounds[len(bounds)-1], len(in))
	}
	for i, f := range fields {
		if f.Offset != bounds[i] {
			t.Fatalf("field %d offset %d != boundary %d", i, f.Offset, bounds[i])
		}
	}
}

func TestBoundariesCountPaddedVarints(t *testing.T) {
	testlog.Start(t)

	in := []byte{
		0x8a, 0x80, 0x00, 0x82, 0x00, 'h', 'i', // field 1 bytes, padded tag and length
		0x90, 0x00, 0x85, 0x00, // field 2 varint 5, padded tag and value
		0x18, 0x07, // field 3 varint 7, canonical
	}
	fields, err := DecodeFields(in)
	if err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if len(fields) != 3 || string(fields[0].Value) != "hi" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	want := []int{0, 7, 11, 13}
	bounds := Boundaries(fields)
	if len(bounds) != len(want) {
		t.Fatalf("bounds=%v want=%v", bounds, want)
	}
	for i := range want {
		if bounds[i] != want[i] {
			t.Fatalf("bounds=%v want=%v", bounds, want)
		}
	}
	if v, err := fields[1].Varint(); err != nil || v != 5 {
		t.Fatalf("padded varint: got %d err=%v", v, err)
	}
	if fields[0].End()-fields[0].Offset != 7 {
		t.Fatalf("field 0 length=%d", fields[0].End()-fields[0].Offset)
	}
}

func TestGetFieldReturnsLastOccurrence(t *testing.T) {
	testlog.Start(t)

	fields := []Field{
		{Number: 2, Type: wire.BytesType, Value: []byte("a")},
		{Number: 2, Type: wire.BytesType, Value: []byte("b")},
	}
	f, ok := GetField(fields, 2)
	if !ok || string(f.Value) != "b" {
		t.Fatalf("expected last occurrence, got %+v ok=%v", f, ok)
	}
	if _, ok := GetField(fields, 3); ok {
		t.Fatalf("expected missing field")
	}
}

func TestDecodeFieldsMalformedIsDeterministic(t *testing.T) {
	testlog.Start(t)

	// field 1, bytes, length 5, two bytes of content
	if _, err := DecodeFields([]byte{0x0a, 0x05, 'a', 'b'}); !errors.Is(err, wire.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	// field 1, start group
	_, err := DecodeFields([]byte{0x0b})
	var wte *wire.WireTypeError
	if !errors.As(err, &wte) {
		t.Fatalf("expected WireTypeError, got %v", err)
	}
}
