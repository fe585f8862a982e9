// Package raw decodes protobuf payloads into untyped fields without a
// schema, for inspection and boundary analysis.
package raw

import (
	"fmt"

	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Field is one top-level field as it appeared on the wire.
type Field struct {
	Number uint32
	Type   wire.Type
	// Offset is the position of the tag within the payload.
	Offset int
	// Value holds the encoded value bytes: the varint bytes, the fixed
	// bytes, or the length-delimited content without its length prefix.
	Value []byte
	// Size is the span the field occupied, tag and length prefix
	// included. DecodeFields records it so padded varints are counted;
	// zero means shortest encodings are assumed.
	Size int
}

// End reports the offset just past the field.
func (f Field) End() int {
	if f.Size > 0 {
		return f.Offset + f.Size
	}
	n := len(f.Value)
	if f.Type == wire.BytesType {
		n += wire.SizeVarint32(uint32(len(f.Value)))
	}
	return f.Offset + wire.SizeVarint32(wire.EncodeTag(f.Number, f.Type)) + n
}

// Varint decodes a varint field value.
func (f Field) Varint() (uint64, error) {
	if f.Type != wire.VarintType {
		return 0, fmt.Errorf("raw: field %d is %s, not varint", f.Number, f.Type)
	}
	return wire.Wrap(f.Value).ReadVarint64()
}

func DecodeFields(payload []byte) ([]Field, error) {
	fields := make([]Field, 0)
	b := wire.Wrap(payload)
	for !b.EOF() {
		offset := b.Offset()
		number, typ, err := b.ReadTag()
		if err != nil {
			return nil, err
		}
		start := b.Offset()
		if typ == wire.BytesType {
			n, err := b.ReadVarint32()
			if err != nil {
				return nil, err
			}
			value, err := b.ReadRaw(int(n))
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{
				Number: number,
				Type:   typ,
				Offset: offset,
				Value:  clone(value),
				Size:   b.Offset() - offset,
			})
			continue
		}
		if err := b.Skip(typ); err != nil {
			return nil, err
		}
		fields = append(fields, Field{
			Number: number,
			Type:   typ,
			Offset: offset,
			Value:  clone(payload[start:b.Offset()]),
			Size:   b.Offset() - offset,
		})
	}
	return fields, nil
}

// EncodeFields re-emits fields in order. Tags are written in their
// shortest form, so output matches canonical input byte-for-byte.
func EncodeFields(fields []Field) []byte {
	b := wire.NewBuffer(0)
	for _, f := range fields {
		b.WriteTag(f.Number, f.Type)
		if f.Type == wire.BytesType {
			b.WriteBytes(f.Value)
			continue
		}
		b.WriteRaw(f.Value)
	}
	return b.Bytes()
}

func GetField(fields []Field, number uint32) (Field, bool) {
	found := false
	var last Field
	for _, f := range fields {
		if f.Number == number {
			last = f
			found = true
		}
	}
	return last, found
}

// Boundaries lists the offsets at which payload could be cut and still be
// a sequence of whole top-level fields, including 0 and len(payload).
func Boundaries(fields []Field) []int {
	out := make([]int, 0, len(fields)+1)
	out = append(out, 0)
	for _, f := range fields {
		out = append(out, f.End())
	}
	return out
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
