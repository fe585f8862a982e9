package wire

import "fmt"

// Type is the 3-bit wire type carried in every tag.
type Type uint8

const (
	VarintType     Type = 0
	Fixed64Type    Type = 1
	BytesType      Type = 2
	StartGroupType Type = 3
	EndGroupType   Type = 4
	Fixed32Type    Type = 5
)

// MaxFieldNumber is the largest legal protobuf field number.
const MaxFieldNumber = 1<<29 - 1

func (t Type) String() string {
	switch t {
	case VarintType:
		return "varint"
	case Fixed64Type:
		return "fixed64"
	case BytesType:
		return "bytes"
	case StartGroupType:
		return "start_group"
	case EndGroupType:
		return "end_group"
	case Fixed32Type:
		return "fixed32"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// EncodeTag packs a field number and wire type.
func EncodeTag(number uint32, t Type) uint32 {
	return number<<3 | uint32(t&7)
}

// DecodeTag splits a tag into field number and wire type.
func DecodeTag(tag uint32) (uint32, Type) {
	return tag >> 3, Type(tag & 7)
}

func (b *Buffer) WriteTag(number uint32, t Type) {
	b.WriteVarint32(EncodeTag(number, t))
}

func (b *Buffer) ReadTag() (uint32, Type, error) {
	tag, err := b.ReadVarint32()
	if err != nil {
		return 0, 0, err
	}
	number, t := DecodeTag(tag)
	if number == 0 {
		return 0, 0, ErrInvalidFieldNumber
	}
	return number, t, nil
}

// Skip consumes one value of wire type t.
func (b *Buffer) Skip(t Type) error {
	switch t {
	case VarintType:
		for i := 0; i < MaxVarintLen; i++ {
			c, err := b.ReadByte()
			if err != nil {
				return err
			}
			if c < 0x80 {
				return nil
			}
		}
		return ErrVarintOverflow
	case Fixed64Type:
		_, err := b.advance(8)
		return err
	case BytesType:
		n, err := b.ReadVarint32()
		if err != nil {
			return err
		}
		if n > uint32(b.Remaining()) {
			return ErrTruncated
		}
		_, err = b.advance(int(n))
		return err
	case Fixed32Type:
		_, err := b.advance(4)
		return err
	default:
		return &WireTypeError{Type: t}
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
