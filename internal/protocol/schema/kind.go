package schema

import (
	"fmt"

	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Kind is the protobuf scalar or composite type of a field.
type Kind uint8

const (
	KindInt32 Kind = iota + 1
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindBool
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
	KindMap
)

var kindNames = map[Kind]string{
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindSint32:  "sint32",
	KindSint64:  "sint64",
	KindBool:    "bool",
	KindFloat:   "float",
	KindDouble:  "double",
	KindString:  "string",
	KindBytes:   "bytes",
	KindMessage: "message",
	KindMap:     "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// WireType reports how values of this kind are framed.
func (k Kind) WireType() wire.Type {
	switch k {
	case KindFloat:
		return wire.Fixed32Type
	case KindDouble:
		return wire.Fixed64Type
	case KindString, KindBytes, KindMessage, KindMap:
		return wire.BytesType
	default:
		return wire.VarintType
	}
}

// packable reports whether repeated values of this kind may arrive packed.
func (k Kind) packable() bool {
	return k.WireType() != wire.BytesType
}

// Info describes one field for introspection.
type Info struct {
	Number   uint32    `json:"number" yaml:"number"`
	Name     string    `json:"name" yaml:"name"`
	Kind     Kind      `json:"kind" yaml:"kind"`
	WireType wire.Type `json:"wire_type" yaml:"wire_type"`
	Repeated bool      `json:"repeated,omitempty" yaml:"repeated,omitempty"`
	// Message names the nested type of message fields.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// accepts reports whether a value of wire type t may be decoded into the field.
func (i Info) accepts(t wire.Type) bool {
	if i.WireType == t {
		return true
	}
	return i.Repeated && i.Kind.packable() && t == wire.BytesType
}
