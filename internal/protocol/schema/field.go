package schema

import (
	"sort"

	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Field is one entry of a message table. Implementations are created by
// the constructors in this package.
type Field[T any] interface {
	Info() Info
	encode(b *wire.Buffer, pool *wire.Pool, m *T)
	decode(b *wire.Buffer, t wire.Type, m *T) error
}

type scalarCodec[V any] struct {
	kind  Kind
	write func(*wire.Buffer, V)
	read  func(*wire.Buffer) (V, error)
}

var (
	int32Codec  = scalarCodec[int32]{KindInt32, (*wire.Buffer).WriteInt32, (*wire.Buffer).ReadInt32}
	int64Codec  = scalarCodec[int64]{KindInt64, (*wire.Buffer).WriteInt64, (*wire.Buffer).ReadInt64}
	uint32Codec = scalarCodec[uint32]{KindUint32, (*wire.Buffer).WriteVarint32, (*wire.Buffer).ReadVarint32}
	uint64Codec = scalarCodec[uint64]{KindUint64, (*wire.Buffer).WriteVarint64, (*wire.Buffer).ReadVarint64}
	sint32Codec = scalarCodec[int32]{KindSint32, (*wire.Buffer).WriteZigZag32, (*wire.Buffer).ReadZigZag32}
	sint64Codec = scalarCodec[int64]{KindSint64, (*wire.Buffer).WriteZigZag64, (*wire.Buffer).ReadZigZag64}
	boolCodec   = scalarCodec[bool]{KindBool, (*wire.Buffer).WriteBool, (*wire.Buffer).ReadBool}
	floatCodec  = scalarCodec[float32]{KindFloat, (*wire.Buffer).WriteFloat32, (*wire.Buffer).ReadFloat32}
	doubleCodec = scalarCodec[float64]{KindDouble, (*wire.Buffer).WriteFloat64, (*wire.Buffer).ReadFloat64}
	stringCodec = scalarCodec[string]{KindString, (*wire.Buffer).WriteString, (*wire.Buffer).ReadString}
)

// optional is a singular field; a nil pointer means absent.
type optional[T, V any] struct {
	info  Info
	codec scalarCodec[V]
	get   func(*T) **V
}

func newOptional[T, V any](number uint32, name string, codec scalarCodec[V], get func(*T) **V) Field[T] {
	return optional[T, V]{
		info:  Info{Number: number, Name: name, Kind: codec.kind, WireType: codec.kind.WireType()},
		codec: codec,
		get:   get,
	}
}

func (f optional[T, V]) Info() Info { return f.info }

func (f optional[T, V]) encode(b *wire.Buffer, _ *wire.Pool, m *T) {
	p := *f.get(m)
	if p == nil {
		return
	}
	b.WriteTag(f.info.Number, f.info.WireType)
	f.codec.write(b, *p)
}

func (f optional[T, V]) decode(b *wire.Buffer, _ wire.Type, m *T) error {
	v, err := f.codec.read(b)
	if err != nil {
		return err
	}
	*f.get(m) = &v
	return nil
}

// repeated is an unpacked repeated scalar; a nil slice means absent.
type repeated[T, V any] struct {
	info  Info
	codec scalarCodec[V]
	get   func(*T) *[]V
}

func newRepeated[T, V any](number uint32, name string, codec scalarCodec[V], get func(*T) *[]V) Field[T] {
	return repeated[T, V]{
		info:  Info{Number: number, Name: name, Kind: codec.kind, WireType: codec.kind.WireType(), Repeated: true},
		codec: codec,
		get:   get,
	}
}

func (f repeated[T, V]) Info() Info { return f.info }

func (f repeated[T, V]) encode(b *wire.Buffer, _ *wire.Pool, m *T) {
	for _, v := range *f.get(m) {
		b.WriteTag(f.info.Number, f.info.WireType)
		f.codec.write(b, v)
	}
}

func (f repeated[T, V]) decode(b *wire.Buffer, t wire.Type, m *T) error {
	dst := f.get(m)
	if t == wire.BytesType && f.info.Kind.packable() {
		return readNested(b, func() error {
			for !b.EOF() {
				v, err := f.codec.read(b)
				if err != nil {
					return err
				}
				*dst = append(*dst, v)
			}
			return nil
		})
	}
	v, err := f.codec.read(b)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// bytesField is a singular bytes field; a nil slice means absent.
type bytesField[T any] struct {
	info Info
	get  func(*T) *[]byte
}

func (f bytesField[T]) Info() Info { return f.info }

func (f bytesField[T]) encode(b *wire.Buffer, _ *wire.Pool, m *T) {
	p := *f.get(m)
	if p == nil {
		return
	}
	b.WriteTag(f.info.Number, wire.BytesType)
	b.WriteBytes(p)
}

func (f bytesField[T]) decode(b *wire.Buffer, _ wire.Type, m *T) error {
	v, err := b.ReadBytes()
	if err != nil {
		return err
	}
	*f.get(m) = v
	return nil
}

// message is a singular nested message; a nil pointer means absent.
type message[T, N any] struct {
	info Info
	sub  *Schema[N]
	get  func(*T) **N
}

func (f message[T, N]) Info() Info { return f.info }

func (f message[T, N]) encode(b *wire.Buffer, pool *wire.Pool, m *T) {
	n := *f.get(m)
	if n == nil {
		return
	}
	writeNested(b, pool, f.info.Number, func(nb *wire.Buffer) {
		f.sub.encode(nb, pool, n)
	})
}

// decode replaces any earlier occurrence; the last one on the wire wins.
func (f message[T, N]) decode(b *wire.Buffer, _ wire.Type, m *T) error {
	v := new(N)
	if err := readNested(b, func() error { return f.sub.decode(b, v) }); err != nil {
		return err
	}
	*f.get(m) = v
	return nil
}

// messages is a repeated nested message; a nil slice means absent.
type messages[T, N any] struct {
	info Info
	sub  *Schema[N]
	get  func(*T) *[]*N
}

func (f messages[T, N]) Info() Info { return f.info }

func (f messages[T, N]) encode(b *wire.Buffer, pool *wire.Pool, m *T) {
	for _, n := range *f.get(m) {
		writeNested(b, pool, f.info.Number, func(nb *wire.Buffer) {
			if n != nil {
				f.sub.encode(nb, pool, n)
			}
		})
	}
}

func (f messages[T, N]) decode(b *wire.Buffer, _ wire.Type, m *T) error {
	v := new(N)
	if err := readNested(b, func() error { return f.sub.decode(b, v) }); err != nil {
		return err
	}
	dst := f.get(m)
	*dst = append(*dst, v)
	return nil
}

// stringMap is a map<string,string>; a nil map means absent. Each entry is
// a nested message with the key in field 1 and the value in field 2.
type stringMap[T any] struct {
	info Info
	get  func(*T) *map[string]string
}

const (
	mapKeyField   uint32 = 1
	mapValueField uint32 = 2
)

func (f stringMap[T]) Info() Info { return f.info }

// encode emits entries in key order so equal maps encode identically.
func (f stringMap[T]) encode(b *wire.Buffer, pool *wire.Pool, m *T) {
	entries := *f.get(m)
	if len(entries) == 0 {
		return
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := entries[k]
		writeNested(b, pool, f.info.Number, func(nb *wire.Buffer) {
			nb.WriteTag(mapKeyField, wire.BytesType)
			nb.WriteString(k)
			nb.WriteTag(mapValueField, wire.BytesType)
			nb.WriteString(v)
		})
	}
}

func (f stringMap[T]) decode(b *wire.Buffer, _ wire.Type, m *T) error {
	var key, value *string
	err := readNested(b, func() error {
		for !b.EOF() {
			number, t, err := b.ReadTag()
			if err != nil {
				return err
			}
			switch {
			case number == mapKeyField && t == wire.BytesType:
				s, err := b.ReadString()
				if err != nil {
					return err
				}
				key = &s
			case number == mapValueField && t == wire.BytesType:
				s, err := b.ReadString()
				if err != nil {
					return err
				}
				value = &s
			default:
				if err := b.Skip(t); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if key == nil || value == nil {
		return &MapEntryError{Field: f.info.Name}
	}
	dst := f.get(m)
	if *dst == nil {
		*dst = make(map[string]string)
	}
	(*dst)[*key] = *value
	return nil
}

// writeNested encodes a length-delimited value through a pooled scratch
// buffer, then appends tag, length and content to b.
func writeNested(b *wire.Buffer, pool *wire.Pool, number uint32, fill func(*wire.Buffer)) {
	nb := pool.Acquire()
	fill(nb)
	b.WriteTag(number, wire.BytesType)
	b.WriteVarint32(uint32(nb.Len()))
	b.WriteRaw(nb.Bytes())
	pool.Release(nb)
}

// readNested runs fn with the buffer limit clamped to the next
// length-delimited span.
func readNested(b *wire.Buffer, fn func() error) error {
	n, err := b.ReadVarint32()
	if err != nil {
		return err
	}
	if n > uint32(b.Remaining()) {
		return wire.ErrTruncated
	}
	prev, err := b.PushLimit(int(n))
	if err != nil {
		return err
	}
	err = fn()
	b.PopLimit(prev)
	return err
}
