package wire

import (
	"encoding/binary"
	"math"
)

func (b *Buffer) WriteFixed32(v uint32) {
	start := b.grow(4)
	binary.LittleEndian.PutUint32(b.buf[start:], v)
}

func (b *Buffer) ReadFixed32() (uint32, error) {
	start, err := b.advance(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.buf[start:]), nil
}

func (b *Buffer) WriteFixed64(v uint64) {
	start := b.grow(8)
	binary.LittleEndian.PutUint64(b.buf[start:], v)
}

func (b *Buffer) ReadFixed64() (uint64, error) {
	start, err := b.advance(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.buf[start:]), nil
}

// WriteFloat32 writes the IEEE-754 single precision bit pattern of v.
func (b *Buffer) WriteFloat32(v float32) {
	b.WriteFixed32(math.Float32bits(v))
}

func (b *Buffer) ReadFloat32() (float32, error) {
	u, err := b.ReadFixed32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// WriteFloat64 writes the IEEE-754 double precision bit pattern of v.
func (b *Buffer) WriteFloat64(v float64) {
	b.WriteFixed64(math.Float64bits(v))
}

func (b *Buffer) ReadFloat64() (float64, error) {
	u, err := b.ReadFixed64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}
