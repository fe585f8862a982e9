package wire

// MaxVarintLen is the longest varint accepted on the wire.
const MaxVarintLen = 10

// SizeVarint32 reports the encoded length of v.
func SizeVarint32(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// SizeVarint64 reports the encoded length of v.
func SizeVarint64(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

func (b *Buffer) WriteVarint32(v uint32) {
	start := b.grow(SizeVarint32(v))
	i := start
	for v >= 0x80 {
		b.buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	b.buf[i] = byte(v)
}

// ReadVarint32 reads a varint and keeps its low 32 bits. Up to ten bytes
// are accepted so sign-extended 64-bit encodings of negative values decode.
func (b *Buffer) ReadVarint32() (uint32, error) {
	var v uint32
	for i := 0; i < MaxVarintLen; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		if i < 5 {
			v |= uint32(c&0x7f) << (7 * i)
		}
		if c < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarintOverflow
}

func (b *Buffer) WriteVarint64(v uint64) {
	start := b.grow(SizeVarint64(v))
	i := start
	for v >= 0x80 {
		b.buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	b.buf[i] = byte(v)
}

func (b *Buffer) ReadVarint64() (uint64, error) {
	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		c, err := b.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= uint64(c&0x7f) << (7 * i)
		if c < 0x80 {
			return v, nil
		}
	}
	return 0, ErrVarintOverflow
}

// WriteInt32 writes v as an int32 field. Negative values are written as
// their unsigned 32-bit reinterpretation, not sign-extended to 64 bits.
func (b *Buffer) WriteInt32(v int32) {
	b.WriteVarint32(uint32(v))
}

func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadVarint32()
	return int32(v), err
}

func (b *Buffer) WriteInt64(v int64) {
	b.WriteVarint64(uint64(v))
}

func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadVarint64()
	return int64(v), err
}

func EncodeZigZag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

func DecodeZigZag32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}

func EncodeZigZag64(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

func DecodeZigZag64(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func (b *Buffer) WriteZigZag32(v int32) {
	b.WriteVarint32(EncodeZigZag32(v))
}

func (b *Buffer) ReadZigZag32() (int32, error) {
	u, err := b.ReadVarint32()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag32(u), nil
}

func (b *Buffer) WriteZigZag64(v int64) {
	b.WriteVarint64(EncodeZigZag64(v))
}

func (b *Buffer) ReadZigZag64() (int64, error) {
	u, err := b.ReadVarint64()
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(u), nil
}

// WriteBool writes a single 0 or 1 byte.
func (b *Buffer) WriteBool(v bool) {
	c := byte(0)
	if v {
		c = 1
	}
	_ = b.WriteByte(c)
}

// ReadBool reads a varint; any non-zero value is true.
func (b *Buffer) ReadBool() (bool, error) {
	v, err := b.ReadVarint64()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
