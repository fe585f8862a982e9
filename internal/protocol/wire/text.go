package wire

import (
	"unicode/utf8"
)

// WriteBytes writes a length-delimited byte string.
func (b *Buffer) WriteBytes(p []byte) {
	b.WriteVarint32(uint32(len(p)))
	b.WriteRaw(p)
}

// ReadBytes reads a length-delimited byte string into a fresh slice.
func (b *Buffer) ReadBytes() ([]byte, error) {
	raw, err := b.readDelimited()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// WriteString writes s as length-delimited UTF-8. The bytes of s are
// written as given; validity is the caller's concern.
func (b *Buffer) WriteString(s string) {
	b.WriteVarint32(uint32(len(s)))
	start := b.grow(len(s))
	copy(b.buf[start:], s)
}

// ReadString reads a length-delimited string. Malformed UTF-8 never fails
// the read; each offending sequence becomes U+FFFD.
func (b *Buffer) ReadString() (string, error) {
	raw, err := b.readDelimited()
	if err != nil {
		return "", err
	}
	return DecodeUTF8(raw), nil
}

func (b *Buffer) readDelimited() ([]byte, error) {
	n, err := b.ReadVarint32()
	if err != nil {
		return nil, err
	}
	if n > uint32(b.Remaining()) {
		return nil, ErrTruncated
	}
	return b.ReadRaw(int(n))
}

// DecodeUTF8 converts p to a string, replacing every maximal ill-formed
// subsequence with U+FFFD. Overlong forms, surrogate code points and
// values above U+10FFFF are ill-formed.
func DecodeUTF8(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	out := make([]byte, 0, len(p)+8)
	for i := 0; i < len(p); {
		c := p[i]
		if c < utf8.RuneSelf {
			out = append(out, c)
			i++
			continue
		}

		var need int
		var r rune
		lo, hi := byte(0x80), byte(0xBF)
		switch {
		case c >= 0xC2 && c <= 0xDF:
			need, r = 1, rune(c&0x1F)
		case c >= 0xE0 && c <= 0xEF:
			need, r = 2, rune(c&0x0F)
			if c == 0xE0 {
				lo = 0xA0
			} else if c == 0xED {
				hi = 0x9F
			}
		case c >= 0xF0 && c <= 0xF4:
			need, r = 3, rune(c&0x07)
			if c == 0xF0 {
				lo = 0x90
			} else if c == 0xF4 {
				hi = 0x8F
			}
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
			i++
			continue
		}

		j := i + 1
		ok := true
		for k := 0; k < need; k++ {
			if j >= len(p) || p[j] < lo || p[j] > hi {
				ok = false
				break
			}
			r = r<<6 | rune(p[j]&0x3F)
			lo, hi = 0x80, 0xBF
			j++
		}
		if !ok {
			// the offending byte starts the next sequence
			out = utf8.AppendRune(out, utf8.RuneError)
			i = j
			continue
		}
		out = utf8.AppendRune(out, r)
		i = j
	}
	return string(out)
}
