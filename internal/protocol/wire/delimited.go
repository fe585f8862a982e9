package wire

import (
	"encoding/binary"
	"errors"
	"io"
)

// WriteDelimited writes msg prefixed by its varint length, the framing
// protobuf runtimes use for message streams.
func WriteDelimited(w io.Writer, msg []byte) error {
	var head [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(head[:], uint64(len(msg)))
	if _, err := w.Write(head[:n]); err != nil {
		return err
	}
	if len(msg) == 0 {
		return nil
	}
	_, err := w.Write(msg)
	return err
}

// ReadDelimited reads one varint-prefixed message. It returns io.EOF only
// when the stream ends cleanly before a new prefix. maxBytes must be
// positive; the prefix is checked against it before anything is allocated.
func ReadDelimited(r io.Reader, maxBytes int) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, ErrVarintOverflow
	}
	if maxBytes <= 0 || n > uint64(maxBytes) {
		return nil, ErrMessageTooLarge
	}
	msg := make([]byte, n)
	if _, err := io.ReadFull(r, msg); err != nil {
		return nil, ErrTruncated
	}
	return msg, nil
}

type byteReader struct {
	r   io.Reader
	one [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.one[:]); err != nil {
		return 0, err
	}
	return b.one[0], nil
}
