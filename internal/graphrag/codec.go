package graphrag

import (
	"github.com/rs/zerolog/log"

	"github.com/danmuck/ragwire/internal/protocol/schema"
	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Observer is notified after every encode and decode a Codec performs.
type Observer interface {
	ObserveEncode(message string, size int)
	ObserveDecode(message string, size int, err error)
}

// Codec encodes and decodes the message set through an explicit buffer
// pool. The zero value and a nil *Codec are usable and never pool.
type Codec struct {
	pool     *wire.Pool
	observer Observer
}

type CodecOption func(*Codec)

// WithObserver attaches o to the codec.
func WithObserver(o Observer) CodecOption {
	return func(c *Codec) { c.observer = o }
}

func NewCodec(pool *wire.Pool, opts ...CodecOption) *Codec {
	c := &Codec{pool: pool}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) Pool() *wire.Pool {
	if c == nil {
		return nil
	}
	return c.pool
}

func encodeWith[T any](c *Codec, s *schema.Schema[T], m *T) []byte {
	var pool *wire.Pool
	if c != nil {
		pool = c.pool
	}
	out := s.Marshal(pool, m)
	if c != nil && c.observer != nil {
		c.observer.ObserveEncode(s.Name(), len(out))
	}
	return out
}

func decodeWith[T any](c *Codec, s *schema.Schema[T], data []byte) (*T, error) {
	m, err := s.Unmarshal(data)
	if err != nil {
		log.Debug().Str("message", s.Name()).Int("bytes", len(data)).Err(err).Msg("decode failed")
	}
	if c != nil && c.observer != nil {
		c.observer.ObserveDecode(s.Name(), len(data), err)
	}
	return m, err
}
