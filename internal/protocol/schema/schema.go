package schema

import (
	"fmt"
	"sort"

	"github.com/danmuck/ragwire/internal/protocol/wire"
)

// Schema is the field table of one message type.
type Schema[T any] struct {
	name   string
	fields []Field[T]
	index  map[uint32]Field[T]
}

// New builds a table from fields, ordering them by field number. Duplicate
// or out-of-range field numbers are programming errors and panic.
func New[T any](name string, fields ...Field[T]) *Schema[T] {
	sorted := make([]Field[T], len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Info().Number < sorted[j].Info().Number
	})

	index := make(map[uint32]Field[T], len(sorted))
	for _, f := range sorted {
		info := f.Info()
		if info.Number == 0 || info.Number > wire.MaxFieldNumber {
			panic(fmt.Sprintf("schema: %s.%s: field number %d out of range", name, info.Name, info.Number))
		}
		if prev, ok := index[info.Number]; ok {
			panic(fmt.Sprintf("schema: %s: field number %d used by %s and %s", name, info.Number, prev.Info().Name, info.Name))
		}
		index[info.Number] = f
	}
	return &Schema[T]{name: name, fields: sorted, index: index}
}

func (s *Schema[T]) Name() string {
	return s.name
}

// Fields lists the table in field-number order.
func (s *Schema[T]) Fields() []Info {
	out := make([]Info, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, f.Info())
	}
	return out
}

// Marshal encodes m in ascending field-number order. Absent fields are not
// written. A nil m encodes as an empty message.
func (s *Schema[T]) Marshal(pool *wire.Pool, m *T) []byte {
	b := pool.Acquire()
	if m != nil {
		s.encode(b, pool, m)
	}
	return pool.Finish(b)
}

// Unmarshal decodes data into a fresh message. Only fields present in
// data are populated. No partial message is returned on error.
func (s *Schema[T]) Unmarshal(data []byte) (*T, error) {
	m := new(T)
	if err := s.decode(wire.Wrap(data), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Schema[T]) encode(b *wire.Buffer, pool *wire.Pool, m *T) {
	for _, f := range s.fields {
		f.encode(b, pool, m)
	}
}

// decode reads tags until the buffer limit. Unknown field numbers, and
// known numbers arriving with a wire type the field cannot hold, are
// skipped.
func (s *Schema[T]) decode(b *wire.Buffer, m *T) error {
	for !b.EOF() {
		number, t, err := b.ReadTag()
		if err != nil {
			return err
		}
		f, ok := s.index[number]
		if !ok || !f.Info().accepts(t) {
			if err := b.Skip(t); err != nil {
				return err
			}
			continue
		}
		if err := f.decode(b, t, m); err != nil {
			return &FieldError{Message: s.name, Field: f.Info().Name, Err: err}
		}
	}
	return nil
}
