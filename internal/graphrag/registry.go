package graphrag

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danmuck/ragwire/internal/protocol/schema"
)

var (
	ErrUnknownMessage = errors.New("graphrag: unknown message")
	ErrMessageType    = errors.New("graphrag: message type mismatch")
)

// Entry is the type-erased view of one message type.
type Entry struct {
	Name   string
	Fields []schema.Info
	// New returns a pointer to a zero message, ready for json/yaml/cbor
	// unmarshalling.
	New    func() any
	Encode func(v any) ([]byte, error)
	Decode func(data []byte) (any, error)
}

// Registry resolves message names to entries bound to one Codec.
type Registry struct {
	entries map[string]Entry
	names   []string
}

func entryFor[T any](c *Codec, s *schema.Schema[T]) Entry {
	name := s.Name()
	return Entry{
		Name:   name,
		Fields: s.Fields(),
		New:    func() any { return new(T) },
		Encode: func(v any) ([]byte, error) {
			m, ok := v.(*T)
			if !ok {
				return nil, fmt.Errorf("%w: %s wants *%s, got %T", ErrMessageType, name, name, v)
			}
			return encodeWith(c, s, m), nil
		},
		Decode: func(data []byte) (any, error) {
			m, err := decodeWith(c, s, data)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

// NewRegistry registers the full message set against c. A nil c encodes
// without pooling.
func NewRegistry(c *Codec) *Registry {
	entries := []Entry{
		entryFor(c, graphQuerySchema),
		entryFor(c, graphRAGResponseSchema),
		entryFor(c, graphNodeSchema),
		entryFor(c, contextChunkSchema),
		entryFor(c, entityQuerySchema),
		entryFor(c, entityResolutionSchema),
		entryFor(c, entityMatchSchema),
		entryFor(c, documentSchema),
		entryFor(c, graphBuildProgressSchema),
		entryFor(c, graphStatsSchema),
		entryFor(c, graphFilterSchema),
		entryFor(c, graphUpdateSchema),
		entryFor(c, graphEdgeSchema),
		entryFor(c, healthCheckSchema),
		entryFor(c, healthCheckResponseSchema),
		entryFor(c, performanceMetricsSchema),
		entryFor(c, contextRequestSchema),
	}
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		r.entries[e.Name] = e
		r.names = append(r.names, e.Name)
	}
	sort.Strings(r.names)
	return r
}

// Lookup returns the entry for name or ErrUnknownMessage.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownMessage, name)
	}
	return e, nil
}

// Names lists registered message names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
