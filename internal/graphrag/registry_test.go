package graphrag

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func TestRegistryListsEveryMessage(t *testing.T) {
	testlog.Start(t)

	r := NewRegistry(nil)
	names := r.Names()
	if len(names) != 17 {
		t.Fatalf("expected 17 messages, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, name := range names {
		e, err := r.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		if e.Name != name || len(e.Fields) == 0 {
			t.Fatalf("bad entry for %s: %+v", name, e)
		}
	}
}

func TestRegistryEntryRoundTrip(t *testing.T) {
	testlog.Start(t)

	e, err := NewRegistry(NewCodec(nil)).Lookup("GraphNode")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, ok := e.New().(*GraphNode); !ok {
		t.Fatalf("New returned %T", e.New())
	}

	node := sampleNode("n1")
	data, err := e.Encode(node)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := e.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, node) {
		t.Fatalf("mismatch: %+v", got)
	}

	fields := e.Fields
	if fields[3].Name != "properties" || fields[3].Number != 4 {
		t.Fatalf("unexpected field table: %+v", fields)
	}
}

func TestRegistryErrors(t *testing.T) {
	testlog.Start(t)

	r := NewRegistry(nil)
	if _, err := r.Lookup("Nope"); !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("expected ErrUnknownMessage, got %v", err)
	}
	e, _ := r.Lookup("GraphEdge")
	if _, err := e.Encode(&GraphNode{}); !errors.Is(err, ErrMessageType) {
		t.Fatalf("expected ErrMessageType, got %v", err)
	}
	if _, err := e.Decode([]byte{0x0a, 0x05, 'a'}); err == nil {
		t.Fatalf("expected truncated decode to fail")
	}
}
