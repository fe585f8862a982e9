package graphrag

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/ragwire/internal/protocol/raw"
	"github.com/danmuck/ragwire/internal/protocol/wire"
	"github.com/danmuck/ragwire/internal/testutil/testlog"
)

func sampleNode(id string) *GraphNode {
	return &GraphNode{
		ID:             Ptr(id),
		Label:          Ptr("Entity " + id),
		Type:           Ptr("PERSON"),
		Properties:     map[string]string{"role": "author", "born": "1970"},
		Connections:    []string{"n2", "n3"},
		RelevanceScore: Ptr(float32(0.875)),
		Frequency:      Ptr(int32(4)),
	}
}

func samplePerformance() *PerformanceMetrics {
	return &PerformanceMetrics{
		ProcessingTimeMS:       Ptr(float32(12.5)),
		ContextRetrievalTimeMS: Ptr(float32(3.25)),
		LLMGenerationTimeMS:    Ptr(float32(8.75)),
		TotalNodesAccessed:     Ptr(int32(120)),
		TotalEdgesTraversed:    Ptr(int32(340)),
		CompressionRatio:       Ptr(float32(0.5)),
		MemoryUsageBytes:       Ptr(int64(1 << 33)),
		CPUUsagePercent:        Ptr(float32(42)),
	}
}

func sampleResponse() *GraphRAGResponse {
	return &GraphRAGResponse{
		QueryID:  Ptr("q-1"),
		Query:    Ptr("who wrote the report?"),
		GraphID:  Ptr("g-7"),
		Model:    Ptr("llama3"),
		Response: Ptr("Entity A wrote it."),
		Context: []*ContextChunk{
			{EntityID: Ptr("n1"), Description: Ptr("author"), RelevanceScore: Ptr(float32(0.75)), Relationships: []string{"WROTE"}},
			{EntityID: Ptr("n2"), EntityType: Ptr("DOCUMENT"), Metadata: map[string]string{"source": "upload"}},
			{EntityID: Ptr("n3")},
		},
		Performance:   samplePerformance(),
		RelevantNodes: []*GraphNode{sampleNode("n1"), sampleNode("n4")},
		Timestamp:     Ptr("2024-05-01T10:00:00Z"),
	}
}

func TestGraphNodeCanonicalBytes(t *testing.T) {
	testlog.Start(t)

	node := &GraphNode{
		ID:             Ptr("n1"),
		Label:          Ptr("Entity A"),
		Type:           Ptr("PERSON"),
		Connections:    []string{"n2", "n3"},
		RelevanceScore: Ptr(float32(0.875)),
		Frequency:      Ptr(int32(4)),
	}
	want := []byte{
		0x0a, 0x02, 'n', '1',
		0x12, 0x08, 'E', 'n', 't', 'i', 't', 'y', ' ', 'A',
		0x1a, 0x06, 'P', 'E', 'R', 'S', 'O', 'N',
		0x2a, 0x02, 'n', '2',
		0x2a, 0x02, 'n', '3',
		0x35, 0x00, 0x00, 0x60, 0x3f,
		0x38, 0x04,
	}
	got := EncodeGraphNode(node)
	if !bytes.Equal(got, want) {
		t.Fatalf("encoded bytes mismatch:\n got=% x\nwant=% x", got, want)
	}

	decoded, err := DecodeGraphNode(got)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, node) {
		t.Fatalf("round trip mismatch: got=%+v want=%+v", decoded, node)
	}
	if decoded.Properties != nil {
		t.Fatalf("expected absent properties, got %v", decoded.Properties)
	}
}

func TestRoundTripEveryMessage(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		name string
		run  func() (any, any, error)
	}{
		{"GraphQuery", func() (any, any, error) {
			m := &GraphQuery{Query: Ptr("q"), GraphID: Ptr("g"), Model: Ptr("m"), MaxDepth: Ptr(int32(-3)), NodeTypes: []string{"A", "B"}, Streaming: Ptr(false)}
			got, err := DecodeGraphQuery(EncodeGraphQuery(m))
			return m, got, err
		}},
		{"GraphRAGResponse", func() (any, any, error) {
			m := sampleResponse()
			got, err := DecodeGraphRAGResponse(EncodeGraphRAGResponse(m))
			return m, got, err
		}},
		{"GraphNode", func() (any, any, error) {
			m := sampleNode("n9")
			got, err := DecodeGraphNode(EncodeGraphNode(m))
			return m, got, err
		}},
		{"ContextChunk", func() (any, any, error) {
			m := &ContextChunk{EntityID: Ptr("e"), Description: Ptr("d"), RelevanceScore: Ptr(float32(1)), Relationships: []string{"R1", "R2"}, EntityType: Ptr("T"), Metadata: map[string]string{"k": "v"}}
			got, err := DecodeContextChunk(EncodeContextChunk(m))
			return m, got, err
		}},
		{"EntityQuery", func() (any, any, error) {
			m := &EntityQuery{Query: Ptr("acme"), GraphID: Ptr("g"), EntityTypes: []string{"ORG"}, SimilarityThreshold: Ptr(float32(0.25)), MaxResults: Ptr(int32(10))}
			got, err := DecodeEntityQuery(EncodeEntityQuery(m))
			return m, got, err
		}},
		{"EntityResolution", func() (any, any, error) {
			m := &EntityResolution{
				QueryID: Ptr("q"),
				Query:   Ptr("acme"),
				Matches: []*EntityMatch{
					{EntityID: Ptr("e1"), Name: Ptr("Acme"), Type: Ptr("ORG"), SimilarityScore: Ptr(float32(0.5)), Description: Ptr("d"), Aliases: []string{"ACME Corp"}, Metadata: map[string]string{"x": "y"}},
					{EntityID: Ptr("e2")},
				},
				ProcessingTimeMS: Ptr(float32(1.5)),
				Timestamp:        Ptr("now"),
			}
			got, err := DecodeEntityResolution(EncodeEntityResolution(m))
			return m, got, err
		}},
		{"EntityMatch", func() (any, any, error) {
			m := &EntityMatch{EntityID: Ptr("e"), Aliases: []string{"a", "b", "c"}}
			got, err := DecodeEntityMatch(EncodeEntityMatch(m))
			return m, got, err
		}},
		{"Document", func() (any, any, error) {
			m := &Document{ID: Ptr("d1"), Name: Ptr("report.pdf"), Content: Ptr("héllo wörld"), Type: Ptr("pdf"), Size: Ptr(int64(-1)), UploadedAt: Ptr("2024-01-01")}
			got, err := DecodeDocument(EncodeDocument(m))
			return m, got, err
		}},
		{"GraphBuildProgress", func() (any, any, error) {
			m := &GraphBuildProgress{
				GraphID:             Ptr("g"),
				Status:              Ptr("building"),
				ProgressPercentage:  Ptr(int32(55)),
				Stats:               &GraphStats{TotalNodes: Ptr(int32(10)), TopEntities: []string{"n1"}},
				Errors:              []string{"e1", "e2"},
				EstimatedCompletion: Ptr("soon"),
			}
			got, err := DecodeGraphBuildProgress(EncodeGraphBuildProgress(m))
			return m, got, err
		}},
		{"GraphStats", func() (any, any, error) {
			m := &GraphStats{TotalNodes: Ptr(int32(1)), TotalEdges: Ptr(int32(2)), NodeTypes: []string{"A"}, EdgeTypes: []string{"B"}, Density: Ptr(float32(0.125)), Connectivity: Ptr(float32(2)), TopEntities: []string{"x", "y"}}
			got, err := DecodeGraphStats(EncodeGraphStats(m))
			return m, got, err
		}},
		{"GraphFilter", func() (any, any, error) {
			m := &GraphFilter{NodeTypes: []string{"A"}, EdgeTypes: []string{"B"}, MinRelevance: Ptr(float32(0.5)), MaxNodes: Ptr(int32(50)), EntityIDs: []string{"n1", "n2"}, IncludeProperties: Ptr(true)}
			got, err := DecodeGraphFilter(EncodeGraphFilter(m))
			return m, got, err
		}},
		{"GraphUpdate", func() (any, any, error) {
			m := &GraphUpdate{
				GraphID:    Ptr("g"),
				UpdateType: Ptr("add"),
				Node:       sampleNode("n1"),
				Edge:       &GraphEdge{ID: Ptr("e1"), Source: Ptr("n1"), Target: Ptr("n2"), Weight: Ptr(float32(0.5))},
				Timestamp:  Ptr("t"),
				Metadata:   map[string]string{"by": "worker"},
			}
			got, err := DecodeGraphUpdate(EncodeGraphUpdate(m))
			return m, got, err
		}},
		{"GraphEdge", func() (any, any, error) {
			m := &GraphEdge{ID: Ptr("e"), Source: Ptr("a"), Target: Ptr("b"), Label: Ptr("knows"), Type: Ptr("REL"), Weight: Ptr(float32(3)), Properties: map[string]string{"since": "2020"}}
			got, err := DecodeGraphEdge(EncodeGraphEdge(m))
			return m, got, err
		}},
		{"HealthCheck", func() (any, any, error) {
			m := &HealthCheck{Service: Ptr("graph"), IncludeMetrics: Ptr(true)}
			got, err := DecodeHealthCheck(EncodeHealthCheck(m))
			return m, got, err
		}},
		{"HealthCheckResponse", func() (any, any, error) {
			m := &HealthCheckResponse{Status: Ptr("ok"), Version: Ptr("1.0"), Timestamp: Ptr("t"), Services: map[string]string{"db": "up", "llm": "degraded"}, SystemPerformance: samplePerformance()}
			got, err := DecodeHealthCheckResponse(EncodeHealthCheckResponse(m))
			return m, got, err
		}},
		{"PerformanceMetrics", func() (any, any, error) {
			m := samplePerformance()
			got, err := DecodePerformanceMetrics(EncodePerformanceMetrics(m))
			return m, got, err
		}},
		{"ContextRequest", func() (any, any, error) {
			m := &ContextRequest{Query: Ptr("q"), GraphID: Ptr("g"), MaxChunks: Ptr(int32(5)), MinRelevance: Ptr(float32(0.25)), Filter: &GraphFilter{MaxNodes: Ptr(int32(3))}, IncludeMetadata: Ptr(false)}
			got, err := DecodeContextRequest(EncodeContextRequest(m))
			return m, got, err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, got, err := tc.run()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, want)
			}
		})
	}
}

func TestEmptyMessagesEncodeToNothing(t *testing.T) {
	testlog.Start(t)

	if got := EncodeGraphQuery(&GraphQuery{}); len(got) != 0 {
		t.Fatalf("expected empty encoding, got % x", got)
	}
	if got := EncodeHealthCheck(nil); len(got) != 0 {
		t.Fatalf("expected empty encoding for nil, got % x", got)
	}
	m, err := DecodeHealthCheck(nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if m.Service != nil || m.IncludeMetrics != nil {
		t.Fatalf("expected all fields absent, got %+v", m)
	}
}

func TestPresentZeroValuesSurvive(t *testing.T) {
	testlog.Start(t)

	m := &GraphQuery{Query: Ptr(""), MaxDepth: Ptr(int32(0)), Streaming: Ptr(false)}
	got, err := DecodeGraphQuery(EncodeGraphQuery(m))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Query == nil || *got.Query != "" {
		t.Fatalf("expected present empty query, got %v", got.Query)
	}
	if got.MaxDepth == nil || *got.MaxDepth != 0 {
		t.Fatalf("expected present zero max_depth, got %v", got.MaxDepth)
	}
	if got.Streaming == nil || *got.Streaming {
		t.Fatalf("expected present false streaming, got %v", got.Streaming)
	}
	if got.GraphID != nil {
		t.Fatalf("expected absent graph_id, got %q", *got.GraphID)
	}
}

func TestDecodeSkipsAppendedUnknownFields(t *testing.T) {
	testlog.Start(t)

	want := &HealthCheck{Service: Ptr("graph"), IncludeMetrics: Ptr(true)}
	b := wire.Wrap(nil)
	b.WriteRaw(EncodeHealthCheck(want))
	b.WriteTag(99, wire.BytesType)
	b.WriteString("from the future")
	b.WriteTag(100, wire.VarintType)
	b.WriteVarint64(1 << 40)
	b.WriteTag(101, wire.Fixed64Type)
	b.WriteFixed64(7)

	got, err := DecodeHealthCheck(b.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mismatch: got=%+v want=%+v", got, want)
	}
}

func TestRepeatedOrderIsPreserved(t *testing.T) {
	testlog.Start(t)

	types := []string{"z", "a", "m", "a", ""}
	got, err := DecodeGraphFilter(EncodeGraphFilter(&GraphFilter{NodeTypes: types}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got.NodeTypes, types) {
		t.Fatalf("order mismatch: got=%q want=%q", got.NodeTypes, types)
	}
}

func TestRepeatedMessageLastWriteWins(t *testing.T) {
	testlog.Start(t)

	first := EncodeGraphBuildProgress(&GraphBuildProgress{Stats: &GraphStats{TotalNodes: Ptr(int32(1)), Density: Ptr(float32(0.5))}})
	second := EncodeGraphBuildProgress(&GraphBuildProgress{Stats: &GraphStats{TotalEdges: Ptr(int32(9))}})

	got, err := DecodeGraphBuildProgress(append(append([]byte{}, first...), second...))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := &GraphStats{TotalEdges: Ptr(int32(9))}
	if !reflect.DeepEqual(got.Stats, want) {
		t.Fatalf("expected second occurrence to replace the first, got %+v", got.Stats)
	}
}

func TestNestedFramingRoundTrip(t *testing.T) {
	testlog.Start(t)

	msg := sampleResponse()
	data := EncodeGraphRAGResponse(msg)

	fields, err := raw.DecodeFields(data)
	if err != nil {
		t.Fatalf("raw decode: %v", err)
	}
	contexts := 0
	for _, f := range fields {
		if f.Number == 6 {
			contexts++
			if f.Type != wire.BytesType {
				t.Fatalf("context field wire type=%v", f.Type)
			}
		}
	}
	if contexts != 3 {
		t.Fatalf("expected 3 context entries, got %d", contexts)
	}
	perf, ok := raw.GetField(fields, 7)
	if !ok {
		t.Fatalf("performance field missing")
	}
	if !bytes.Equal(perf.Value, EncodePerformanceMetrics(msg.Performance)) {
		t.Fatalf("performance payload is not the standalone encoding")
	}

	got, err := DecodeGraphRAGResponse(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, msg) {
		t.Fatalf("round trip mismatch")
	}
}

func TestTruncatedResponseFailsOffBoundary(t *testing.T) {
	testlog.Start(t)

	data := EncodeGraphRAGResponse(sampleResponse())
	fields, err := raw.DecodeFields(data)
	if err != nil {
		t.Fatalf("raw decode: %v", err)
	}
	boundary := make(map[int]bool)
	for _, off := range raw.Boundaries(fields) {
		boundary[off] = true
	}

	for cut := 0; cut < len(data); cut++ {
		got, err := DecodeGraphRAGResponse(data[:cut])
		if boundary[cut] {
			if err != nil {
				t.Fatalf("cut=%d on a field boundary should decode, got %v", cut, err)
			}
			continue
		}
		if !errors.Is(err, wire.ErrTruncated) {
			t.Fatalf("cut=%d expected ErrTruncated, got %v", cut, err)
		}
		if got != nil {
			t.Fatalf("cut=%d returned a partial message", cut)
		}
	}
}

func TestMalformedUTF8IsReplaced(t *testing.T) {
	testlog.Start(t)

	b := wire.Wrap(nil)
	b.WriteTag(1, wire.BytesType)
	b.WriteBytes([]byte{'a', 0xff, 'b'})

	got, err := DecodeGraphNode(b.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == nil || *got.ID != "a\uFFFDb" {
		t.Fatalf("expected replacement character, got %v", got.ID)
	}
}

type countingObserver struct {
	encodes map[string]int
	decodes map[string]int
	failed  int
}

func (o *countingObserver) ObserveEncode(message string, _ int) {
	o.encodes[message]++
}

func (o *countingObserver) ObserveDecode(message string, _ int, err error) {
	o.decodes[message]++
	if err != nil {
		o.failed++
	}
}

func TestCodecPoolsAndObserves(t *testing.T) {
	testlog.Start(t)

	pool := wire.NewPool(wire.DefaultPoolOptions())
	obs := &countingObserver{encodes: map[string]int{}, decodes: map[string]int{}}
	codec := NewCodec(pool, WithObserver(obs))

	msg := sampleResponse()
	want := EncodeGraphRAGResponse(msg)
	for i := 0; i < 3; i++ {
		got := codec.EncodeGraphRAGResponse(msg)
		if !bytes.Equal(got, want) {
			t.Fatalf("pooled encoding differs on iteration %d", i)
		}
	}
	if _, err := codec.DecodeGraphRAGResponse(want); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := codec.DecodeGraphRAGResponse(want[:len(want)-1]); err == nil {
		t.Fatalf("expected truncated decode to fail")
	}

	if obs.encodes["GraphRAGResponse"] != 3 {
		t.Fatalf("encodes=%v", obs.encodes)
	}
	if obs.decodes["GraphRAGResponse"] != 2 || obs.failed != 1 {
		t.Fatalf("decodes=%v failed=%d", obs.decodes, obs.failed)
	}
	stats := pool.Stats()
	if stats.Hits == 0 || stats.Releases == 0 {
		t.Fatalf("expected pool reuse, got %+v", stats)
	}
}

func TestNilCodecDoesNotPool(t *testing.T) {
	testlog.Start(t)

	var codec *Codec
	node := sampleNode("n1")
	if !bytes.Equal(codec.EncodeGraphNode(node), EncodeGraphNode(node)) {
		t.Fatalf("nil codec encoding differs")
	}
	if codec.Pool() != nil {
		t.Fatalf("nil codec should report no pool")
	}
}
