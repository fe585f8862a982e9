package graphrag

import "github.com/danmuck/ragwire/internal/protocol/schema"

// Field numbers below are the wire contract shared with every peer. Never
// renumber a field; retire it and take a fresh number instead.

var graphQuerySchema = schema.New("GraphQuery",
	schema.String(1, "query", func(m *GraphQuery) **string { return &m.Query }),
	schema.String(2, "graph_id", func(m *GraphQuery) **string { return &m.GraphID }),
	schema.String(3, "model", func(m *GraphQuery) **string { return &m.Model }),
	schema.Int32(4, "max_depth", func(m *GraphQuery) **int32 { return &m.MaxDepth }),
	schema.Strings(5, "node_types", func(m *GraphQuery) *[]string { return &m.NodeTypes }),
	schema.Bool(6, "streaming", func(m *GraphQuery) **bool { return &m.Streaming }),
)

var graphRAGResponseSchema = schema.New("GraphRAGResponse",
	schema.String(1, "query_id", func(m *GraphRAGResponse) **string { return &m.QueryID }),
	schema.String(2, "query", func(m *GraphRAGResponse) **string { return &m.Query }),
	schema.String(3, "graph_id", func(m *GraphRAGResponse) **string { return &m.GraphID }),
	schema.String(4, "model", func(m *GraphRAGResponse) **string { return &m.Model }),
	schema.String(5, "response", func(m *GraphRAGResponse) **string { return &m.Response }),
	schema.Messages(6, "context", contextChunkSchema, func(m *GraphRAGResponse) *[]*ContextChunk { return &m.Context }),
	schema.Message(7, "performance", performanceMetricsSchema, func(m *GraphRAGResponse) **PerformanceMetrics { return &m.Performance }),
	schema.Messages(8, "relevant_nodes", graphNodeSchema, func(m *GraphRAGResponse) *[]*GraphNode { return &m.RelevantNodes }),
	schema.String(9, "timestamp", func(m *GraphRAGResponse) **string { return &m.Timestamp }),
)

var graphNodeSchema = schema.New("GraphNode",
	schema.String(1, "id", func(m *GraphNode) **string { return &m.ID }),
	schema.String(2, "label", func(m *GraphNode) **string { return &m.Label }),
	schema.String(3, "type", func(m *GraphNode) **string { return &m.Type }),
	schema.StringMap(4, "properties", func(m *GraphNode) *map[string]string { return &m.Properties }),
	schema.Strings(5, "connections", func(m *GraphNode) *[]string { return &m.Connections }),
	schema.Float(6, "relevance_score", func(m *GraphNode) **float32 { return &m.RelevanceScore }),
	schema.Int32(7, "frequency", func(m *GraphNode) **int32 { return &m.Frequency }),
)

var contextChunkSchema = schema.New("ContextChunk",
	schema.String(1, "entity_id", func(m *ContextChunk) **string { return &m.EntityID }),
	schema.String(2, "description", func(m *ContextChunk) **string { return &m.Description }),
	schema.Float(3, "relevance_score", func(m *ContextChunk) **float32 { return &m.RelevanceScore }),
	schema.Strings(4, "relationships", func(m *ContextChunk) *[]string { return &m.Relationships }),
	schema.String(5, "entity_type", func(m *ContextChunk) **string { return &m.EntityType }),
	schema.StringMap(6, "metadata", func(m *ContextChunk) *map[string]string { return &m.Metadata }),
)

var entityQuerySchema = schema.New("EntityQuery",
	schema.String(1, "query", func(m *EntityQuery) **string { return &m.Query }),
	schema.String(2, "graph_id", func(m *EntityQuery) **string { return &m.GraphID }),
	schema.Strings(3, "entity_types", func(m *EntityQuery) *[]string { return &m.EntityTypes }),
	schema.Float(4, "similarity_threshold", func(m *EntityQuery) **float32 { return &m.SimilarityThreshold }),
	schema.Int32(5, "max_results", func(m *EntityQuery) **int32 { return &m.MaxResults }),
)

var entityResolutionSchema = schema.New("EntityResolution",
	schema.String(1, "query_id", func(m *EntityResolution) **string { return &m.QueryID }),
	schema.String(2, "query", func(m *EntityResolution) **string { return &m.Query }),
	schema.Messages(3, "matches", entityMatchSchema, func(m *EntityResolution) *[]*EntityMatch { return &m.Matches }),
	schema.Float(4, "processing_time_ms", func(m *EntityResolution) **float32 { return &m.ProcessingTimeMS }),
	schema.String(5, "timestamp", func(m *EntityResolution) **string { return &m.Timestamp }),
)

var entityMatchSchema = schema.New("EntityMatch",
	schema.String(1, "entity_id", func(m *EntityMatch) **string { return &m.EntityID }),
	schema.String(2, "name", func(m *EntityMatch) **string { return &m.Name }),
	schema.String(3, "type", func(m *EntityMatch) **string { return &m.Type }),
	schema.Float(4, "similarity_score", func(m *EntityMatch) **float32 { return &m.SimilarityScore }),
	schema.String(5, "description", func(m *EntityMatch) **string { return &m.Description }),
	schema.Strings(6, "aliases", func(m *EntityMatch) *[]string { return &m.Aliases }),
	schema.StringMap(7, "metadata", func(m *EntityMatch) *map[string]string { return &m.Metadata }),
)

var documentSchema = schema.New("Document",
	schema.String(1, "id", func(m *Document) **string { return &m.ID }),
	schema.String(2, "name", func(m *Document) **string { return &m.Name }),
	schema.String(3, "content", func(m *Document) **string { return &m.Content }),
	schema.String(4, "type", func(m *Document) **string { return &m.Type }),
	schema.Int64(5, "size", func(m *Document) **int64 { return &m.Size }),
	schema.String(6, "uploaded_at", func(m *Document) **string { return &m.UploadedAt }),
)

var graphBuildProgressSchema = schema.New("GraphBuildProgress",
	schema.String(1, "graph_id", func(m *GraphBuildProgress) **string { return &m.GraphID }),
	schema.String(2, "status", func(m *GraphBuildProgress) **string { return &m.Status }),
	schema.Int32(3, "progress_percentage", func(m *GraphBuildProgress) **int32 { return &m.ProgressPercentage }),
	schema.Message(4, "stats", graphStatsSchema, func(m *GraphBuildProgress) **GraphStats { return &m.Stats }),
	schema.Strings(5, "errors", func(m *GraphBuildProgress) *[]string { return &m.Errors }),
	schema.String(6, "estimated_completion", func(m *GraphBuildProgress) **string { return &m.EstimatedCompletion }),
)

var graphStatsSchema = schema.New("GraphStats",
	schema.Int32(1, "total_nodes", func(m *GraphStats) **int32 { return &m.TotalNodes }),
	schema.Int32(2, "total_edges", func(m *GraphStats) **int32 { return &m.TotalEdges }),
	schema.Strings(3, "node_types", func(m *GraphStats) *[]string { return &m.NodeTypes }),
	schema.Strings(4, "edge_types", func(m *GraphStats) *[]string { return &m.EdgeTypes }),
	schema.Float(5, "density", func(m *GraphStats) **float32 { return &m.Density }),
	schema.Float(6, "connectivity", func(m *GraphStats) **float32 { return &m.Connectivity }),
	schema.Strings(7, "top_entities", func(m *GraphStats) *[]string { return &m.TopEntities }),
)

var graphFilterSchema = schema.New("GraphFilter",
	schema.Strings(1, "node_types", func(m *GraphFilter) *[]string { return &m.NodeTypes }),
	schema.Strings(2, "edge_types", func(m *GraphFilter) *[]string { return &m.EdgeTypes }),
	schema.Float(3, "min_relevance", func(m *GraphFilter) **float32 { return &m.MinRelevance }),
	schema.Int32(4, "max_nodes", func(m *GraphFilter) **int32 { return &m.MaxNodes }),
	schema.Strings(5, "entity_ids", func(m *GraphFilter) *[]string { return &m.EntityIDs }),
	schema.Bool(6, "include_properties", func(m *GraphFilter) **bool { return &m.IncludeProperties }),
)

var graphUpdateSchema = schema.New("GraphUpdate",
	schema.String(1, "graph_id", func(m *GraphUpdate) **string { return &m.GraphID }),
	schema.String(2, "update_type", func(m *GraphUpdate) **string { return &m.UpdateType }),
	schema.Message(3, "node", graphNodeSchema, func(m *GraphUpdate) **GraphNode { return &m.Node }),
	schema.Message(4, "edge", graphEdgeSchema, func(m *GraphUpdate) **GraphEdge { return &m.Edge }),
	schema.String(5, "timestamp", func(m *GraphUpdate) **string { return &m.Timestamp }),
	schema.StringMap(6, "metadata", func(m *GraphUpdate) *map[string]string { return &m.Metadata }),
)

var graphEdgeSchema = schema.New("GraphEdge",
	schema.String(1, "id", func(m *GraphEdge) **string { return &m.ID }),
	schema.String(2, "source", func(m *GraphEdge) **string { return &m.Source }),
	schema.String(3, "target", func(m *GraphEdge) **string { return &m.Target }),
	schema.String(4, "label", func(m *GraphEdge) **string { return &m.Label }),
	schema.String(5, "type", func(m *GraphEdge) **string { return &m.Type }),
	schema.Float(6, "weight", func(m *GraphEdge) **float32 { return &m.Weight }),
	schema.StringMap(7, "properties", func(m *GraphEdge) *map[string]string { return &m.Properties }),
)

var healthCheckSchema = schema.New("HealthCheck",
	schema.String(1, "service", func(m *HealthCheck) **string { return &m.Service }),
	schema.Bool(2, "include_metrics", func(m *HealthCheck) **bool { return &m.IncludeMetrics }),
)

var healthCheckResponseSchema = schema.New("HealthCheckResponse",
	schema.String(1, "status", func(m *HealthCheckResponse) **string { return &m.Status }),
	schema.String(2, "version", func(m *HealthCheckResponse) **string { return &m.Version }),
	schema.String(3, "timestamp", func(m *HealthCheckResponse) **string { return &m.Timestamp }),
	schema.StringMap(4, "services", func(m *HealthCheckResponse) *map[string]string { return &m.Services }),
	schema.Message(5, "system_performance", performanceMetricsSchema, func(m *HealthCheckResponse) **PerformanceMetrics { return &m.SystemPerformance }),
)

var performanceMetricsSchema = schema.New("PerformanceMetrics",
	schema.Float(1, "processing_time_ms", func(m *PerformanceMetrics) **float32 { return &m.ProcessingTimeMS }),
	schema.Float(2, "context_retrieval_time_ms", func(m *PerformanceMetrics) **float32 { return &m.ContextRetrievalTimeMS }),
	schema.Float(3, "llm_generation_time_ms", func(m *PerformanceMetrics) **float32 { return &m.LLMGenerationTimeMS }),
	schema.Int32(4, "total_nodes_accessed", func(m *PerformanceMetrics) **int32 { return &m.TotalNodesAccessed }),
	schema.Int32(5, "total_edges_traversed", func(m *PerformanceMetrics) **int32 { return &m.TotalEdgesTraversed }),
	schema.Float(6, "compression_ratio", func(m *PerformanceMetrics) **float32 { return &m.CompressionRatio }),
	schema.Int64(7, "memory_usage_bytes", func(m *PerformanceMetrics) **int64 { return &m.MemoryUsageBytes }),
	schema.Float(8, "cpu_usage_percent", func(m *PerformanceMetrics) **float32 { return &m.CPUUsagePercent }),
)

var contextRequestSchema = schema.New("ContextRequest",
	schema.String(1, "query", func(m *ContextRequest) **string { return &m.Query }),
	schema.String(2, "graph_id", func(m *ContextRequest) **string { return &m.GraphID }),
	schema.Int32(3, "max_chunks", func(m *ContextRequest) **int32 { return &m.MaxChunks }),
	schema.Float(4, "min_relevance", func(m *ContextRequest) **float32 { return &m.MinRelevance }),
	schema.Message(5, "filter", graphFilterSchema, func(m *ContextRequest) **GraphFilter { return &m.Filter }),
	schema.Bool(6, "include_metadata", func(m *ContextRequest) **bool { return &m.IncludeMetadata }),
)
