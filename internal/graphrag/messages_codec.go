package graphrag

func (c *Codec) EncodeGraphQuery(m *GraphQuery) []byte { return encodeWith(c, graphQuerySchema, m) }

func (c *Codec) DecodeGraphQuery(data []byte) (*GraphQuery, error) { return decodeWith(c, graphQuerySchema, data) }

func (c *Codec) EncodeGraphRAGResponse(m *GraphRAGResponse) []byte { return encodeWith(c, graphRAGResponseSchema, m) }

func (c *Codec) DecodeGraphRAGResponse(data []byte) (*GraphRAGResponse, error) { return decodeWith(c, graphRAGResponseSchema, data) }

func (c *Codec) EncodeGraphNode(m *GraphNode) []byte { return encodeWith(c, graphNodeSchema, m) }

func (c *Codec) DecodeGraphNode(data []byte) (*GraphNode, error) { return decodeWith(c, graphNodeSchema, data) }

func (c *Codec) EncodeContextChunk(m *ContextChunk) []byte { return encodeWith(c, contextChunkSchema, m) }

func (c *Codec) DecodeContextChunk(data []byte) (*ContextChunk, error) { return decodeWith(c, contextChunkSchema, data) }

func (c *Codec) EncodeEntityQuery(m *EntityQuery) []byte { return encodeWith(c, entityQuerySchema, m) }

func (c *Codec) DecodeEntityQuery(data []byte) (*EntityQuery, error) { return decodeWith(c, entityQuerySchema, data) }

func (c *Codec) EncodeEntityResolution(m *EntityResolution) []byte { return encodeWith(c, entityResolutionSchema, m) }

func (c *Codec) DecodeEntityResolution(data []byte) (*EntityResolution, error) { return decodeWith(c, entityResolutionSchema, data) }

func (c *Codec) EncodeEntityMatch(m *EntityMatch) []byte { return encodeWith(c, entityMatchSchema, m) }

func (c *Codec) DecodeEntityMatch(data []byte) (*EntityMatch, error) { return decodeWith(c, entityMatchSchema, data) }

func (c *Codec) EncodeDocument(m *Document) []byte { return encodeWith(c, documentSchema, m) }

func (c *Codec) DecodeDocument(data []byte) (*Document, error) { return decodeWith(c, documentSchema, data) }

func (c *Codec) EncodeGraphBuildProgress(m *GraphBuildProgress) []byte { return encodeWith(c, graphBuildProgressSchema, m) }

func (c *Codec) DecodeGraphBuildProgress(data []byte) (*GraphBuildProgress, error) { return decodeWith(c, graphBuildProgressSchema, data) }

func (c *Codec) EncodeGraphStats(m *GraphStats) []byte { return encodeWith(c, graphStatsSchema, m) }

func (c *Codec) DecodeGraphStats(data []byte) (*GraphStats, error) { return decodeWith(c, graphStatsSchema, data) }

func (c *Codec) EncodeGraphFilter(m *GraphFilter) []byte { return encodeWith(c, graphFilterSchema, m) }

func (c *Codec) DecodeGraphFilter(data []byte) (*GraphFilter, error) { return decodeWith(c, graphFilterSchema, data) }

func (c *Codec) EncodeGraphUpdate(m *GraphUpdate) []byte { return encodeWith(c, graphUpdateSchema, m) }

func (c *Codec) DecodeGraphUpdate(data []byte) (*GraphUpdate, error) { return decodeWith(c, graphUpdateSchema, data) }

func (c *Codec) EncodeGraphEdge(m *GraphEdge) []byte { return encodeWith(c, graphEdgeSchema, m) }

func (c *Codec) DecodeGraphEdge(data []byte) (*GraphEdge, error) { return decodeWith(c, graphEdgeSchema, data) }

func (c *Codec) EncodeHealthCheck(m *HealthCheck) []byte { return encodeWith(c, healthCheckSchema, m) }

func (c *Codec) DecodeHealthCheck(data []byte) (*HealthCheck, error) { return decodeWith(c, healthCheckSchema, data) }

func (c *Codec) EncodeHealthCheckResponse(m *HealthCheckResponse) []byte { return encodeWith(c, healthCheckResponseSchema, m) }

func (c *Codec) DecodeHealthCheckResponse(data []byte) (*HealthCheckResponse, error) { return decodeWith(c, healthCheckResponseSchema, data) }

func (c *Codec) EncodePerformanceMetrics(m *PerformanceMetrics) []byte { return encodeWith(c, performanceMetricsSchema, m) }

func (c *Codec) DecodePerformanceMetrics(data []byte) (*PerformanceMetrics, error) { return decodeWith(c, performanceMetricsSchema, data) }

func (c *Codec) EncodeContextRequest(m *ContextRequest) []byte { return encodeWith(c, contextRequestSchema, m) }

func (c *Codec) DecodeContextRequest(data []byte) (*ContextRequest, error) { return decodeWith(c, contextRequestSchema, data) }

// Package-level entry points allocate per call and keep no shared state.

func EncodeGraphQuery(m *GraphQuery) []byte { return encodeWith(nil, graphQuerySchema, m) }

func DecodeGraphQuery(data []byte) (*GraphQuery, error) { return decodeWith(nil, graphQuerySchema, data) }

func EncodeGraphRAGResponse(m *GraphRAGResponse) []byte { return encodeWith(nil, graphRAGResponseSchema, m) }

func DecodeGraphRAGResponse(data []byte) (*GraphRAGResponse, error) { return decodeWith(nil, graphRAGResponseSchema, data) }

func EncodeGraphNode(m *GraphNode) []byte { return encodeWith(nil, graphNodeSchema, m) }

func DecodeGraphNode(data []byte) (*GraphNode, error) { return decodeWith(nil, graphNodeSchema, data) }

func EncodeContextChunk(m *ContextChunk) []byte { return encodeWith(nil, contextChunkSchema, m) }

func DecodeContextChunk(data []byte) (*ContextChunk, error) { return decodeWith(nil, contextChunkSchema, data) }

func EncodeEntityQuery(m *EntityQuery) []byte { return encodeWith(nil, entityQuerySchema, m) }

func DecodeEntityQuery(data []byte) (*EntityQuery, error) { return decodeWith(nil, entityQuerySchema, data) }

func EncodeEntityResolution(m *EntityResolution) []byte { return encodeWith(nil, entityResolutionSchema, m) }

func DecodeEntityResolution(data []byte) (*EntityResolution, error) { return decodeWith(nil, entityResolutionSchema, data) }

func EncodeEntityMatch(m *EntityMatch) []byte { return encodeWith(nil, entityMatchSchema, m) }

func DecodeEntityMatch(data []byte) (*EntityMatch, error) { return decodeWith(nil, entityMatchSchema, data) }

func EncodeDocument(m *Document) []byte { return encodeWith(nil, documentSchema, m) }

func DecodeDocument(data []byte) (*Document, error) { return decodeWith(nil, documentSchema, data) }

func EncodeGraphBuildProgress(m *GraphBuildProgress) []byte { return encodeWith(nil, graphBuildProgressSchema, m) }

func DecodeGraphBuildProgress(data []byte) (*GraphBuildProgress, error) { return decodeWith(nil, graphBuildProgressSchema, data) }

func EncodeGraphStats(m *GraphStats) []byte { return encodeWith(nil, graphStatsSchema, m) }

func DecodeGraphStats(data []byte) (*GraphStats, error) { return decodeWith(nil, graphStatsSchema, data) }

func EncodeGraphFilter(m *GraphFilter) []byte { return encodeWith(nil, graphFilterSchema, m) }

func DecodeGraphFilter(data []byte) (*GraphFilter, error) { return decodeWith(nil, graphFilterSchema, data) }

func EncodeGraphUpdate(m *GraphUpdate) []byte { return encodeWith(nil, graphUpdateSchema, m) }

func DecodeGraphUpdate(data []byte) (*GraphUpdate, error) { return decodeWith(nil, graphUpdateSchema, data) }

func EncodeGraphEdge(m *GraphEdge) []byte { return encodeWith(nil, graphEdgeSchema, m) }

func DecodeGraphEdge(data []byte) (*GraphEdge, error) { return decodeWith(nil, graphEdgeSchema, data) }

func EncodeHealthCheck(m *HealthCheck) []byte { return encodeWith(nil, healthCheckSchema, m) }

func DecodeHealthCheck(data []byte) (*HealthCheck, error) { return decodeWith(nil, healthCheckSchema, data) }

func EncodeHealthCheckResponse(m *HealthCheckResponse) []byte { return encodeWith(nil, healthCheckResponseSchema, m) }

func DecodeHealthCheckResponse(data []byte) (*HealthCheckResponse, error) { return decodeWith(nil, healthCheckResponseSchema, data) }

func EncodePerformanceMetrics(m *PerformanceMetrics) []byte { return encodeWith(nil, performanceMetricsSchema, m) }

func DecodePerformanceMetrics(data []byte) (*PerformanceMetrics, error) { return decodeWith(nil, performanceMetricsSchema, data) }

func EncodeContextRequest(m *ContextRequest) []byte { return encodeWith(nil, contextRequestSchema, m) }

func DecodeContextRequest(data []byte) (*ContextRequest, error) { return decodeWith(nil, contextRequestSchema, data) }
