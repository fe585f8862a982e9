package graphrag

// GraphQuery asks for a graph-grounded answer to a query.
type GraphQuery struct {
	Query     *string  `json:"query,omitempty" yaml:"query,omitempty"`
	GraphID   *string  `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	Model     *string  `json:"model,omitempty" yaml:"model,omitempty"`
	MaxDepth  *int32   `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	NodeTypes []string `json:"node_types,omitempty" yaml:"node_types,omitempty"`
	Streaming *bool    `json:"streaming,omitempty" yaml:"streaming,omitempty"`
}

// GraphRAGResponse is the answer to a GraphQuery with its supporting context.
type GraphRAGResponse struct {
	QueryID       *string             `json:"query_id,omitempty" yaml:"query_id,omitempty"`
	Query         *string             `json:"query,omitempty" yaml:"query,omitempty"`
	GraphID       *string             `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	Model         *string             `json:"model,omitempty" yaml:"model,omitempty"`
	Response      *string             `json:"response,omitempty" yaml:"response,omitempty"`
	Context       []*ContextChunk     `json:"context,omitempty" yaml:"context,omitempty"`
	Performance   *PerformanceMetrics `json:"performance,omitempty" yaml:"performance,omitempty"`
	RelevantNodes []*GraphNode        `json:"relevant_nodes,omitempty" yaml:"relevant_nodes,omitempty"`
	Timestamp     *string             `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

type GraphNode struct {
	ID             *string           `json:"id,omitempty" yaml:"id,omitempty"`
	Label          *string           `json:"label,omitempty" yaml:"label,omitempty"`
	Type           *string           `json:"type,omitempty" yaml:"type,omitempty"`
	Properties     map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
	Connections    []string          `json:"connections,omitempty" yaml:"connections,omitempty"`
	RelevanceScore *float32          `json:"relevance_score,omitempty" yaml:"relevance_score,omitempty"`
	Frequency      *int32            `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// ContextChunk is one retrieved entity used to ground a response.
type ContextChunk struct {
	EntityID       *string           `json:"entity_id,omitempty" yaml:"entity_id,omitempty"`
	Description    *string           `json:"description,omitempty" yaml:"description,omitempty"`
	RelevanceScore *float32          `json:"relevance_score,omitempty" yaml:"relevance_score,omitempty"`
	Relationships  []string          `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	EntityType     *string           `json:"entity_type,omitempty" yaml:"entity_type,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type EntityQuery struct {
	Query               *string  `json:"query,omitempty" yaml:"query,omitempty"`
	GraphID             *string  `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	EntityTypes         []string `json:"entity_types,omitempty" yaml:"entity_types,omitempty"`
	SimilarityThreshold *float32 `json:"similarity_threshold,omitempty" yaml:"similarity_threshold,omitempty"`
	MaxResults          *int32   `json:"max_results,omitempty" yaml:"max_results,omitempty"`
}

type EntityResolution struct {
	QueryID          *string        `json:"query_id,omitempty" yaml:"query_id,omitempty"`
	Query            *string        `json:"query,omitempty" yaml:"query,omitempty"`
	Matches          []*EntityMatch `json:"matches,omitempty" yaml:"matches,omitempty"`
	ProcessingTimeMS *float32       `json:"processing_time_ms,omitempty" yaml:"processing_time_ms,omitempty"`
	Timestamp        *string        `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

type EntityMatch struct {
	EntityID        *string           `json:"entity_id,omitempty" yaml:"entity_id,omitempty"`
	Name            *string           `json:"name,omitempty" yaml:"name,omitempty"`
	Type            *string           `json:"type,omitempty" yaml:"type,omitempty"`
	SimilarityScore *float32          `json:"similarity_score,omitempty" yaml:"similarity_score,omitempty"`
	Description     *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Aliases         []string          `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type Document struct {
	ID         *string `json:"id,omitempty" yaml:"id,omitempty"`
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	Content    *string `json:"content,omitempty" yaml:"content,omitempty"`
	Type       *string `json:"type,omitempty" yaml:"type,omitempty"`
	Size       *int64  `json:"size,omitempty" yaml:"size,omitempty"`
	UploadedAt *string `json:"uploaded_at,omitempty" yaml:"uploaded_at,omitempty"`
}

// GraphBuildProgress reports the state of a running graph build.
type GraphBuildProgress struct {
	GraphID             *string     `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	Status              *string     `json:"status,omitempty" yaml:"status,omitempty"`
	ProgressPercentage  *int32      `json:"progress_percentage,omitempty" yaml:"progress_percentage,omitempty"`
	Stats               *GraphStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Errors              []string    `json:"errors,omitempty" yaml:"errors,omitempty"`
	EstimatedCompletion *string     `json:"estimated_completion,omitempty" yaml:"estimated_completion,omitempty"`
}

type GraphStats struct {
	TotalNodes   *int32   `json:"total_nodes,omitempty" yaml:"total_nodes,omitempty"`
	TotalEdges   *int32   `json:"total_edges,omitempty" yaml:"total_edges,omitempty"`
	NodeTypes    []string `json:"node_types,omitempty" yaml:"node_types,omitempty"`
	EdgeTypes    []string `json:"edge_types,omitempty" yaml:"edge_types,omitempty"`
	Density      *float32 `json:"density,omitempty" yaml:"density,omitempty"`
	Connectivity *float32 `json:"connectivity,omitempty" yaml:"connectivity,omitempty"`
	TopEntities  []string `json:"top_entities,omitempty" yaml:"top_entities,omitempty"`
}

type GraphFilter struct {
	NodeTypes         []string `json:"node_types,omitempty" yaml:"node_types,omitempty"`
	EdgeTypes         []string `json:"edge_types,omitempty" yaml:"edge_types,omitempty"`
	MinRelevance      *float32 `json:"min_relevance,omitempty" yaml:"min_relevance,omitempty"`
	MaxNodes          *int32   `json:"max_nodes,omitempty" yaml:"max_nodes,omitempty"`
	EntityIDs         []string `json:"entity_ids,omitempty" yaml:"entity_ids,omitempty"`
	IncludeProperties *bool    `json:"include_properties,omitempty" yaml:"include_properties,omitempty"`
}

// GraphUpdate carries a node or an edge change plus free-form metadata.
type GraphUpdate struct {
	GraphID    *string           `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	UpdateType *string           `json:"update_type,omitempty" yaml:"update_type,omitempty"`
	Node       *GraphNode        `json:"node,omitempty" yaml:"node,omitempty"`
	Edge       *GraphEdge        `json:"edge,omitempty" yaml:"edge,omitempty"`
	Timestamp  *string           `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type GraphEdge struct {
	ID         *string           `json:"id,omitempty" yaml:"id,omitempty"`
	Source     *string           `json:"source,omitempty" yaml:"source,omitempty"`
	Target     *string           `json:"target,omitempty" yaml:"target,omitempty"`
	Label      *string           `json:"label,omitempty" yaml:"label,omitempty"`
	Type       *string           `json:"type,omitempty" yaml:"type,omitempty"`
	Weight     *float32          `json:"weight,omitempty" yaml:"weight,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type HealthCheck struct {
	Service        *string `json:"service,omitempty" yaml:"service,omitempty"`
	IncludeMetrics *bool   `json:"include_metrics,omitempty" yaml:"include_metrics,omitempty"`
}

type HealthCheckResponse struct {
	Status            *string             `json:"status,omitempty" yaml:"status,omitempty"`
	Version           *string             `json:"version,omitempty" yaml:"version,omitempty"`
	Timestamp         *string             `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Services          map[string]string   `json:"services,omitempty" yaml:"services,omitempty"`
	SystemPerformance *PerformanceMetrics `json:"system_performance,omitempty" yaml:"system_performance,omitempty"`
}

type PerformanceMetrics struct {
	ProcessingTimeMS       *float32 `json:"processing_time_ms,omitempty" yaml:"processing_time_ms,omitempty"`
	ContextRetrievalTimeMS *float32 `json:"context_retrieval_time_ms,omitempty" yaml:"context_retrieval_time_ms,omitempty"`
	LLMGenerationTimeMS    *float32 `json:"llm_generation_time_ms,omitempty" yaml:"llm_generation_time_ms,omitempty"`
	TotalNodesAccessed     *int32   `json:"total_nodes_accessed,omitempty" yaml:"total_nodes_accessed,omitempty"`
	TotalEdgesTraversed    *int32   `json:"total_edges_traversed,omitempty" yaml:"total_edges_traversed,omitempty"`
	CompressionRatio       *float32 `json:"compression_ratio,omitempty" yaml:"compression_ratio,omitempty"`
	MemoryUsageBytes       *int64   `json:"memory_usage_bytes,omitempty" yaml:"memory_usage_bytes,omitempty"`
	CPUUsagePercent        *float32 `json:"cpu_usage_percent,omitempty" yaml:"cpu_usage_percent,omitempty"`
}

type ContextRequest struct {
	Query           *string      `json:"query,omitempty" yaml:"query,omitempty"`
	GraphID         *string      `json:"graph_id,omitempty" yaml:"graph_id,omitempty"`
	MaxChunks       *int32       `json:"max_chunks,omitempty" yaml:"max_chunks,omitempty"`
	MinRelevance    *float32     `json:"min_relevance,omitempty" yaml:"min_relevance,omitempty"`
	Filter          *GraphFilter `json:"filter,omitempty" yaml:"filter,omitempty"`
	IncludeMetadata *bool        `json:"include_metadata,omitempty" yaml:"include_metadata,omitempty"`
}

// Ptr returns a pointer to v, for populating optional fields.
func Ptr[V any](v V) *V {
	return &v
}
