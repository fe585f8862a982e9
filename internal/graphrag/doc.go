// Package graphrag owns the GraphRAG message set and its protobuf codecs.
//
// Ownership boundary:
// - message types with explicit field presence
// - per-type field tables (field numbers are the wire contract)
// - Encode/Decode entry points, pooled Codec, name registry
//
// Optional scalars are pointers, repeated fields are slices and maps are
// Go maps; nil means the field is absent and is not written.
package graphrag
