// Package wire owns protobuf binary encoding primitives.
//
// Ownership boundary:
// - growable read/write buffer with offset and limit cursors
// - bounded buffer pool
// - varint, zigzag, fixed32/fixed64, length-delimited values
// - tag framing and unknown-field skipping
package wire
