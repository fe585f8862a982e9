// Package schema owns declarative message field tables and the single
// encode/decode engine that walks them.
//
// Ownership boundary:
// - field kinds and their wire types
// - typed field accessors with explicit presence
// - tag dispatch, nested length framing, map entries, unknown-field skipping
package schema
