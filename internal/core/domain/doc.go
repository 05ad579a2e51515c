// Package domain defines the core business entities for Pantry.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Schema: The binding of two person keys to category field names
//   - Food: A validated catalog record
//   - Collection: An ordered sequence of Foods with filter/sort/digest
//   - Query: Sanitized filter and sort intent from untrusted input
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import the Go
// standard library and golang.org/x/text (sort collation). All other
// packages depend on domain, never the reverse.
//
// # Validation Philosophy
//
// Two entry points coexist deliberately. Food construction is strict:
// malformed data indicates upstream corruption and must fail loudly.
// Query construction is lenient: malformed input indicates harmless
// user typos and degrades field by field to "no filter".
package domain
