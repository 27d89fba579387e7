// Package schema provides structural pre-validation of raw card JSON
// against an embedded JSON Schema document.
//
// Structural validation is a coarse, optional first pass: it catches
// shape problems (wrong value types, malformed version strings) before
// typed parsing, and is entirely advisory. The parser itself remains
// lenient and will accept documents the schema flags.
package schema
