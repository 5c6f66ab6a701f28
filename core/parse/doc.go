// Package parse recovers a single JSON value from raw LLM text output.
// Language models frequently wrap JSON in narrative prose or markdown code
// fences, drop separators between array elements, leave trailing commas or
// emit a bare object where a list was requested. This package applies a
// bounded, ordered recovery strategy: candidate extraction by boundary
// heuristic, a fixed list of string-aware repair rules, and strict decoding of
// each variant in turn, before falling back to a typed [ExtractionError].
//
// Decoded values are represented by the closed [Value] variant so callers can
// switch exhaustively over every JSON kind.
//
// The main entry points are [Extract], which returns the decoded [Value], and
// the generic [ExtractAs], which additionally runs a caller supplied
// normalizer into a concrete record type.
package parse
