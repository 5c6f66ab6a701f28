// Package utils holds small helpers shared by the provider and CLI code:
// [DoPostSync] for JSON round-trips over HTTP, [JSONToString] for printing
// and [Ptr] for optional fields.
package utils
