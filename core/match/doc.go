// Package match holds the football prediction records produced from model
// output and the normalizers that turn a decoded [parse.Value] into them.
//
// Optional fields missing from the model output are filled from the default
// tables in defaults.go; required identity fields (team names) are never
// guessed and their absence is reported as [parse.ErrShapeMismatch].
package match
