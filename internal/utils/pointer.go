package utils

// Ptr returns a pointer to a copy of v.
//
//	cfg.MaxOutputTokens = utils.Ptr(2048)
func Ptr[T any](v T) *T {
	return &v
}
