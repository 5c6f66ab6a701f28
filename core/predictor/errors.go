package predictor

import (
	"context"
	"errors"

	"github.com/leofalp/betsmart/core/parse"
)

var (
	// ErrInvalidRequest is returned for a blank match description.
	ErrInvalidRequest = errors.New("predictor: match description is empty")
	// ErrMissingCredential is returned before any provider call when no API
	// key is configured.
	ErrMissingCredential = errors.New("predictor: API key is missing")
	// ErrProviderRequestFailed wraps transport and provider-side failures.
	ErrProviderRequestFailed = errors.New("predictor: provider request failed")
	// ErrSafetyBlocked means the provider refused to answer on safety grounds.
	ErrSafetyBlocked = errors.New("predictor: response blocked by safety filters")
)

// UserMessage maps an error returned by this package to a message fit for
// end users. It returns "" for a nil error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRequest):
		return `Please describe a match, for example "Arsenal vs Chelsea".`
	case errors.Is(err, ErrMissingCredential):
		return "The AI service is not configured. Set GEMINI_API_KEY and try again."
	case errors.Is(err, ErrSafetyBlocked):
		return "The request was blocked by the AI safety filters. Try rephrasing the match description."
	case errors.Is(err, context.DeadlineExceeded):
		return "The AI service took too long to answer. Please try again."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	case errors.Is(err, parse.ErrNoCandidateFound),
		errors.Is(err, parse.ErrAllDecodeAttemptsFailed),
		errors.Is(err, parse.ErrShapeMismatch):
		return "The AI answer could not be read as a prediction. Please try again."
	case errors.Is(err, ErrProviderRequestFailed):
		return "The AI service is unavailable right now. Please try again later."
	default:
		return "Something went wrong while analysing the match. Please try again."
	}
}
