package ai

import (
	"context"
	"net/http"
)

// Provider is implemented by every LLM backend.
type Provider interface {
	// SendMessage performs one generation call. It returns an error when the
	// transport fails, the context ends or the answer cannot be decoded; a
	// refused prompt is a successful call with FinishReasonContentFilter.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the credential used for requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the API endpoint.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
