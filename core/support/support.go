// Package support runs the BetBot help-desk conversation. Unlike the
// predictor it keeps a history: every turn is stored in memory and sent
// back with the next question.
package support

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/memory"
	"github.com/leofalp/betsmart/providers/memory/inmemory"
	"github.com/leofalp/betsmart/providers/observability"
)

// SystemPrompt is the fixed instruction every support conversation starts
// from.
const SystemPrompt = "You are 'BetBot', a support agent for 'Bet Smart With AI'. " +
	"Help users with VIP plans and explaining betting terms. " +
	"If asked for predictions, guide them to the home page search bar."

// Greeting is shown before the first user message. It is not sent to the
// model.
const Greeting = "Hi! I'm BetBot. Ask me about VIP plans or betting terms."

var (
	// ErrMissingCredential is returned by NewSession when no API key is set.
	ErrMissingCredential = errors.New("support: API key is missing")
	// ErrEmptyMessage is returned by Send for a blank message.
	ErrEmptyMessage = errors.New("support: message is empty")
)

// Session is one support conversation. It is safe for concurrent use, but
// interleaved Send calls produce an interleaved history.
type Session struct {
	id       string
	client   *client.Client
	memory   memory.Provider
	observer observability.Provider
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	model       string
	observer    observability.Provider
	memory      memory.Provider
	middlewares []client.Middleware
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(o *sessionOptions) {
		o.model = model
	}
}

// WithObserver enables spans, metrics and logs for the session.
func WithObserver(observer observability.Provider) Option {
	return func(o *sessionOptions) {
		o.observer = observer
	}
}

// WithMemory replaces the default in-process history.
func WithMemory(m memory.Provider) Option {
	return func(o *sessionOptions) {
		o.memory = m
	}
}

// WithMiddleware adds client middlewares, such as a timeout, to every call.
func WithMiddleware(middlewares ...client.Middleware) Option {
	return func(o *sessionOptions) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// NewSession starts a conversation. It refuses to run without a credential.
func NewSession(provider ai.Provider, apiKey string, opts ...Option) (*Session, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if provider == nil {
		return nil, errors.New("support: provider is nil")
	}

	cfg := &sessionOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.memory == nil {
		cfg.memory = inmemory.New()
	}

	clientOpts := []client.Option{
		client.WithDefaultModel(cfg.model),
		client.WithSystemPrompt(SystemPrompt),
		client.WithMemory(cfg.memory),
		client.WithMiddleware(cfg.middlewares...),
	}
	if cfg.observer != nil {
		clientOpts = append(clientOpts, client.WithObserver(cfg.observer))
	}

	c, err := client.New(provider.WithAPIKey(apiKey), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("support: %w", err)
	}

	return &Session{
		id:       uuid.NewString(),
		client:   c,
		memory:   cfg.memory,
		observer: cfg.observer,
	}, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Send adds message to the conversation and returns BetBot's reply.
func (s *Session) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	if s.observer != nil {
		var span observability.Span
		ctx, span = s.observer.StartSpan(ctx, observability.SpanSupportReply,
			observability.String(observability.AttrRequestID, s.id),
		)
		defer span.End()
	}

	response, err := s.client.SendMessage(ctx, message)
	if err != nil {
		if span := observability.SpanFromContext(ctx); span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "support reply failed")
		}
		return "", fmt.Errorf("support: %w", err)
	}
	if response.Refusal != "" && response.Content == "" {
		return response.Refusal, nil
	}

	if s.observer != nil {
		total, _ := s.memory.Count(ctx)
		s.observer.Debug(ctx, "support reply",
			observability.Int(observability.AttrMemoryTotalMessages, total),
			observability.Int(observability.AttrResponseLength, len(response.Content)),
		)
	}
	return response.Content, nil
}

// History returns every stored turn, oldest first.
func (s *Session) History(ctx context.Context) ([]ai.Message, error) {
	return s.memory.AllMessages(ctx)
}

// Reset clears the conversation.
func (s *Session) Reset(ctx context.Context) {
	s.memory.ClearMessages(ctx)
}
