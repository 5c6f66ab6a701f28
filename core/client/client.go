package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/memory"
	"github.com/leofalp/betsmart/providers/observability"
)

// ErrEmptyPrompt is returned by SendMessage for a blank prompt.
var ErrEmptyPrompt = errors.New("client: prompt is empty")

// Client sends prompts through a provider and an optional middleware chain.
// Without a memory every call is independent; with one, the history is sent
// along and each successful exchange is appended to it.
//
// A Client is immutable after New and safe for concurrent use when its
// memory is.
type Client struct {
	provider     ai.Provider
	defaultModel string
	systemPrompt string
	memory       memory.Provider
	observer     observability.Provider
	generation   *ai.GenerationConfig
	send         SendFunc
}

// Option configures a Client.
type Option func(*options)

type options struct {
	defaultModel string
	systemPrompt string
	memory       memory.Provider
	observer     observability.Provider
	generation   *ai.GenerationConfig
	middlewares  []Middleware
}

// WithDefaultModel sets the model used when a call does not pick one.
func WithDefaultModel(model string) Option {
	return func(o *options) {
		o.defaultModel = model
	}
}

// WithSystemPrompt sets the instruction sent with every request.
func WithSystemPrompt(prompt string) Option {
	return func(o *options) {
		o.systemPrompt = prompt
	}
}

// WithMemory keeps a conversation history across SendMessage calls.
func WithMemory(m memory.Provider) Option {
	return func(o *options) {
		o.memory = m
	}
}

// WithObserver enables spans, metrics and logs for every call. The
// observability middleware is installed outermost so it measures the final
// outcome after timeouts.
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithGenerationConfig sets sampling parameters for every request.
func WithGenerationConfig(cfg *ai.GenerationConfig) Option {
	return func(o *options) {
		o.generation = cfg
	}
}

// WithMiddleware appends middlewares to the chain. It may be given more than
// once; order is preserved.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// New builds a Client around provider.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, errors.New("client: provider is nil")
	}

	cfg := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	middlewares := cfg.middlewares
	if cfg.observer != nil {
		middlewares = append([]Middleware{newObservabilityMiddleware(cfg.observer, cfg.defaultModel)}, middlewares...)
	}

	return &Client{
		provider:     provider,
		defaultModel: cfg.defaultModel,
		systemPrompt: cfg.systemPrompt,
		memory:       cfg.memory,
		observer:     cfg.observer,
		generation:   cfg.generation,
		send:         buildSendChain(provider, middlewares),
	}, nil
}

// Memory returns the configured history store, or nil.
func (c *Client) Memory() memory.Provider {
	return c.memory
}

// SendMessageOption adjusts a single call.
type SendMessageOption func(*ai.ChatRequest)

// WithTools enables provider built-in tools, such as Google Search, for
// this call.
func WithTools(tools ...ai.ToolDescription) SendMessageOption {
	return func(r *ai.ChatRequest) {
		r.Tools = append(r.Tools, tools...)
	}
}

// WithResponseFormat hints the output format for this call.
func WithResponseFormat(format *ai.ResponseFormat) SendMessageOption {
	return func(r *ai.ChatRequest) {
		r.ResponseFormat = format
	}
}

// WithModel overrides the default model for this call.
func WithModel(model string) SendMessageOption {
	return func(r *ai.ChatRequest) {
		r.Model = model
	}
}

// SendMessage sends prompt and returns the provider's answer. With a memory
// configured, the stored history is sent ahead of prompt, and the user and
// assistant turns are recorded together once the call returns content. A
// failed call leaves the memory untouched.
func (c *Client) SendMessage(ctx context.Context, prompt string, opts ...SendMessageOption) (*ai.ChatResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	user := ai.Message{Role: ai.RoleUser, Content: prompt}
	messages := []ai.Message{user}
	if c.memory != nil {
		history, err := c.memory.AllMessages(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading conversation history: %w", err)
		}
		messages = append(history, user)
	}

	request := ai.ChatRequest{
		Model:            c.defaultModel,
		Messages:         messages,
		SystemPrompt:     c.systemPrompt,
		GenerationConfig: c.generation,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&request)
		}
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return nil, err
	}

	if c.memory != nil && response.Content != "" {
		c.memory.AppendMessage(ctx, &user)
		c.memory.AppendMessage(ctx, &ai.Message{Role: ai.RoleAssistant, Content: response.Content})
	}
	return response, nil
}
