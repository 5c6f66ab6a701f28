package predictor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/betsmart/core/client"
	"github.com/leofalp/betsmart/core/client/middleware"
	"github.com/leofalp/betsmart/core/match"
	"github.com/leofalp/betsmart/core/parse"
	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/observability"
	"github.com/leofalp/betsmart/providers/observability/slogobs"
)

// Service answers prediction and trending requests against one provider.
type Service struct {
	client        *client.Client
	hasCredential bool
	observer      observability.Provider
	now           func() time.Time
	lenientRepair bool
}

// New builds a Service. apiKey is installed on provider when non-empty; an
// empty key is not an error here, each request reports ErrMissingCredential
// instead.
func New(provider ai.Provider, apiKey string, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, errors.New("predictor: provider is nil")
	}

	cfg := &options{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.observer == nil {
		cfg.observer = slogobs.New()
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		provider = provider.WithAPIKey(apiKey)
	}

	middlewares := append([]client.Middleware{middleware.NewTimeoutMiddleware(cfg.timeout)}, cfg.middlewares...)
	c, err := client.New(provider,
		client.WithDefaultModel(cfg.model),
		client.WithObserver(cfg.observer),
		client.WithMiddleware(middlewares...),
	)
	if err != nil {
		return nil, fmt.Errorf("predictor: %w", err)
	}

	return &Service{
		client:        c,
		hasCredential: apiKey != "",
		observer:      cfg.observer,
		now:           cfg.now,
		lenientRepair: cfg.lenientRepair,
	}, nil
}

// RequestPrediction asks the model to analyse description and returns the
// normalized record with its grounding sources attached. Errors are
// classified by the sentinels of this package and of core/parse.
func (s *Service) RequestPrediction(ctx context.Context, description string) (*match.Prediction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidRequest
	}

	ctx, span := s.startSpan(ctx, observability.SpanRequestPrediction,
		observability.String(observability.AttrMatchDescription, observability.TruncateString(description, 0)),
	)
	defer span.End()

	response, err := s.call(ctx, predictionPrompt(description))
	if err != nil {
		s.fail(ctx, span, "prediction request failed", err)
		return nil, err
	}

	var step string
	prediction, err := match.ExtractPrediction(response.Content, s.parseOptions(&step)...)
	s.recordExtraction(ctx, parse.ShapeObject, step, err)
	if err != nil {
		s.fail(ctx, span, "prediction extraction failed", err)
		return nil, err
	}

	attachGrounding(&prediction, response.Grounding)

	span.SetAttributes(
		observability.String(observability.AttrMatchHome, prediction.HomeTeam),
		observability.String(observability.AttrMatchAway, prediction.AwayTeam),
		observability.Int(observability.AttrGroundingSources, len(prediction.Sources)),
	)
	span.SetStatus(observability.StatusOK, "")
	return &prediction, nil
}

// RequestTrendingMatches returns up to four upcoming fixtures. It never
// fails: every problem is logged as a warning and yields an empty list.
func (s *Service) RequestTrendingMatches(ctx context.Context) []match.TrendingMatch {
	ctx, span := s.startSpan(ctx, observability.SpanRequestTrending)
	defer span.End()

	response, err := s.call(ctx, trendingPrompt(s.now()))
	if err != nil {
		s.fail(ctx, span, "trending request failed", err)
		return []match.TrendingMatch{}
	}

	var step string
	matches, err := match.ExtractTrending(response.Content, s.parseOptions(&step)...)
	s.recordExtraction(ctx, parse.ShapeArrayOfObjects, step, err)
	if err != nil {
		s.fail(ctx, span, "trending extraction failed", err)
		return []match.TrendingMatch{}
	}
	if matches == nil {
		matches = []match.TrendingMatch{}
	}

	span.SetAttributes(observability.Int(observability.AttrTrendingCount, len(matches)))
	span.SetStatus(observability.StatusOK, "")
	return matches
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	attrs = append([]observability.Attribute{
		observability.String(observability.AttrRequestID, uuid.NewString()),
	}, attrs...)
	ctx, span := s.observer.StartSpan(ctx, name, attrs...)
	ctx = observability.ContextWithSpan(ctx, span)
	return observability.ContextWithObserver(ctx, s.observer), span
}

// call performs the single provider round trip shared by both operations.
// A context that ended during the call wins over whatever came back.
func (s *Service) call(ctx context.Context, prompt string) (*ai.ChatResponse, error) {
	if !s.hasCredential {
		return nil, ErrMissingCredential
	}

	start := time.Now()
	response, err := s.client.SendMessage(ctx, prompt,
		client.WithTools(ai.ToolDescription{Name: ai.ToolGoogleSearch}),
		client.WithResponseFormat(&ai.ResponseFormat{Type: ai.ResponseFormatText}),
	)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.observer.Histogram(observability.MetricProviderDuration).Record(ctx, time.Since(start).Seconds(),
		observability.String(observability.AttrOutcome, outcome),
	)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		if isSafetyError(err) {
			return nil, fmt.Errorf("%w: %w", ErrSafetyBlocked, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}
	if blocked(response) {
		reason := response.Refusal
		if reason == "" {
			reason = "finish reason " + response.FinishReason
		}
		return nil, fmt.Errorf("%w: %s", ErrSafetyBlocked, reason)
	}
	return response, nil
}

func (s *Service) parseOptions(step *string) []parse.Option {
	opts := []parse.Option{
		parse.WithAttemptObserver(func(name string) { *step = name }),
	}
	if s.lenientRepair {
		opts = append(opts, parse.WithLenientRepair())
	}
	return opts
}

func (s *Service) recordExtraction(ctx context.Context, shape parse.Shape, step string, err error) {
	outcome := "ok"
	var extractionErr *parse.ExtractionError
	if errors.As(err, &extractionErr) {
		outcome = extractionErr.Kind.String()
	} else if err != nil {
		outcome = "error"
	}

	s.observer.Counter(observability.MetricExtractionOutcome).Add(ctx, 1,
		observability.String(observability.AttrExtractionShape, shape.String()),
		observability.String(observability.AttrOutcome, outcome),
	)
	if err == nil {
		if span := observability.SpanFromContext(ctx); span != nil {
			span.AddEvent(observability.EventExtractionDecoded,
				observability.String(observability.AttrExtractionStep, step),
			)
		}
	}
}

func (s *Service) fail(ctx context.Context, span observability.Span, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(observability.StatusError, msg)

	attrs := []observability.Attribute{observability.Error(err)}
	var extractionErr *parse.ExtractionError
	if errors.As(err, &extractionErr) {
		attrs = append(attrs,
			observability.String(observability.AttrExtractionKind, extractionErr.Kind.String()),
			observability.String(observability.AttrResponseContent, observability.TruncateString(extractionErr.Raw, 0)),
		)
	}
	s.observer.Warn(ctx, msg, attrs...)
}

// attachGrounding merges the provider's grounding sources ahead of the ones
// the model wrote into its JSON.
func attachGrounding(p *match.Prediction, grounding *ai.GroundingMetadata) {
	if grounding == nil {
		return
	}
	sources := make([]match.Source, 0, len(grounding.Sources)+len(p.Sources))
	for _, g := range grounding.Sources {
		if src, ok := match.NewSource(g.Title, g.URI); ok {
			sources = append(sources, src)
		}
	}
	p.Sources = match.DedupeSources(append(sources, p.Sources...))
	p.SearchQueries = grounding.SearchQueries
	p.SearchSuggestions = grounding.SearchSuggestions
}

func blocked(response *ai.ChatResponse) bool {
	return response.FinishReason == ai.FinishReasonContentFilter || response.Refusal != ""
}

func isSafetyError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "safety")
}
