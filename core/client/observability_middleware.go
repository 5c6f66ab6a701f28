package client

import (
	"context"
	"time"

	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/observability"
)

// newObservabilityMiddleware opens a client.send_message span per call and
// records request count, duration and token metrics. The span and observer
// are placed in the context so providers can enrich them.
func newObservabilityMiddleware(observer observability.Provider, defaultModel string) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			model := request.Model
			if model == "" {
				model = defaultModel
			}

			ctx, span := observer.StartSpan(ctx, observability.SpanClientSendMessage,
				observability.String(observability.AttrLLMModel, model),
			)
			defer span.End()
			ctx = observability.ContextWithSpan(ctx, span)
			ctx = observability.ContextWithObserver(ctx, observer)

			toolNames := make([]string, 0, len(request.Tools))
			for _, t := range request.Tools {
				toolNames = append(toolNames, t.Name)
			}
			observer.Debug(ctx, "llm send",
				observability.String(observability.AttrLLMModel, model),
				observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
				observability.StringSlice(observability.AttrLLMBuiltinTools, toolNames),
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			observer.Histogram(observability.MetricClientRequestDuration).Record(ctx, elapsed.Seconds(),
				observability.String(observability.AttrLLMModel, model),
			)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "llm send failed")
				observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
					observability.String(observability.AttrOutcome, "error"),
				)
				observer.Warn(ctx, "llm send failed",
					observability.Error(err),
					observability.Duration(observability.AttrDuration, elapsed),
				)
				return nil, err
			}

			span.SetStatus(observability.StatusOK, "")
			span.SetAttributes(
				observability.String(observability.AttrLLMFinishReason, response.FinishReason),
				observability.Int(observability.AttrResponseLength, len(response.Content)),
			)
			observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
				observability.String(observability.AttrOutcome, "ok"),
			)
			if response.Usage != nil {
				observer.Counter(observability.MetricClientTokensTotal).Add(ctx, int64(response.Usage.TotalTokens))
			}
			observer.Debug(ctx, "llm send completed",
				observability.Duration(observability.AttrDuration, elapsed),
				observability.String(observability.AttrLLMFinishReason, response.FinishReason),
			)
			observer.Trace(ctx, "llm raw response",
				observability.String(observability.AttrResponseContent, observability.TruncateString(response.Content, 0)),
			)
			return response, nil
		}
	}
}
