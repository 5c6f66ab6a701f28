package client

import (
	"context"
	"sync"

	"github.com/leofalp/betsmart/providers/observability"
)

// recordingObserver is a minimal observability.Provider that remembers span
// names and counter totals.
type recordingObserver struct {
	mu       sync.Mutex
	spans    []string
	counters map[string]int64
}

func (o *recordingObserver) StartSpan(ctx context.Context, name string, _ ...observability.Attribute) (context.Context, observability.Span) {
	o.mu.Lock()
	o.spans = append(o.spans, name)
	o.mu.Unlock()
	span := noopSpan{}
	return observability.ContextWithSpan(ctx, span), span
}

func (o *recordingObserver) Counter(name string) observability.Counter {
	return counterFunc(func(v int64) {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.counters == nil {
			o.counters = map[string]int64{}
		}
		o.counters[name] += v
	})
}

func (o *recordingObserver) Histogram(string) observability.Histogram { return noopHistogram{} }

func (o *recordingObserver) Trace(context.Context, string, ...observability.Attribute) {}
func (o *recordingObserver) Debug(context.Context, string, ...observability.Attribute) {}
func (o *recordingObserver) Info(context.Context, string, ...observability.Attribute)  {}
func (o *recordingObserver) Warn(context.Context, string, ...observability.Attribute)  {}
func (o *recordingObserver) Error(context.Context, string, ...observability.Attribute) {}

type counterFunc func(int64)

func (f counterFunc) Add(_ context.Context, v int64, _ ...observability.Attribute) { f(v) }

type noopHistogram struct{}

func (noopHistogram) Record(context.Context, float64, ...observability.Attribute) {}

type noopSpan struct{}

func (noopSpan) End()                                        {}
func (noopSpan) SetAttributes(...observability.Attribute)    {}
func (noopSpan) SetStatus(observability.StatusCode, string)  {}
func (noopSpan) RecordError(error)                           {}
func (noopSpan) AddEvent(string, ...observability.Attribute) {}
