package inmemory

import (
	"context"
	"sync"

	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/memory"
	"github.com/leofalp/betsmart/providers/observability"
)

// ArrayMemory is a mutex-guarded, slice-backed memory.Provider.
type ArrayMemory struct {
	mu       sync.RWMutex
	messages []ai.Message
}

var _ memory.Provider = (*ArrayMemory)(nil)

func New() *ArrayMemory {
	return &ArrayMemory{messages: []ai.Message{}}
}

// AppendMessage stores a copy of message. A nil message is ignored. When ctx
// carries a span, the append and the new history size are recorded on it.
func (m *ArrayMemory) AppendMessage(ctx context.Context, message *ai.Message) {
	if message == nil {
		return
	}

	m.mu.Lock()
	m.messages = append(m.messages, *message)
	total := len(m.messages)
	m.mu.Unlock()

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryAppend,
			observability.String(observability.AttrMemoryMessageRole, string(message.Role)),
		)
		span.SetAttributes(observability.Int(observability.AttrMemoryTotalMessages, total))
	}
}

func (m *ArrayMemory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages), nil
}

func (m *ArrayMemory) AllMessages(ctx context.Context) ([]ai.Message, error) {
	m.mu.RLock()
	n := len(m.messages)
	m.mu.RUnlock()
	return m.LastMessages(ctx, n)
}

// LastMessages never returns nil; n <= 0 yields an empty slice.
func (m *ArrayMemory) LastMessages(_ context.Context, n int) ([]ai.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = min(max(n, 0), len(m.messages))
	out := make([]ai.Message, n)
	copy(out, m.messages[len(m.messages)-n:])
	return out, nil
}

// ClearMessages empties the history but keeps the backing array.
func (m *ArrayMemory) ClearMessages(ctx context.Context) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventMemoryClear)
	}

	m.mu.Lock()
	m.messages = m.messages[:0]
	m.mu.Unlock()
}
