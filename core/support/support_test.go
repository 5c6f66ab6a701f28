package support

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/leofalp/betsmart/providers/ai"
	"github.com/leofalp/betsmart/providers/observability/slogobs"
)

// echoProvider answers with a fixed reply and records every request.
type echoProvider struct {
	apiKey   string
	reply    string
	err      error
	requests []ai.ChatRequest
}

func (p *echoProvider) SendMessage(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	p.requests = append(p.requests, request)
	if p.err != nil {
		return nil, p.err
	}
	return &ai.ChatResponse{Content: p.reply, FinishReason: ai.FinishReasonStop}, nil
}

func (p *echoProvider) WithAPIKey(key string) ai.Provider {
	p.apiKey = key
	return p
}

func (p *echoProvider) WithBaseURL(string) ai.Provider          { return p }
func (p *echoProvider) WithHttpClient(*http.Client) ai.Provider { return p }

func TestNewSession_MissingCredential(t *testing.T) {
	provider := &echoProvider{}
	if _, err := NewSession(provider, "  "); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
	if len(provider.requests) != 0 {
		t.Error("provider should not be called")
	}
}

func TestSession_Conversation(t *testing.T) {
	ctx := context.Background()
	provider := &echoProvider{reply: "BTTS means both teams to score."}
	session, err := NewSession(provider, "key", WithObserver(slogobs.New()))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if provider.apiKey != "key" {
		t.Errorf("apiKey = %q", provider.apiKey)
	}
	if session.ID() == "" {
		t.Error("session id is empty")
	}

	for _, msg := range []string{"what is btts?", "and VIP plans?"} {
		reply, err := session.Send(ctx, msg)
		if err != nil {
			t.Fatalf("Send(%q) error = %v", msg, err)
		}
		if reply != provider.reply {
			t.Errorf("reply = %q", reply)
		}
	}

	last := provider.requests[len(provider.requests)-1]
	if last.SystemPrompt != SystemPrompt {
		t.Errorf("SystemPrompt = %q", last.SystemPrompt)
	}
	if len(last.Messages) != 3 {
		t.Errorf("second request carries %d messages, want 3", len(last.Messages))
	}

	history, err := session.History(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 4 {
		t.Errorf("history = %d turns, want 4", len(history))
	}

	session.Reset(ctx)
	if history, _ := session.History(ctx); len(history) != 0 {
		t.Errorf("history after Reset = %d turns", len(history))
	}
}

func TestSession_SendErrors(t *testing.T) {
	boom := errors.New("status 500")
	session, err := NewSession(&echoProvider{err: boom}, "key")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := session.Send(context.Background(), ""); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("blank message error = %v", err)
	}
	if _, err := session.Send(context.Background(), "hello"); !errors.Is(err, boom) {
		t.Errorf("provider error = %v, want %v", err, boom)
	}
	if history, _ := session.History(context.Background()); len(history) != 0 {
		t.Errorf("history after failure = %+v, want empty", history)
	}
}
