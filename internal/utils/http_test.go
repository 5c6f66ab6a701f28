package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type valueResponse struct {
	Value int `json:"value"`
}

func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		fmt.Fprint(w, `{"value":42}`)
	}))
	defer server.Close()

	res, out, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", map[string]string{"q": "x"})
	if err != nil {
		t.Fatalf("DoPostSync() error = %v", err)
	}
	if res.StatusCode != http.StatusOK || out == nil || out.Value != 42 {
		t.Errorf("DoPostSync() = %v, %+v", res.StatusCode, out)
	}
}

func TestDoPostSync_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"quota"}`)
	}))
	defer server.Close()

	_, out, err := DoPostSync[valueResponse](context.Background(), nil, server.URL, "", nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests || statusErr.Body != `{"error":"quota"}` {
		t.Errorf("StatusError = %+v", statusErr)
	}
	if out != nil {
		t.Errorf("out = %+v, want nil", out)
	}
}

func TestDoPostSync_UnmarshalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), nil, server.URL, "", nil)
	if err == nil {
		t.Fatal("expected an unmarshal error")
	}
}

func TestDoPostSync_Headers(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		headers    []HeaderOption
		wantAuth   string
		wantGoogle string
	}{
		{name: "bearer", apiKey: "secret", wantAuth: "Bearer secret"},
		{name: "custom header only", headers: []HeaderOption{{Key: "x-goog-api-key", Value: "g"}}, wantGoogle: "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != tt.wantAuth {
					t.Errorf("Authorization = %q, want %q", got, tt.wantAuth)
				}
				if got := r.Header.Get("x-goog-api-key"); got != tt.wantGoogle {
					t.Errorf("x-goog-api-key = %q, want %q", got, tt.wantGoogle)
				}
				fmt.Fprint(w, `{}`)
			}))
			defer server.Close()

			if _, _, err := DoPostSync[valueResponse](context.Background(), nil, server.URL, tt.apiKey, nil, tt.headers...); err != nil {
				t.Fatalf("DoPostSync() error = %v", err)
			}
		})
	}
}

func TestDoPostSync_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := DoPostSync[valueResponse](ctx, nil, server.URL, "", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestCloseWithLog_DoesNotPanic(t *testing.T) {
	CloseWithLog(failingCloser{})
}
