package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/postforge/postforge/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.0-flash",
		Timeout: timeout,
	})
}

func completionJSON(content string) string {
	return `{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":` + jsonString(content) + `},"finish_reason":"stop"}]}`
}

func jsonString(s string) string {
	out := `"`
	for _, r := range s {
		switch r {
		case '"':
			out += `\"`
		case '\n':
			out += `\n`
		default:
			out += string(r)
		}
	}
	return out + `"`
}

func TestGenerate_Success(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("generated text")))
	}, 5*time.Second)

	got, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "generated text" {
		t.Errorf("Generate() = %q, want %q", got, "generated text")
	}
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("   \n")))
	}, 5*time.Second)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Generate() expected error for blank completion")
	}
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}, 5*time.Second)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Generate() expected error for upstream 429")
	}
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("error = %T, want *provider.Error", err)
	}
	if pe.Timeout {
		t.Error("Timeout = true for non-timeout failure")
	}
}

func TestGenerate_Timeout(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(completionJSON("late")))
	}, 20*time.Millisecond)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Generate() expected timeout error")
	}
	if !IsTimeout(err) {
		t.Errorf("IsTimeout(%v) = false, want true", err)
	}
}
