// Package provider is the single integration point with the external
// text-generation service. Every prompt in the system funnels through
// Client.Generate; no other package talks to the provider directly, so
// timeout policy stays in one place and tests can substitute a fake.
package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/postforge/postforge/internal/config"
	"github.com/postforge/postforge/internal/metrics"
)

// ErrEmptyCompletion is returned when the provider answers with no usable
// text. Model output shape is not guaranteed, but blank output is always a
// provider failure rather than a parseable degenerate case.
var ErrEmptyCompletion = errors.New("provider returned empty completion")

// Error wraps any transport, auth, quota or timeout failure from the
// generation provider.
type Error struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *Error) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: provider call timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: provider call failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a provider timeout.
func IsTimeout(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Timeout
}

// Client calls the provider's OpenAI-compatible chat-completions surface.
type Client struct {
	oc      openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Client from provider configuration.
func NewClient(cfg config.ProviderConfig) *Client {
	// Retry policy belongs to callers, so the SDK's built-in retries are
	// disabled.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		oc:      openai.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Generate sends one prompt and returns the completion text. The call is
// bounded by the configured timeout; a deadline expiry surfaces as an
// *Error with Timeout set. No retries happen here; retry policy, if any,
// belongs to the caller.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.oc.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	metrics.ObserveProviderDuration(time.Since(start))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.IncProviderCall("timeout")
			slog.Warn("provider call timed out", "model", c.model, "timeout", c.timeout)
			return "", &Error{Op: "generate", Timeout: true, Err: err}
		}
		metrics.IncProviderCall("error")
		slog.Error("provider call failed", "model", c.model, "error", err)
		return "", &Error{Op: "generate", Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.IncProviderCall("error")
		return "", &Error{Op: "generate", Err: ErrEmptyCompletion}
	}

	metrics.IncProviderCall("success")
	return resp.Choices[0].Message.Content, nil
}
