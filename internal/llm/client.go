// Package llm wraps the hosted completion API behind a small client.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const requestTimeout = 60 * time.Second

// Turn is one entry of the conversation context sent to the model.
type Turn struct {
	Role    string
	Content string
}

// Completer produces an assistant reply for an ordered conversation history.
type Completer interface {
	Complete(ctx context.Context, history []Turn) (string, error)
}

type Client struct {
	model llms.Model
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm api key is required")
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Client{model: m}, nil
}

// Complete renders the history as role-prefixed lines and asks the model for
// the next turn. No retry or backoff; provider failures surface to the caller.
func (c *Client) Complete(ctx context.Context, history []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, RenderPrompt(history))
	if err != nil {
		return "", fmt.Errorf("%w: %v", thinklie_errors.ErrUpstream, err)
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		return "", fmt.Errorf("%w: empty completion", thinklie_errors.ErrUpstream)
	}
	return completion, nil
}

// RenderPrompt flattens the ordered history into "role: content" lines.
func RenderPrompt(history []Turn) string {
	var b strings.Builder
	for i, t := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Role)
		b.WriteString(": ")
		b.WriteString(t.Content)
	}
	return b.String()
}
