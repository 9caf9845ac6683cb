// Package llm wraps the language model used by the assistant.
package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by Disabled.
var ErrDisabled = errors.New("llm: no model configured")

// ErrEmptyResponse is returned when the model answered with no text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Completer turns a prompt into a single text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Disabled is wired when no API key is configured. Every call fails.
type Disabled struct{}

func (Disabled) Complete(context.Context, string) (string, error) {
	return "", ErrDisabled
}
