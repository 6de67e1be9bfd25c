// Package summary asks a generative language model to summarize transcripts.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProviderFailed = errors.New("summary: provider call failed")
	ErrNoCandidates   = errors.New("summary: provider returned no candidates")
	ErrTimeout        = errors.New("summary: provider call timed out")
)

// Generator sends a prompt to a model and returns the generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Result, error)
}

// Result of a successful call to a provider. A Malformed result means the
// provider answered, but the answer didn't contain any text.
type Result struct {
	Text      string
	Malformed bool
}

func Parsed(text string) Result {
	return Result{Text: text}
}

var Malformed = Result{Malformed: true}

// DefaultPrompt is the instruction placed in front of every transcript.
const DefaultPrompt = "Summarize this transcript into a **concise summary** with key points:\n\n%s"

// Prompt is a template with a single %s verb, replaced by the transcript.
type Prompt struct {
	template string
}

func NewPrompt(template string) (p Prompt, err error) {
	if n := strings.Count(template, "%s"); n != 1 {
		return p, fmt.Errorf("summary: prompt template must contain exactly one %%s, found %d", n)
	}
	if strings.Count(template, "%") != strings.Count(template, "%%")*2+1 {
		return p, fmt.Errorf("summary: prompt template must not contain formatting verbs other than %%s")
	}
	return Prompt{template: template}, nil
}

func (p Prompt) Format(transcript string) string {
	if p.template == "" {
		return fmt.Sprintf(DefaultPrompt, transcript)
	}
	return fmt.Sprintf(p.template, transcript)
}

// contextError maps a finished context to the package's errors. It returns
// nil if the context is still live.
func contextError(ctx context.Context, err error) error {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrProviderFailed, ctx.Err())
	}
}
