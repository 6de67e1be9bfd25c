package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// NewLLM adapts a langchaingo model, such as Ollama or an OpenAI compatible
// server, to the Generator interface.
func NewLLM(model llms.Model, name string) LLM {
	return LLM{
		model: model,
		name:  name,
	}
}

type LLM struct {
	model llms.Model
	name  string
}

func (l LLM) Generate(ctx context.Context, prompt string) (r Result, err error) {
	resp, err := l.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		if ctxErr := contextError(ctx, err); ctxErr != nil {
			return r, ctxErr
		}
		return r, fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return r, ErrNoCandidates
	}
	if resp.Choices[0] == nil || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return Malformed, nil
	}
	return Parsed(resp.Choices[0].Content), nil
}

func (l LLM) String() string {
	return fmt.Sprintf("llm(%s)", l.name)
}
