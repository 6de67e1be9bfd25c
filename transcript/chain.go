package transcript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// NewChain creates an Extractor that tries each extractor in turn and
// returns the first transcript produced.
func NewChain(log *slog.Logger, extractors ...Extractor) Chain {
	return Chain{
		log:        log,
		extractors: extractors,
	}
}

type Chain struct {
	log        *slog.Logger
	extractors []Extractor
}

func (c Chain) Extract(ctx context.Context, videoID string) (text string, err error) {
	if len(c.extractors) == 0 {
		return "", fmt.Errorf("%w: no extractors configured", ErrExtractionFailed)
	}
	for i, e := range c.extractors {
		text, err = e.Extract(ctx, videoID)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrTimeout) || ctx.Err() != nil {
			return "", err
		}
		if i < len(c.extractors)-1 {
			c.log.Warn("transcript extractor failed, trying next", slog.String("extractor", fmt.Sprint(e)), slog.String("videoID", videoID), slog.Any("error", err))
		}
	}
	return "", err
}
