// Package transcript fetches the text of a video's captions using external tools.
package transcript

import (
	"context"
	"errors"
	"fmt"
)

// Extractor turns a video identifier into plain transcript text.
type Extractor interface {
	Extract(ctx context.Context, videoID string) (text string, err error)
}

var (
	ErrExtractionFailed = errors.New("transcript: extraction failed")
	ErrTimeout          = errors.New("transcript: extraction timed out")
)

// ExtractionError is returned when the extractor ran but did not succeed.
// Stderr holds the diagnostic output, which is for logs only.
type ExtractionError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("transcript: %s failed: %v", e.Command, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

// contextError maps a finished context to the package's errors. It returns
// nil if the context is still live.
func contextError(ctx context.Context) error {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return ErrTimeout
	default:
		return fmt.Errorf("%w: %w", ErrExtractionFailed, ctx.Err())
	}
}
