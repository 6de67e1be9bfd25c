package transcript

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// NewYTDLP creates an Extractor that downloads automatic captions with
// yt-dlp and converts them to plain text.
func NewYTDLP(command, language string) YTDLP {
	if command == "" {
		command = "yt-dlp"
	}
	if language == "" {
		language = "en"
	}
	return YTDLP{
		Command:   command,
		Language:  language,
		WaitDelay: time.Second,
	}
}

type YTDLP struct {
	Command   string
	Language  string
	WaitDelay time.Duration
}

func (y YTDLP) Extract(ctx context.Context, videoID string) (text string, err error) {
	dir, err := os.MkdirTemp("", "videosummarizer-ytdlp-*")
	if err != nil {
		return "", fmt.Errorf("%w: failed to create temporary directory: %w", ErrExtractionFailed, err)
	}
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, videoID)
	cmd := exec.CommandContext(ctx, y.Command,
		"--skip-download",
		"--write-auto-sub",
		"--sub-lang", y.Language,
		"--sub-format", "vtt",
		"--output", output,
		"--",
		"https://www.youtube.com/watch?v="+videoID,
	)
	cmd.WaitDelay = y.WaitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err = cmd.Run()
	if ctxErr := contextError(ctx); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", &ExtractionError{Command: y.Command, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	f, err := os.Open(fmt.Sprintf("%s.%s.vtt", output, y.Language))
	if err != nil {
		return "", &ExtractionError{Command: y.Command, Stderr: strings.TrimSpace(stderr.String()), Err: fmt.Errorf("subtitle file not generated: %w", err)}
	}
	defer f.Close()
	return parseVTT(f)
}

func (y YTDLP) String() string {
	return fmt.Sprintf("yt-dlp(%s)", y.Language)
}

// timestampTag matches the inline word timings of automatic captions,
// e.g. the <00:00:03.000> in "to<00:00:03.000><c> love</c>".
var timestampTag = regexp.MustCompile(`<\d{2}:\d{2}:\d{2}\.\d{3}>`)

// parseVTT joins the caption lines of a WebVTT document with spaces.
// Automatic captions repeat each line in the following cue as it scrolls,
// so consecutive duplicates are dropped once inline timings are removed.
func parseVTT(r io.Reader) (text string, err error) {
	subs, err := astisub.ReadFromWebVTT(r)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse captions: %w", ErrExtractionFailed, err)
	}
	var lines []string
	for _, item := range subs.Items {
		for _, line := range item.Lines {
			var parts []string
			for _, li := range line.Items {
				if t := strings.TrimSpace(timestampTag.ReplaceAllString(li.Text, "")); t != "" {
					parts = append(parts, t)
				}
			}
			l := strings.Join(parts, " ")
			if l == "" || (len(lines) > 0 && lines[len(lines)-1] == l) {
				continue
			}
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, " "), nil
}
