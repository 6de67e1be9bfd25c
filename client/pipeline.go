package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/videosummarizer/videosummarizer/models"
	"github.com/videosummarizer/videosummarizer/videoid"
)

// Stage of the transcribe and summarize pipeline.
type Stage string

const (
	StageVideoID    Stage = "video-id"
	StageTranscript Stage = "transcript"
	StageSummary    Stage = "summary"
)

var (
	ErrInvalidURL      = errors.New("invalid YouTube URL")
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// StageError records which stage of the pipeline failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Message())
}

// Message describes the failure, preferring the server's error message to
// the raw HTTP error.
func (e *StageError) Message() string {
	if er, ok := ErrorResponse(e.Err); ok {
		if er.Details != "" {
			return er.Error + ": " + er.Details
		}
		return er.Error
	}
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Result struct {
	VideoID    string `json:"videoId" yaml:"videoId"`
	Transcript string `json:"transcript" yaml:"transcript"`
	Summary    string `json:"summary" yaml:"summary"`
}

// Process extracts the video ID from url, fetches its transcript, then
// summarizes it. progress, if not nil, is called as each stage starts.
// The summary is not requested if fetching the transcript failed.
func (c Client) Process(ctx context.Context, url string, progress func(Stage)) (r Result, err error) {
	if progress == nil {
		progress = func(Stage) {}
	}

	progress(StageVideoID)
	var ok bool
	if r.VideoID, ok = videoid.Extract(url); !ok {
		return r, &StageError{Stage: StageVideoID, Err: ErrInvalidURL}
	}

	progress(StageTranscript)
	tr, err := c.TranscriptPost(ctx, models.TranscriptPostRequest{VideoID: r.VideoID})
	if err != nil {
		return r, &StageError{Stage: StageTranscript, Err: err}
	}
	if strings.TrimSpace(tr.Text) == "" {
		return r, &StageError{Stage: StageTranscript, Err: ErrEmptyTranscript}
	}
	r.Transcript = tr.Text

	progress(StageSummary)
	sr, err := c.SummarizePost(ctx, models.SummarizePostRequest{Text: r.Transcript})
	if err != nil {
		return r, &StageError{Stage: StageSummary, Err: err}
	}
	r.Summary = sr.Summary

	return r, nil
}
