// Package server assembles the HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
	summarizepost "github.com/videosummarizer/videosummarizer/handlers/summarize/post"
	transcriptpost "github.com/videosummarizer/videosummarizer/handlers/transcript/post"
	"github.com/videosummarizer/videosummarizer/requestid"
	"github.com/videosummarizer/videosummarizer/summary"
	"github.com/videosummarizer/videosummarizer/transcript"
)

// Config is built once at start-up and not modified afterwards.
type Config struct {
	TranscriptTimeout time.Duration
	SummaryTimeout    time.Duration
	Prompt            summary.Prompt
	StrictSummaries   bool
}

func New(log *slog.Logger, extractor transcript.Extractor, generator summary.Generator, config Config) http.Handler {
	mux := http.NewServeMux()

	tph := transcriptpost.New(log, extractor, config.TranscriptTimeout)
	mux.Handle("POST /transcript", tph)

	sph := summarizepost.New(log, generator, summarizepost.Options{
		Prompt:  config.Prompt,
		Timeout: config.SummaryTimeout,
		Strict:  config.StrictSummaries,
	})
	mux.Handle("POST /summarize", sph)

	return cors.AllowAll().Handler(requestid.New(mux))
}
