package post

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/respond"
	"github.com/videosummarizer/videosummarizer/models"
	"github.com/videosummarizer/videosummarizer/requestid"
	"github.com/videosummarizer/videosummarizer/summary"
)

// Placeholder is returned as the summary when the provider answers without any text.
const Placeholder = "Failed to generate summary."

const maxBodyBytes = 10 << 20

type Options struct {
	Prompt  summary.Prompt
	Timeout time.Duration
	// Strict makes a malformed provider response an error instead of
	// returning the placeholder summary.
	Strict bool
}

func New(log *slog.Logger, generator summary.Generator, opts Options) Handler {
	return Handler{
		log:       log,
		generator: generator,
		prompt:    opts.Prompt,
		timeout:   opts.Timeout,
		strict:    opts.Strict,
	}
}

type Handler struct {
	log       *slog.Logger
	generator summary.Generator
	prompt    summary.Prompt
	timeout   time.Duration
	strict    bool
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := requestid.Logger(h.log, r)

	var req models.SummarizePostRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil {
		log.Error("failed to decode body", slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{Error: "Invalid request body"}, http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respond.WithJSON(w, models.ErrorResponse{Error: `Missing or empty "text" in request body`}, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	log.Info("generating summary", slog.Int("length", len(text)))
	start := time.Now()
	result, err := h.generator.Generate(ctx, h.prompt.Format(text))
	if err != nil {
		log.Error("failed to generate summary", slog.Duration("elapsed", time.Since(start)), slog.Any("error", err))
		if errors.Is(err, summary.ErrTimeout) {
			respond.WithJSON(w, models.ErrorResponse{Error: "Timed out generating summary", Details: err.Error()}, http.StatusGatewayTimeout)
			return
		}
		respond.WithJSON(w, models.ErrorResponse{Error: "Failed to generate summary", Details: err.Error()}, http.StatusInternalServerError)
		return
	}
	if result.Malformed {
		log.Warn("provider response did not contain summary text", slog.Bool("strict", h.strict))
		if h.strict {
			respond.WithJSON(w, models.ErrorResponse{Error: "Failed to generate summary", Details: "malformed provider response"}, http.StatusBadGateway)
			return
		}
		result.Text = Placeholder
	}
	log.Info("generated summary", slog.Int("length", len(result.Text)), slog.Duration("elapsed", time.Since(start)))

	respond.WithJSON(w, models.SummarizePostResponse{Summary: result.Text}, http.StatusOK)
}
