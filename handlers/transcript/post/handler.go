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
	"github.com/videosummarizer/videosummarizer/transcript"
	"github.com/videosummarizer/videosummarizer/videoid"
)

const maxBodyBytes = 1 << 20

func New(log *slog.Logger, extractor transcript.Extractor, timeout time.Duration) Handler {
	return Handler{
		log:       log,
		extractor: extractor,
		timeout:   timeout,
	}
}

type Handler struct {
	log       *slog.Logger
	extractor transcript.Extractor
	timeout   time.Duration
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := requestid.Logger(h.log, r)

	var req models.TranscriptPostRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil {
		log.Error("failed to decode body", slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{Error: "Invalid request body"}, http.StatusBadRequest)
		return
	}

	videoID := strings.TrimSpace(req.VideoID)
	if videoID == "" {
		respond.WithJSON(w, models.ErrorResponse{Error: "Video ID is required"}, http.StatusBadRequest)
		return
	}
	if !videoid.Valid(videoID) {
		log.Warn("rejected invalid video ID", slog.String("videoID", videoID))
		respond.WithJSON(w, models.ErrorResponse{Error: "Invalid video ID"}, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	log.Info("fetching transcript", slog.String("videoID", videoID))
	start := time.Now()
	text, err := h.extractor.Extract(ctx, videoID)
	if err != nil {
		attrs := []any{slog.String("videoID", videoID), slog.Duration("elapsed", time.Since(start)), slog.Any("error", err)}
		var ee *transcript.ExtractionError
		if errors.As(err, &ee) {
			attrs = append(attrs, slog.String("stderr", ee.Stderr))
		}
		if errors.Is(err, transcript.ErrTimeout) {
			log.Error("transcript extraction timed out", attrs...)
			respond.WithJSON(w, models.ErrorResponse{Error: "Timed out fetching transcript"}, http.StatusGatewayTimeout)
			return
		}
		log.Error("failed to fetch transcript", attrs...)
		respond.WithJSON(w, models.ErrorResponse{Error: "Failed to fetch transcript"}, http.StatusInternalServerError)
		return
	}
	log.Info("fetched transcript", slog.String("videoID", videoID), slog.Int("length", len(text)), slog.Duration("elapsed", time.Since(start)))

	respond.WithJSON(w, models.TranscriptPostResponse{Text: strings.TrimSpace(text)}, http.StatusOK)
}
