package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscriptPost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	s := newServer(t, "integration-key")

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name:           "transcript is returned trimmed",
			body:           `{"videoId":"dQw4w9WgXcQ"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"text": "never gonna give you up"},
		},
		{
			name:           "missing video ID is rejected",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"error": "Video ID is required"},
		},
		{
			name:           "extractor failures do not leak stderr",
			body:           `{"videoId":"aaaaaaaaaaa"}`,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]any{"error": "Failed to fetch transcript"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, s.URL+"/transcript", tt.body)
			require.Equal(t, tt.expectedStatus, status)
			require.Equal(t, tt.expectedBody, body)
		})
	}
}
