package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/videosummarizer/videosummarizer/server"
	"github.com/videosummarizer/videosummarizer/summary"
	"github.com/videosummarizer/videosummarizer/transcript"
)

// extractorScript prints a transcript for one known video and fails for
// everything else, like a transcript script would for a video without captions.
const extractorScript = `
if [ "$1" = "dQw4w9WgXcQ" ]; then
  printf '  never gonna give you up\n'
  exit 0
fi
echo "Error: Subtitles are disabled for this video" >&2
exit 1
`

// newProvider starts a stub Generative Language API. Prompts containing
// "malformed" get a candidate without text and prompts containing "refuse"
// get no candidates.
func newProvider(t *testing.T) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "integration-key" {
			w.WriteHeader(http.StatusForbidden)
			io.WriteString(w, `{"error":{"code":403,"message":"API key not valid."}}`)
			return
		}
		var req summary.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Contents[0].Parts[0].Text
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(prompt, "malformed"):
			io.WriteString(w, `{"candidates":[{"finishReason":"SAFETY"}]}`)
		case strings.Contains(prompt, "refuse"):
			io.WriteString(w, `{"candidates":[]}`)
		default:
			io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Key point A."}]}}]}`)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func newServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	provider := newProvider(t)
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	extractor := transcript.NewProcess("sh", "-c", extractorScript, "sh")
	generator := summary.NewGemini(provider.URL+"/v1beta", summary.DefaultGeminiModel, apiKey)
	s := httptest.NewServer(server.New(log, extractor, generator, server.Config{
		TranscriptTimeout: 10 * time.Second,
		SummaryTimeout:    10 * time.Second,
	}))
	t.Cleanup(s.Close)
	return s
}

func post(t *testing.T, url, body string) (status int, decoded map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}
