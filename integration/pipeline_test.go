package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/videosummarizer/videosummarizer/client"
)

func TestPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	s := newServer(t, "integration-key")
	c := client.New(s.URL)

	t.Run("a URL is transcribed and summarized", func(t *testing.T) {
		result, err := c.Process(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil)
		require.NoError(t, err)
		require.Equal(t, client.Result{
			VideoID:    "dQw4w9WgXcQ",
			Transcript: "never gonna give you up",
			Summary:    "Key point A.",
		}, result)
	})
	t.Run("transcript failures name the stage", func(t *testing.T) {
		_, err := c.Process(context.Background(), "https://youtu.be/aaaaaaaaaaa", nil)
		var se *client.StageError
		require.True(t, errors.As(err, &se))
		require.Equal(t, client.StageTranscript, se.Stage)
	})
}
