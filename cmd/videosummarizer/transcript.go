package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/videosummarizer/videosummarizer/client"
	"github.com/videosummarizer/videosummarizer/models"
)

type TranscriptCommand struct {
	ServerURL string `help:"The URL of the server." env:"SERVER_URL" default:"http://localhost:3000"`
	VideoID   string `help:"The ID of the video." required:""`
	Pretty    bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c TranscriptCommand) Run(ctx context.Context) (err error) {
	vsc := client.New(c.ServerURL)
	resp, err := vsc.TranscriptPost(ctx, models.TranscriptPostRequest{
		VideoID: c.VideoID,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
