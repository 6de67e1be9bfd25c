package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/videosummarizer/videosummarizer/client"
	"github.com/videosummarizer/videosummarizer/models"
)

type SummarizeCommand struct {
	ServerURL string `help:"The URL of the server." env:"SERVER_URL" default:"http://localhost:3000"`
	Text      string `help:"The text to summarize." xor:"input"`
	File      string `help:"A file containing the text to summarize, or - for stdin." xor:"input"`
	Pretty    bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c SummarizeCommand) text(stdin io.Reader) (string, error) {
	switch c.File {
	case "":
		return c.Text, nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	return readFileOrDefault(c.File, "")
}

func (c SummarizeCommand) Run(ctx context.Context) (err error) {
	text, err := c.text(os.Stdin)
	if err != nil {
		return err
	}
	vsc := client.New(c.ServerURL)
	resp, err := vsc.SummarizePost(ctx, models.SummarizePostRequest{
		Text: text,
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
