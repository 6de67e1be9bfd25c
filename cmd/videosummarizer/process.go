package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"github.com/videosummarizer/videosummarizer/client"
	"gopkg.in/yaml.v3"
)

type ProcessCommand struct {
	ServerURL string `help:"The URL of the server." env:"SERVER_URL" default:"http://localhost:3000"`
	URL       string `arg:"" help:"The YouTube URL to process."`
	Output    string `help:"The output format: text, json, or yaml." enum:"text,json,yaml" default:"text"`
	LogLevel  string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ProcessCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	vsc := client.New(c.ServerURL)
	progress := func(stage client.Stage) {
		log.Info("starting stage", slog.String("stage", string(stage)), slog.String("url", c.URL))
	}
	result, err := vsc.Process(ctx, c.URL, progress)
	if err != nil {
		return err
	}
	return writeResult(os.Stdout, c.Output, result)
}

func writeResult(w io.Writer, format string, result client.Result) (err error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	case "text", "":
		_, err = fmt.Fprintf(w, "Transcript (%s)\n\n%s\n\nSummary\n\n%s\n",
			result.VideoID,
			wordwrap.String(result.Transcript, 80),
			wordwrap.String(result.Summary, 80))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
