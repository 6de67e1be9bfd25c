package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	Serve      ServeCommand      `cmd:"serve" help:"Start the transcript and summary server."`
	Transcript TranscriptCommand `cmd:"transcript" help:"Fetch the transcript of a video from the server."`
	Summarize  SummarizeCommand  `cmd:"summarize" help:"Summarize text using the server."`
	Process    ProcessCommand    `cmd:"process" help:"Fetch and summarize the transcript of a YouTube URL."`
	UI         UICommand         `cmd:"ui" help:"Interactively fetch and summarize transcripts."`
	Version    VersionCommand    `cmd:"version" help:"Print the version of the server."`
}

func main() {
	// Values from .env are only used when not already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		getLogger("error").Error("failed to load .env file", slog.Any("error", err))
		os.Exit(1)
	}

	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
}
