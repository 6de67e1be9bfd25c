package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/videosummarizer/videosummarizer/summary"
	"github.com/videosummarizer/videosummarizer/transcript"
)

func TestReadFileOrDefault(t *testing.T) {
	t.Run("empty file names use the default", func(t *testing.T) {
		actual, err := readFileOrDefault("", "default")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual != "default" {
			t.Errorf("expected %q, got %q", "default", actual)
		}
	})
	t.Run("file contents are returned", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "prompt.txt")
		if err := os.WriteFile(name, []byte("TL;DR: %s"), 0o600); err != nil {
			t.Fatal(err)
		}
		actual, err := readFileOrDefault(name, "default")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual != "TL;DR: %s" {
			t.Errorf("expected file contents, got %q", actual)
		}
	})
	t.Run("missing files are an error", func(t *testing.T) {
		if _, err := readFileOrDefault(filepath.Join(t.TempDir(), "missing.txt"), "default"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestServeCommandExtractor(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tests := []struct {
		name     string
		cmd      ServeCommand
		expected string
		err      bool
	}{
		{
			name:     "process runs the command with its arguments",
			cmd:      ServeCommand{Extractor: "process", ExtractorCommand: []string{"python", "get_transcript.py"}},
			expected: "process(python get_transcript.py)",
		},
		{
			name:     "yt-dlp does not need an extractor command",
			cmd:      ServeCommand{Extractor: "yt-dlp", YTDLPCommand: "yt-dlp", SubtitleLanguage: "de"},
			expected: "yt-dlp(de)",
		},
		{
			name: "process requires a command",
			cmd:  ServeCommand{Extractor: "process"},
			err:  true,
		},
		{
			name: "unknown extractors are an error",
			cmd:  ServeCommand{Extractor: "magic", ExtractorCommand: []string{"x"}},
			err:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.cmd.extractor(log)
			if tt.err {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual := e.(interface{ String() string }).String(); actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
	t.Run("chain tries yt-dlp then the process", func(t *testing.T) {
		cmd := ServeCommand{Extractor: "chain", ExtractorCommand: []string{"python", "get_transcript.py"}}
		e, err := cmd.extractor(log)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := e.(transcript.Chain); !ok {
			t.Errorf("expected a chain, got %T", e)
		}
	})
}

func TestServeCommandGenerator(t *testing.T) {
	t.Run("gemini requires an API key", func(t *testing.T) {
		if _, err := (ServeCommand{Provider: "gemini"}).generator(http.DefaultClient); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("gemini uses the configured model", func(t *testing.T) {
		g, err := (ServeCommand{Provider: "gemini", GeminiAPIKey: "key", GeminiModel: "gemini-2.0-flash"}).generator(http.DefaultClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := g.(summary.Gemini); !ok {
			t.Errorf("expected a Gemini generator, got %T", g)
		}
	})
	t.Run("ollama uses langchaingo", func(t *testing.T) {
		g, err := (ServeCommand{Provider: "ollama", OllamaModel: "mistral-nemo", OllamaURL: "http://127.0.0.1:11434/"}).generator(http.DefaultClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := g.(summary.LLM); !ok {
			t.Errorf("expected an LLM generator, got %T", g)
		}
	})
	t.Run("unknown providers are an error", func(t *testing.T) {
		if _, err := (ServeCommand{Provider: "magic"}).generator(http.DefaultClient); err == nil {
			t.Error("expected error")
		}
	})
}

func TestServeCommandConfig(t *testing.T) {
	t.Run("invalid prompt templates are rejected", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "prompt.txt")
		if err := os.WriteFile(name, []byte("no placeholder"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := (ServeCommand{PromptFile: name}).config(); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("the default prompt is used without a prompt file", func(t *testing.T) {
		config, err := (ServeCommand{StrictSummaries: true}).config()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actual := config.Prompt.Format("x"); actual != "Summarize this transcript into a **concise summary** with key points:\n\nx" {
			t.Errorf("unexpected prompt %q", actual)
		}
		if !config.StrictSummaries {
			t.Error("expected strict summaries to be enabled")
		}
	})
}
