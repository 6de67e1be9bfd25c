package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/videosummarizer/videosummarizer/server"
	"github.com/videosummarizer/videosummarizer/summary"
	"github.com/videosummarizer/videosummarizer/transcript"
)

type ServeCommand struct {
	ListenAddr        string        `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:3000"`
	TLSCertFile       string        `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile        string        `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	Extractor         string        `help:"How to fetch transcripts: process, yt-dlp, or chain (yt-dlp, then process)." env:"EXTRACTOR" enum:"process,yt-dlp,chain" default:"process"`
	ExtractorCommand  []string      `help:"The transcript command and its arguments. The video ID is appended as the last argument." env:"EXTRACTOR_COMMAND" default:"python,get_transcript.py"`
	YTDLPCommand      string        `help:"The yt-dlp executable." env:"YTDLP_COMMAND" default:"yt-dlp"`
	SubtitleLanguage  string        `help:"The caption language to request from yt-dlp." env:"SUBTITLE_LANGUAGE" default:"en"`
	TranscriptTimeout time.Duration `help:"The maximum time to spend fetching a transcript." env:"TRANSCRIPT_TIMEOUT" default:"2m"`
	Provider          string        `help:"The summarization provider: gemini, ollama, or openai." env:"PROVIDER" enum:"gemini,ollama,openai" default:"gemini"`
	GeminiURL         string        `help:"The base URL of the Generative Language API." env:"GEMINI_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel       string        `help:"The Gemini model to use." env:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiAPIKey      string        `help:"The Gemini API key." env:"GEMINI_API_KEY" default:""`
	OllamaURL         string        `help:"The URL of the Ollama server." env:"OLLAMA_URL" default:"http://127.0.0.1:11434/"`
	OllamaModel       string        `help:"The Ollama model to use." env:"OLLAMA_MODEL" default:"mistral-nemo"`
	OpenAIURL         string        `help:"The base URL of an OpenAI compatible API." env:"OPENAI_URL" default:"https://api.openai.com/v1"`
	OpenAIModel       string        `help:"The OpenAI model to use." env:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIAPIKey      string        `help:"The OpenAI API key." env:"OPENAI_API_KEY" default:""`
	SummaryTimeout    time.Duration `help:"The maximum time to wait for a summary." env:"SUMMARY_TIMEOUT" default:"1m"`
	PromptFile        string        `help:"A file containing the summary prompt, with %s where the transcript goes." env:"PROMPT_FILE" default:""`
	StrictSummaries   bool          `help:"Return an error instead of a placeholder when the provider response has no text." env:"STRICT_SUMMARIES" default:"false"`
	LogLevel          string        `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func readFileOrDefault(filename, defaultContent string) (string, error) {
	if filename == "" {
		return defaultContent, nil
	}
	contents, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(contents), nil
}

func (c ServeCommand) extractor(log *slog.Logger) (transcript.Extractor, error) {
	if c.Extractor != "yt-dlp" && len(c.ExtractorCommand) == 0 {
		return nil, fmt.Errorf("an extractor command is required")
	}
	switch c.Extractor {
	case "process":
		return transcript.NewProcess(c.ExtractorCommand[0], c.ExtractorCommand[1:]...), nil
	case "yt-dlp":
		return transcript.NewYTDLP(c.YTDLPCommand, c.SubtitleLanguage), nil
	case "chain":
		return transcript.NewChain(log,
			transcript.NewYTDLP(c.YTDLPCommand, c.SubtitleLanguage),
			transcript.NewProcess(c.ExtractorCommand[0], c.ExtractorCommand[1:]...),
		), nil
	}
	return nil, fmt.Errorf("unknown extractor %q", c.Extractor)
}

func (c ServeCommand) generator(httpClient *http.Client) (summary.Generator, error) {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return nil, fmt.Errorf("a Gemini API key is required, set GEMINI_API_KEY")
		}
		return summary.NewGemini(c.GeminiURL, c.GeminiModel, c.GeminiAPIKey), nil
	case "ollama":
		llmc, err := ollama.New(
			ollama.WithModel(c.OllamaModel),
			ollama.WithHTTPClient(httpClient),
			ollama.WithServerURL(c.OllamaURL))
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return summary.NewLLM(llmc, "ollama/"+c.OllamaModel), nil
	case "openai":
		llmc, err := openai.New(
			openai.WithModel(c.OpenAIModel),
			openai.WithToken(c.OpenAIAPIKey),
			openai.WithBaseURL(c.OpenAIURL),
			openai.WithHTTPClient(httpClient))
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return summary.NewLLM(llmc, "openai/"+c.OpenAIModel), nil
	}
	return nil, fmt.Errorf("unknown provider %q", c.Provider)
}

func (c ServeCommand) config() (config server.Config, err error) {
	template, err := readFileOrDefault(c.PromptFile, summary.DefaultPrompt)
	if err != nil {
		return config, fmt.Errorf("failed to read prompt: %w", err)
	}
	prompt, err := summary.NewPrompt(template)
	if err != nil {
		return config, fmt.Errorf("invalid prompt template: %w", err)
	}
	return server.Config{
		TranscriptTimeout: c.TranscriptTimeout,
		SummaryTimeout:    c.SummaryTimeout,
		Prompt:            prompt,
		StrictSummaries:   c.StrictSummaries,
	}, nil
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	config, err := c.config()
	if err != nil {
		return err
	}

	extractor, err := c.extractor(log)
	if err != nil {
		return fmt.Errorf("failed to create transcript extractor: %w", err)
	}
	log.Info("created transcript extractor", slog.String("extractor", fmt.Sprint(extractor)))

	httpClient := &http.Client{}
	generator, err := c.generator(httpClient)
	if err != nil {
		return fmt.Errorf("failed to create summary provider: %w", err)
	}
	log.Info("created summary provider", slog.String("provider", fmt.Sprint(generator)))

	handler := server.New(log, extractor, generator, config)

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:              c.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}
