package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/jsonapi"
)

const (
	DefaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel = "gemini-2.0-flash"
)

type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content *Content `json:"content"`
}

// Parse extracts the text of the first candidate.
func Parse(resp GenerateContentResponse) (Result, error) {
	if len(resp.Candidates) == 0 {
		return Result{}, ErrNoCandidates
	}
	c := resp.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 || c.Parts[0].Text == "" {
		return Malformed, nil
	}
	return Parsed(c.Parts[0].Text), nil
}

func NewGemini(baseURL, model, apiKey string) Gemini {
	if baseURL == "" {
		baseURL = DefaultGeminiURL
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return Gemini{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
	}
}

// Gemini calls the generateContent method of the Generative Language API.
type Gemini struct {
	baseURL string
	model   string
	apiKey  string
}

func (g Gemini) Generate(ctx context.Context, prompt string) (r Result, err error) {
	url, err := jsonapi.URL(g.baseURL).
		Path("models", g.model+":generateContent").
		Query(map[string]string{"key": g.apiKey}).
		String()
	if err != nil {
		return r, fmt.Errorf("summary: invalid Gemini URL: %w", err)
	}
	req := GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
	resp, err := jsonapi.Post[GenerateContentRequest, GenerateContentResponse](ctx, url, req)
	if err != nil {
		if ctxErr := contextError(ctx, err); ctxErr != nil {
			return r, ctxErr
		}
		return r, fmt.Errorf("%w: %w", ErrProviderFailed, redactKey(err, g.apiKey))
	}
	return Parse(resp)
}

func (g Gemini) String() string {
	return fmt.Sprintf("gemini(%s)", g.model)
}

// redactKey removes the API key from errors that quote the request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return redactedError{msg: strings.ReplaceAll(err.Error(), key, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e redactedError) Error() string { return e.msg }
func (e redactedError) Unwrap() error { return e.err }
