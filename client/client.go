package client

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/a-h/jsonapi"
	"github.com/videosummarizer/videosummarizer/models"
)

func New(baseURL string) Client {
	return Client{
		baseURL: baseURL,
	}
}

type Client struct {
	baseURL string
}

func (c Client) TranscriptPost(ctx context.Context, req models.TranscriptPostRequest) (resp models.TranscriptPostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("transcript").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.TranscriptPostRequest, models.TranscriptPostResponse](ctx, url, req)
}

func (c Client) SummarizePost(ctx context.Context, req models.SummarizePostRequest) (resp models.SummarizePostResponse, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("summarize").String()
	if err != nil {
		return resp, err
	}
	return jsonapi.Post[models.SummarizePostRequest, models.SummarizePostResponse](ctx, url, req)
}

// ErrorResponse returns the server's error body, if err was caused by a
// non-2xx response that had one.
func ErrorResponse(err error) (er models.ErrorResponse, ok bool) {
	var ise jsonapi.InvalidStatusError
	if !errors.As(err, &ise) {
		return er, false
	}
	if json.Unmarshal([]byte(ise.Body), &er) != nil || er.Error == "" {
		return er, false
	}
	return er, true
}
