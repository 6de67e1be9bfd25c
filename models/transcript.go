package models

type TranscriptPostRequest struct {
	VideoID string `json:"videoId"`
}

type TranscriptPostResponse struct {
	// Text of the transcript, with leading and trailing whitespace removed.
	Text string `json:"text"`
}
