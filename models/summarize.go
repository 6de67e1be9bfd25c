package models

type SummarizePostRequest struct {
	Text string `json:"text"`
}

type SummarizePostResponse struct {
	Summary string `json:"summary"`
}
