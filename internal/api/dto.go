package api

import "study-assistant/internal/models"

const formatHTML = "html"

type SummarizeRequest struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}

type QuestionRequest struct {
	Text         string `json:"text"`
	NumQuestions *int   `json:"num_questions"`
}

type QuestionResponse struct {
	Questions []models.QuestionItem `json:"questions"`
}

type UploadResponse struct {
	Text    string `json:"text"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type StatusResponse struct {
	Status            string `json:"status"`
	Summarizer        bool   `json:"summarizer"`
	QuestionGenerator bool   `json:"questionGenerator"`
}
