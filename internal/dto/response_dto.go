package dto

import "time"

type QuestionResponse struct {
	ID            uint      `json:"question_id"`
	Text          string    `json:"text"`
	Description   string    `json:"description"`
	MediaFiles    []string  `json:"media_files"`
	CorrectAnswer string    `json:"correct_answer"`
	ShowSpectrum  bool      `json:"show_spectrum"`
	OrderNumber   int       `json:"order_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateQuestionResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	QuestionID uint   `json:"question_id"`
}

type CreateRecordingResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RecordingID uint   `json:"recording_id"`
}

type TranscriptionResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
