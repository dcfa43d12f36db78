package dto

// CreateQuestionRequest carries the form fields of POST /api/questions after
// multipart parsing. MediaFiles holds the server-relative paths already
// written by the media store.
type CreateQuestionRequest struct {
	Text          string   `json:"text"`
	Description   string   `json:"description"`
	MediaFiles    []string `json:"media_files"`
	CorrectAnswer string   `json:"correct_answer"`
	ShowSpectrum  bool     `json:"show_spectrum"`
	OrderNumber   *int     `json:"order_number"`
}

// CreateRecordingRequest carries the form fields of POST /api/recordings.
// RecordingURL is the stored path of the uploaded audio blob.
type CreateRecordingRequest struct {
	UserID       string `json:"user_id"`
	QuestionID   uint   `json:"question_id"`
	RecordingURL string `json:"recording_url"`
}
