package model

import "time"

// Recording is a stored audio submission from a user against a question.
// QuestionID is an opaque reference; it is intentionally not enforced against
// the questions table at write time.
type Recording struct {
	ID           uint      `gorm:"primarykey" json:"recording_id"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	RecordingURL string    `json:"recording_url" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
