package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// MediaFileList is an ordered list of server-relative media paths, stored as a
// JSON array in a TEXT column so it round-trips losslessly.
type MediaFileList []string

func (m MediaFileList) Value() (driver.Value, error) {
	if m == nil {
		m = MediaFileList{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *MediaFileList) Scan(src interface{}) error {
	if src == nil {
		*m = MediaFileList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported type %T for MediaFileList", src)
	}
	if len(data) == 0 {
		*m = MediaFileList{}
		return nil
	}
	return json.Unmarshal(data, m)
}

type Question struct {
	ID            uint          `gorm:"primarykey" json:"question_id"`
	Text          string        `json:"text" gorm:"type:text;not null"`
	Description   string        `json:"description" gorm:"type:text"`
	MediaFiles    MediaFileList `json:"media_files" gorm:"type:text"`
	CorrectAnswer string        `json:"correct_answer"`
	ShowSpectrum  bool          `json:"show_spectrum"`
	OrderNumber   int           `json:"order_number" gorm:"not null;index"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
