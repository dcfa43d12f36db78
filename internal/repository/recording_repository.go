package repository

import (
	"github.com/lshigami/Skylark/internal/model"
	"gorm.io/gorm"
)

type RecordingRepository interface {
	Create(recording *model.Recording) error
}

type recordingRepository struct {
	db *gorm.DB
}

func NewRecordingRepository(db *gorm.DB) RecordingRepository {
	return &recordingRepository{db: db}
}

func (r *recordingRepository) Create(recording *model.Recording) error {
	return r.db.Create(recording).Error
}
