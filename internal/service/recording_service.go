package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Skylark/internal/apperrors"
	"github.com/lshigami/Skylark/internal/dto"
	"github.com/lshigami/Skylark/internal/model"
	"github.com/lshigami/Skylark/internal/repository"
	"github.com/rs/zerolog/log"
)

type RecordingService interface {
	CreateRecording(req dto.CreateRecordingRequest) (*dto.CreateRecordingResponse, error)
}

type recordingService struct {
	repo repository.RecordingRepository
}

func NewRecordingService(repo repository.RecordingRepository) RecordingService {
	return &recordingService{repo: repo}
}

func (s *recordingService) CreateRecording(req dto.CreateRecordingRequest) (*dto.CreateRecordingResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", apperrors.ErrValidation)
	}
	if req.RecordingURL == "" {
		return nil, fmt.Errorf("%w: recording file is required", apperrors.ErrValidation)
	}

	// QuestionID is stored as given; existence against the questions table is
	// intentionally not checked.
	recording := model.Recording{}
	copier.Copy(&recording, &req)

	if err := s.repo.Create(&recording); err != nil {
		log.Error().Err(err).Msg("Failed to create recording in service")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &dto.CreateRecordingResponse{
		Success:     true,
		Message:     "recording saved",
		RecordingID: recording.ID,
	}, nil
}
