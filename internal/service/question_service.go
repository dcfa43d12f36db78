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

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	ListQuestions() ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", apperrors.ErrValidation)
	}
	if req.OrderNumber == nil {
		return nil, fmt.Errorf("%w: order_number is required", apperrors.ErrValidation)
	}

	question := model.Question{
		Text:          req.Text,
		Description:   req.Description,
		MediaFiles:    model.MediaFileList(req.MediaFiles),
		CorrectAnswer: req.CorrectAnswer,
		ShowSpectrum:  req.ShowSpectrum,
		OrderNumber:   *req.OrderNumber,
	}
	if question.MediaFiles == nil {
		question.MediaFiles = model.MediaFileList{}
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &dto.CreateQuestionResponse{
		Success:    true,
		Message:    "question created",
		QuestionID: question.ID,
	}, nil
}

func (s *questionService) ListQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions in service")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		var item dto.QuestionResponse
		copier.Copy(&item, &q)
		if item.MediaFiles == nil {
			item.MediaFiles = []string{}
		}
		resp = append(resp, item)
	}
	return resp, nil
}
