package repository

import (
	"github.com/lshigami/Skylark/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindAllOrdered() ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

// FindAllOrdered returns every question ascending by order_number. Duplicate
// order numbers are permitted; ties keep scan order.
func (r *questionRepository) FindAllOrdered() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("order_number ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
