package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	Update(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByQuizID(quizID uint) ([]model.Question, error)
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

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error
	return questions, err
}
