package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

// ProQuizRepository fronts the quiz-engine rows that back quiz and question
// posts.
type ProQuizRepository interface {
	CreateQuestion(question *model.ProQuestion) error
	SaveQuestion(question *model.ProQuestion) error
	FindQuestionByID(id uint) (*model.ProQuestion, error)
	FindQuizByID(id uint) (*model.ProQuiz, error)
	FindQuizByQuizPostID(quizPostID uint) (*model.ProQuiz, error)
}

type proQuizRepository struct {
	db *gorm.DB
}

func NewProQuizRepository(db *gorm.DB) ProQuizRepository {
	return &proQuizRepository{db: db}
}

func (r *proQuizRepository) CreateQuestion(question *model.ProQuestion) error {
	return r.db.Create(question).Error
}

func (r *proQuizRepository) SaveQuestion(question *model.ProQuestion) error {
	return r.db.Save(question).Error
}

func (r *proQuizRepository) FindQuestionByID(id uint) (*model.ProQuestion, error) {
	var question model.ProQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *proQuizRepository) FindQuizByID(id uint) (*model.ProQuiz, error) {
	var quiz model.ProQuiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *proQuizRepository) FindQuizByQuizPostID(quizPostID uint) (*model.ProQuiz, error) {
	var quiz model.ProQuiz
	if err := r.db.Where("quiz_post_id = ?", quizPostID).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}
