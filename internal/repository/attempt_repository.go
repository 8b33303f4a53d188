package repository

import (
	"errors"

	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	// InsertIfAbsent appends the attempt unless the (user, quiz, essay)
	// identity already exists. Returns whether a new row was created.
	InsertIfAbsent(attempt *model.QuizAttempt) (bool, error)
	FindByIdentity(userID, quizID, essayID uint) (*model.QuizAttempt, error)
	FindAllByUserAndQuiz(userID, quizID uint) ([]model.QuizAttempt, error)
	Update(attempt *model.QuizAttempt) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) InsertIfAbsent(attempt *model.QuizAttempt) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}, {Name: "essay_id"}},
		DoNothing: true,
	}).Create(attempt)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attemptRepository) FindByIdentity(userID, quizID, essayID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.Where("user_id = ? AND quiz_id = ? AND essay_id = ?", userID, quizID, essayID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUserAndQuiz(userID, quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).Order("created_at ASC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Update(attempt *model.QuizAttempt) error {
	return r.db.Save(attempt).Error
}
