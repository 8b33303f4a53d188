package repository

import (
	"errors"

	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EssayRepository interface {
	// UpsertForSubmission inserts the essay unless one already exists for its
	// (submission_id, question_type) pair, and returns the persisted row
	// either way. The second return reports whether a new row was created.
	UpsertForSubmission(essay *model.Essay) (*model.Essay, bool, error)
	FindBySubmission(submissionID uint, questionType string) (*model.Essay, error)
	FindByID(id uint) (*model.Essay, error)
	Update(essay *model.Essay) error
}

type essayRepository struct {
	db *gorm.DB
}

func NewEssayRepository(db *gorm.DB) EssayRepository {
	return &essayRepository{db: db}
}

func (r *essayRepository) UpsertForSubmission(essay *model.Essay) (*model.Essay, bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "submission_id"}, {Name: "question_type"}},
		DoNothing: true,
	}).Create(essay)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return essay, true, nil
	}
	// Conflict path: someone else holds the pair, fetch the winner.
	existing, err := r.FindBySubmission(essay.SubmissionID, essay.QuestionType)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *essayRepository) FindBySubmission(submissionID uint, questionType string) (*model.Essay, error) {
	var essay model.Essay
	err := r.db.Where("submission_id = ? AND question_type = ?", submissionID, questionType).First(&essay).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &essay, nil
}

func (r *essayRepository) FindByID(id uint) (*model.Essay, error) {
	var essay model.Essay
	if err := r.db.First(&essay, id).Error; err != nil {
		return nil, err
	}
	return &essay, nil
}

func (r *essayRepository) Update(essay *model.Essay) error {
	return r.db.Save(essay).Error
}
