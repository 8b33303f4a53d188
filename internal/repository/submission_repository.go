package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	Update(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindAllByUser(userID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) Update(submission *model.Submission) error {
	return r.db.Save(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByUser(userID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}
