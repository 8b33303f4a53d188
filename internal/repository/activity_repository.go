package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *model.Activity) error
	Update(activity *model.Activity) error
	FindByUserAndCourse(userID, courseID uint) ([]model.Activity, error)
	FindByUserAndStep(userID, stepID uint, stepType string) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(activity *model.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) Update(activity *model.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) FindByUserAndCourse(userID, courseID uint) ([]model.Activity, error) {
	var rows []model.Activity
	err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *activityRepository) FindByUserAndStep(userID, stepID uint, stepType string) ([]model.Activity, error) {
	var rows []model.Activity
	err := r.db.Where("user_id = ? AND step_id = ? AND step_type = ?", userID, stepID, stepType).Order("id ASC").Find(&rows).Error
	return rows, err
}
