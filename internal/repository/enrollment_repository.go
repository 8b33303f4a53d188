package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	// UserIDsByCourse returns the ids of users with direct course access.
	UserIDsByCourse(courseID uint) ([]uint, error)
	// UserIDsByGroupCourse returns the ids of users enrolled through a group
	// attached to the course.
	UserIDsByGroupCourse(courseID uint) ([]uint, error)
	FindUsersByIDs(ids []uint) ([]model.User, error)
	FindUserByID(id uint) (*model.User, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) UserIDsByCourse(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Enrollment{}).Where("course_id = ?", courseID).Order("user_id ASC").Pluck("user_id", &ids).Error
	return ids, err
}

func (r *enrollmentRepository) UserIDsByGroupCourse(courseID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.GroupMember{}).
		Joins("JOIN group_courses ON group_courses.group_id = group_members.group_id").
		Where("group_courses.course_id = ?", courseID).
		Order("group_members.user_id ASC").
		Pluck("group_members.user_id", &ids).Error
	return ids, err
}

func (r *enrollmentRepository) FindUsersByIDs(ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *enrollmentRepository) FindUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
