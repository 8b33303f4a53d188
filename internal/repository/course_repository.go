package repository

import (
	"errors"

	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	FindByID(id uint) (*model.Course, error)
	FindByAuthor(authorID uint) ([]model.Course, error)
	// FindByGroupLeader returns the courses attached to groups the user leads.
	FindByGroupLeader(userID uint) ([]model.Course, error)
	FindQuizByID(id uint) (*model.Quiz, error)
	FindQuizzesByCourse(courseID uint) ([]model.Quiz, error)
	FindLessonByID(id uint) (*model.Lesson, error)
	FindTopicByID(id uint) (*model.Topic, error)
	// FindLessonsWithTopics returns the course's lessons ordered by step
	// order, each with its topics preloaded in order.
	FindLessonsWithTopics(courseID uint) ([]model.Lesson, error)
	CreateQuiz(quiz *model.Quiz) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByAuthor(authorID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Where("author_id = ?", authorID).Order("id ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindByGroupLeader(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.
		Joins("JOIN group_courses ON group_courses.course_id = courses.id").
		Joins("JOIN group_leaders ON group_leaders.group_id = group_courses.group_id").
		Where("group_leaders.user_id = ?", userID).
		Order("courses.id ASC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindQuizByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *courseRepository) FindQuizzesByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Where("course_id = ?", courseID).Order("step_order ASC, id ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *courseRepository) FindLessonByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *courseRepository) FindTopicByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *courseRepository) FindLessonsWithTopics(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.db.Preload("Topics", func(db *gorm.DB) *gorm.DB {
		return db.Order("topics.step_order ASC, topics.id ASC")
	}).Where("course_id = ?", courseID).Order("step_order ASC, id ASC").Find(&lessons).Error
	return lessons, err
}

func (r *courseRepository) CreateQuiz(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}
