package model

import (
	"time"

	"gorm.io/gorm"
)

// Course is the root of the LMS step tree. AuthorID is the teacher who owns
// the course for dashboard access purposes.
type Course struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Title     string         `json:"title" gorm:"not null"`
	AuthorID  uint           `json:"author_id" gorm:"index"`
	Lessons   []Lesson       `json:"lessons,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Lesson struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"column:step_order;default:0"`
	Topics    []Topic        `json:"topics,omitempty" gorm:"foreignKey:LessonID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Topic struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LessonID  uint           `json:"lesson_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"column:step_order;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Quiz is the quiz post placed somewhere in the course tree. LessonID and
// TopicID are 0 when the quiz hangs directly off the course ("global" quiz).
type Quiz struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"index"`
	LessonID  uint           `json:"lesson_id" gorm:"index"`
	TopicID   uint           `json:"topic_id" gorm:"index"`
	ProQuizID uint           `json:"pro_quiz_id" gorm:"index"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"column:step_order;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
