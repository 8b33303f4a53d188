package model

import (
	"time"

	"gorm.io/gorm"
)

// Essay statuses.
const (
	EssayNotGraded = "not_graded"
	EssayGraded    = "graded"
)

// Essay is the LMS-side materialization of one external submission. The
// composite unique index on (SubmissionID, QuestionType) makes creation
// idempotent at the storage layer; concurrent duplicate sync events collapse
// into a single row.
type Essay struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	SubmissionID  uint    `json:"submission_id" gorm:"not null;uniqueIndex:idx_essay_submission"`
	QuestionType  string  `json:"question_type" gorm:"not null;uniqueIndex:idx_essay_submission"`
	AuthorID      uint    `json:"author_id" gorm:"not null;index"`
	QuizID        uint    `json:"quiz_id" gorm:"index"`
	QuestionID    uint    `json:"question_id"`
	ProQuestionID uint    `json:"pro_question_id"`
	CourseID      uint    `json:"course_id"`
	Status        string  `json:"status" gorm:"not null;default:'not_graded'"`
	PointsAwarded uint    `json:"points_awarded" gorm:"default:0"`
	Percentage    float64 `json:"percentage" gorm:"default:0"`
	Content       string  `json:"content,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
