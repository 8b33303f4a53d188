package model

import (
	"time"

	"gorm.io/gorm"
)

// ProQuiz is the quiz-engine row behind a Quiz post, carrying the grading
// configuration the post itself does not store.
type ProQuiz struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	QuizPostID        uint           `json:"quiz_post_id" gorm:"index"`
	Title             string         `json:"title"`
	PassingPercentage float64        `json:"passing_percentage" gorm:"default:80"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProQuestion is the quiz-engine row behind a Question post.
// AnswerType/AnswerData mirror the engine's internal field names.
type ProQuestion struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ProQuizID  uint           `json:"pro_quiz_id" gorm:"not null;index"`
	Title      string         `json:"title"`
	AnswerType string         `json:"answer_type" gorm:"not null"`
	Points     uint           `json:"points" gorm:"default:1"`
	AnswerData string         `json:"answer_data,omitempty" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
