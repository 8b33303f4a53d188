package model

import (
	"time"
)

// QuizStatisticRef groups the per-question statistic rows of one attempt,
// mirroring the quiz engine's ref/row split.
type QuizStatisticRef struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ProQuizID  uint      `json:"pro_quiz_id" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	CreateTime int64     `json:"create_time" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuizStatistic is one per-question row under a ref.
type QuizStatistic struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	RefID         uint   `json:"ref_id" gorm:"not null;index"`
	ProQuestionID uint   `json:"pro_question_id" gorm:"not null"`
	Points        uint   `json:"points" gorm:"default:0"`
	ReachedPoints uint   `json:"reached_points" gorm:"default:0"`
	AnswerData    string `json:"answer_data,omitempty" gorm:"type:text"`
	QuestionTime  int64  `json:"question_time" gorm:"default:0"`
}
