package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionTypeEssay marks free-text questions that the external platform
// grades; only these participate in submission synchronization.
const QuestionTypeEssay = "essay"

// Question is an LMS question post. ProQuestionID links it to the quiz-engine
// row that actually carries answers and points. The External* fields link a
// question to its counterpart on the external IELTS platform.
type Question struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	QuizID        uint   `json:"quiz_id" gorm:"index"`
	Title         string `json:"title" gorm:"not null"`
	QuestionType  string `json:"question_type" gorm:"not null"`
	Points        uint   `json:"points" gorm:"default:1"`
	ProQuestionID uint   `json:"pro_question_id" gorm:"index"`

	ExternalEnabled bool   `json:"external_enabled" gorm:"default:false"`
	ExternalID      uint   `json:"external_id"`
	ExternalType    string `json:"external_type"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
