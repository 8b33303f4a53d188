package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Graded-entry statuses inside an attempt record.
const (
	GradedStatusNotGraded = "not_graded"
	GradedStatusGraded    = "graded"
)

// GradedEntry is one essay question inside an attempt's graded map.
type GradedEntry struct {
	EssayID       uint   `json:"essay_id"`
	PointsAwarded uint   `json:"points_awarded"`
	Status        string `json:"status"`
}

// GradedMap maps quiz-engine question ids to their grading state.
type GradedMap map[uint]GradedEntry

// QuizAttempt is a fabricated "quiz completed" record for an attempt that
// never went through the native quiz-taking UI. The unique index on
// (UserID, QuizID, EssayID) makes fabrication idempotent. Started/Completed
// of 0 mean "unknown", not epoch.
type QuizAttempt struct {
	ID          uint                          `gorm:"primarykey" json:"id"`
	UserID      uint                          `json:"user_id" gorm:"not null;uniqueIndex:idx_attempt_identity"`
	QuizID      uint                          `json:"quiz" gorm:"not null;uniqueIndex:idx_attempt_identity"`
	EssayID     uint                          `json:"essay_id" gorm:"not null;uniqueIndex:idx_attempt_identity"`
	ProQuizID   uint                          `json:"pro_quizid"`
	CourseID    uint                          `json:"course"`
	LessonID    uint                          `json:"lesson"`
	TopicID     uint                          `json:"topic"`
	Points      uint                          `json:"points" gorm:"default:0"`
	TotalPoints uint                          `json:"total_points" gorm:"default:0"`
	Percentage  float64                       `json:"percentage" gorm:"default:0"`
	TimeSpent   int64                         `json:"timespent" gorm:"default:0"`
	Started     int64                         `json:"started" gorm:"default:0"`
	Completed   int64                         `json:"completed" gorm:"default:0"`
	Pass        bool                          `json:"pass"`
	Graded      datatypes.JSONType[GradedMap] `json:"graded"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
	DeletedAt   gorm.DeletedAt                `gorm:"index" json:"-"`
}
