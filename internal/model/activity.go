package model

import (
	"time"

	"gorm.io/gorm"
)

// Step types recorded in the activity log.
const (
	StepLesson = "lesson"
	StepTopic  = "topic"
	StepQuiz   = "quiz"
	StepCourse = "course"
)

// Step statuses in dashboard priority order.
const (
	StatusNotStarted    = "not-started"
	StatusInProgress    = "in-progress"
	StatusFailed        = "failed"
	StatusPendingReview = "pending-review"
	StatusCompleted     = "completed"
)

// statusPriority resolves conflicting duplicate activity rows for the same
// step: the highest-priority status wins.
var statusPriority = map[string]int{
	StatusCompleted:     5,
	StatusPendingReview: 4,
	StatusFailed:        3,
	StatusInProgress:    2,
	StatusNotStarted:    1,
}

// StatusPriority returns the resolution priority for a step status; unknown
// statuses rank below not-started.
func StatusPriority(status string) int {
	return statusPriority[status]
}

// Activity is one course-step activity-log row for a user. Multiple rows per
// (user, step) can exist; readers resolve them by status priority.
type Activity struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index:idx_activity_user_course"`
	CourseID    uint           `json:"course_id" gorm:"not null;index:idx_activity_user_course"`
	StepID      uint           `json:"step_id" gorm:"not null;index"`
	StepType    string         `json:"step_type" gorm:"not null"`
	Status      string         `json:"status" gorm:"not null;default:'not-started'"`
	Percentage  float64        `json:"percentage" gorm:"default:0"`
	Points      uint           `json:"points" gorm:"default:0"`
	TotalPoints uint           `json:"total_points" gorm:"default:0"`
	Started     int64          `json:"started" gorm:"default:0"`
	Completed   int64          `json:"completed" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
