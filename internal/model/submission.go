package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission kinds, matching the external platform's question types.
const (
	KindWritingTask  = "writing-task"
	KindWritingTest  = "writing-test"
	KindSpeakingPart = "speaking-part"
)

// Submission statuses.
const (
	SubmissionDraft     = "draft"
	SubmissionCompleted = "completed"
	SubmissionGraded    = "graded"
	SubmissionNotGraded = "not_graded"
)

// Submission is a writing-task, writing-test or speaking-part submission
// coming from the external IELTS platform. Course/quiz/question references
// point into the LMS course tree; EssayRefID is the external essay or speech
// record the student produced.
type Submission struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Kind        string         `json:"kind" gorm:"not null;index"`
	Status      string         `json:"status" gorm:"not null;default:'draft'"`
	BandScore   *float64       `json:"band_score,omitempty"` // 0-9 IELTS band
	ElapsedTime int64          `json:"elapsed_time" gorm:"default:0"`
	CourseID    uint           `json:"course_id"`
	QuizID      uint           `json:"quiz_id" gorm:"index"`
	LessonID    uint           `json:"lesson_id"`
	TopicID     uint           `json:"topic_id"`
	QuestionID  uint           `json:"question_id"`
	EssayRefID  uint           `json:"essay_ref_id"`
	Content     string         `json:"content,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Syncable reports whether the submission has reached a state that should be
// materialized as an essay on the LMS side.
func (s *Submission) Syncable() bool {
	switch s.Status {
	case SubmissionCompleted, SubmissionGraded, SubmissionNotGraded:
		return true
	}
	return false
}
