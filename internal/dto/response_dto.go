package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SubmissionResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	BandScore   *float64  `json:"band_score,omitempty"`
	ElapsedTime int64     `json:"elapsed_time"`
	CourseID    uint      `json:"course_id"`
	QuizID      uint      `json:"quiz_id"`
	QuestionID  uint      `json:"question_id"`
	EssayRefID  uint      `json:"essay_ref_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EssayResponse struct {
	ID            uint      `json:"id"`
	SubmissionID  uint      `json:"submission_id"`
	QuestionType  string    `json:"question_type"`
	AuthorID      uint      `json:"author_id"`
	QuizID        uint      `json:"quiz_id"`
	Status        string    `json:"status"`
	PointsAwarded uint      `json:"points_awarded"`
	Percentage    float64   `json:"percentage"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuestionResponse struct {
	ID              uint      `json:"id"`
	QuizID          uint      `json:"quiz_id"`
	Title           string    `json:"title"`
	QuestionType    string    `json:"question_type"`
	Points          uint      `json:"points"`
	ProQuestionID   uint      `json:"pro_question_id"`
	ExternalEnabled bool      `json:"external_enabled"`
	ExternalID      uint      `json:"external_id"`
	ExternalType    string    `json:"external_type,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
