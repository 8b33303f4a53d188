package dto

// SubmissionCreateRequest is posted by the external platform when a student
// starts or finishes a writing/speaking task.
type SubmissionCreateRequest struct {
	UserID      uint     `json:"user_id" binding:"required"`
	Kind        string   `json:"kind" binding:"required,oneof=writing-task writing-test speaking-part"`
	Status      string   `json:"status" binding:"required,oneof=draft completed graded not_graded"`
	BandScore   *float64 `json:"band_score"`
	ElapsedTime int64    `json:"elapsed_time"`
	CourseID    uint     `json:"course_id"`
	QuizID      uint     `json:"quiz_id"`
	LessonID    uint     `json:"lesson_id"`
	TopicID     uint     `json:"topic_id"`
	QuestionID  uint     `json:"question_id"`
	EssayRefID  uint     `json:"essay_ref_id"`
	Content     string   `json:"content"`
}

// SubmissionUpdateRequest carries a status transition, typically grading.
type SubmissionUpdateRequest struct {
	Status    string   `json:"status" binding:"required,oneof=draft completed graded not_graded"`
	BandScore *float64 `json:"band_score"`
	Content   *string  `json:"content"`
}

// QuestionAnswerRequest is one answer option in generic REST shape.
type QuestionAnswerRequest struct {
	Answer  string `json:"answer" binding:"required"`
	Correct bool   `json:"correct"`
	Points  uint   `json:"points"`
}

// QuestionCreateRequest creates an LMS question and its quiz-engine row in
// one call. Generic field names are mapped onto the engine's internal ones.
type QuestionCreateRequest struct {
	QuizID       uint                    `json:"quiz_id" binding:"required"`
	Title        string                  `json:"title" binding:"required"`
	QuestionType string                  `json:"question_type" binding:"required"`
	PointsTotal  uint                    `json:"points_total"`
	Answers      []QuestionAnswerRequest `json:"answers"`

	ExternalEnabled bool   `json:"external_enabled"`
	ExternalID      uint   `json:"external_id"`
	ExternalType    string `json:"external_type"`
}

// QuestionUpdateRequest updates a question. Nil fields are left untouched;
// the external linkage fields are persisted even when the generic payload
// carries nothing else.
type QuestionUpdateRequest struct {
	Title        *string                 `json:"title"`
	QuestionType *string                 `json:"question_type"`
	PointsTotal  *uint                   `json:"points_total"`
	Answers      []QuestionAnswerRequest `json:"answers"`

	ExternalEnabled *bool   `json:"external_enabled"`
	ExternalID      *uint   `json:"external_id"`
	ExternalType    *string `json:"external_type"`
}
