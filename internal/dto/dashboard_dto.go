package dto

// AttemptSummary annotates a quiz step with one recorded attempt.
type AttemptSummary struct {
	Percentage  float64 `json:"percentage"`
	Points      uint    `json:"points"`
	TotalPoints uint    `json:"total_points"`
	Pass        bool    `json:"pass"`
	Started     int64   `json:"started"`
	Completed   int64   `json:"completed"`
}

// DashboardStep is one course step in a user's progress view. Attempts is
// only populated for quiz steps.
type DashboardStep struct {
	StepID   uint             `json:"step_id"`
	StepType string           `json:"step_type"`
	Title    string           `json:"title"`
	Status   string           `json:"status"`
	Attempts []AttemptSummary `json:"attempts,omitempty"`
}

type DashboardUser struct {
	UserID   uint            `json:"user_id"`
	UserName string          `json:"user_name"`
	Steps    []DashboardStep `json:"steps"`
}

type DashboardCourse struct {
	CourseID    uint            `json:"course_id"`
	CourseTitle string          `json:"course_title"`
	Users       []DashboardUser `json:"users"`
}

// DashboardResponse is the teacher-dashboard quiz-attempts report.
type DashboardResponse struct {
	Courses []DashboardCourse `json:"courses"`
}
