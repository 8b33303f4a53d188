package service

import (
	"fmt"
	"time"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResolveStepStatus collapses duplicate activity rows for one step into a
// single status: the highest-priority status wins. No rows means the step was
// never started.
func ResolveStepStatus(rows []model.Activity) string {
	status := model.StatusNotStarted
	for _, row := range rows {
		if model.StatusPriority(row.Status) > model.StatusPriority(status) {
			status = row.Status
		}
	}
	return status
}

// ProgressService keeps the activity log consistent after quiz attempts so
// course/lesson/topic progression recalculates the way the native LMS flow
// would have left it.
type ProgressService interface {
	// RecordQuizActivity writes the activity row for the quiz step itself.
	RecordQuizActivity(userID uint, quiz *model.Quiz, attempt *model.QuizAttempt, status string) error
	// CompleteParentSteps mirrors the LMS parent-step completion cascade: all
	// parents, the immediate parent only, or the all-quizzes-done course check
	// when the quiz has no lesson/topic parent.
	CompleteParentSteps(userID uint, quiz *model.Quiz) error
}

type progressService struct {
	cfg          *config.Config
	courseRepo   repository.CourseRepository
	activityRepo repository.ActivityRepository
}

func NewProgressService(cfg *config.Config, courseRepo repository.CourseRepository, activityRepo repository.ActivityRepository) ProgressService {
	return &progressService{cfg: cfg, courseRepo: courseRepo, activityRepo: activityRepo}
}

func (s *progressService) RecordQuizActivity(userID uint, quiz *model.Quiz, attempt *model.QuizAttempt, status string) error {
	rows, err := s.activityRepo.FindByUserAndStep(userID, quiz.ID, model.StepQuiz)
	if err != nil {
		return fmt.Errorf("failed to load quiz activity for user %d quiz %d: %w", userID, quiz.ID, err)
	}
	activity := model.Activity{
		UserID:      userID,
		CourseID:    quiz.CourseID,
		StepID:      quiz.ID,
		StepType:    model.StepQuiz,
		Status:      status,
		Percentage:  attempt.Percentage,
		Points:      attempt.Points,
		TotalPoints: attempt.TotalPoints,
		Started:     attempt.Started,
		Completed:   attempt.Completed,
	}
	// Reuse an existing row for the same attempt timestamps instead of piling
	// up duplicates for repeated grade updates.
	for i := range rows {
		if rows[i].Started == attempt.Started {
			activity.ID = rows[i].ID
			activity.CreatedAt = rows[i].CreatedAt
			return s.activityRepo.Update(&activity)
		}
	}
	return s.activityRepo.Create(&activity)
}

func (s *progressService) CompleteParentSteps(userID uint, quiz *model.Quiz) error {
	if quiz.TopicID == 0 && quiz.LessonID == 0 {
		// Global quiz: the course completes once every quiz in it has been
		// taken.
		return s.completeCourseIfAllQuizzesDone(userID, quiz.CourseID)
	}

	if s.cfg.Progress.CompleteAllParents {
		if quiz.TopicID != 0 {
			if err := s.markStepComplete(userID, quiz.CourseID, quiz.TopicID, model.StepTopic); err != nil {
				return err
			}
		}
		if quiz.LessonID != 0 {
			if err := s.markStepComplete(userID, quiz.CourseID, quiz.LessonID, model.StepLesson); err != nil {
				return err
			}
		}
		return s.markStepComplete(userID, quiz.CourseID, quiz.CourseID, model.StepCourse)
	}

	// Immediate parent only.
	if quiz.TopicID != 0 {
		return s.markStepComplete(userID, quiz.CourseID, quiz.TopicID, model.StepTopic)
	}
	return s.markStepComplete(userID, quiz.CourseID, quiz.LessonID, model.StepLesson)
}

func (s *progressService) markStepComplete(userID, courseID, stepID uint, stepType string) error {
	rows, err := s.activityRepo.FindByUserAndStep(userID, stepID, stepType)
	if err != nil {
		return fmt.Errorf("failed to load %s activity for user %d step %d: %w", stepType, userID, stepID, err)
	}
	if ResolveStepStatus(rows) == model.StatusCompleted {
		return nil
	}
	now := time.Now().Unix()
	return s.activityRepo.Create(&model.Activity{
		UserID:    userID,
		CourseID:  courseID,
		StepID:    stepID,
		StepType:  stepType,
		Status:    model.StatusCompleted,
		Completed: now,
	})
}

func (s *progressService) completeCourseIfAllQuizzesDone(userID, courseID uint) error {
	if courseID == 0 {
		return nil
	}
	quizzes, err := s.courseRepo.FindQuizzesByCourse(courseID)
	if err != nil {
		return fmt.Errorf("failed to list quizzes of course %d: %w", courseID, err)
	}
	for _, q := range quizzes {
		rows, err := s.activityRepo.FindByUserAndStep(userID, q.ID, model.StepQuiz)
		if err != nil {
			return err
		}
		switch ResolveStepStatus(rows) {
		case model.StatusCompleted, model.StatusPendingReview, model.StatusFailed:
			// Taken; keeps the course eligible.
		default:
			log.Debug().Uint("user_id", userID).Uint("quiz_id", q.ID).Msg("Course not complete yet, quiz untaken")
			return nil
		}
	}
	return s.markStepComplete(userID, courseID, courseID, model.StepCourse)
}
