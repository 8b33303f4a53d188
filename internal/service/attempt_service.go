package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/bi1101/ielts-science-lms-sub003/internal/event"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// AttemptService fabricates the "quiz completed" bookkeeping for attempts
// that never went through the native quiz-taking UI, and keeps those records
// in step with later grading. Its whole purpose is behavioral parity with the
// LMS's own completion flow so progression and reporting stay correct.
type AttemptService interface {
	// FabricateForEssay records one attempt for the essay. Idempotent per
	// (user, quiz, essay): repeated calls return the existing record without
	// side effects.
	FabricateForEssay(ctx context.Context, sub *model.Submission, essay *model.Essay, proQuestion *model.ProQuestion, proQuiz *model.ProQuiz) (*model.QuizAttempt, error)
	// ApplyGrade pushes an essay's grading result into its attempt record and
	// activity rows. A missing attempt is a silent no-op.
	ApplyGrade(ctx context.Context, essay *model.Essay, percent float64) error
}

type attemptService struct {
	cfg         *config.Config
	attemptRepo repository.AttemptRepository
	courseRepo  repository.CourseRepository
	proQuizRepo repository.ProQuizRepository
	statistics  StatisticService
	progress    ProgressService
	bus         *event.Bus
}

func NewAttemptService(
	cfg *config.Config,
	attemptRepo repository.AttemptRepository,
	courseRepo repository.CourseRepository,
	proQuizRepo repository.ProQuizRepository,
	statistics StatisticService,
	progress ProgressService,
	bus *event.Bus,
) AttemptService {
	return &attemptService{
		cfg:         cfg,
		attemptRepo: attemptRepo,
		courseRepo:  courseRepo,
		proQuizRepo: proQuizRepo,
		statistics:  statistics,
		progress:    progress,
		bus:         bus,
	}
}

func (s *attemptService) FabricateForEssay(ctx context.Context, sub *model.Submission, essay *model.Essay, proQuestion *model.ProQuestion, proQuiz *model.ProQuiz) (*model.QuizAttempt, error) {
	quiz, err := s.courseRepo.FindQuizByID(sub.QuizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz %d: %w", sub.QuizID, err)
	}
	if quiz == nil {
		// The quiz post is gone but the submission still references it; fall
		// back to the submission's own step references so the attempt record
		// stays usable.
		quiz = &model.Quiz{
			ID:        sub.QuizID,
			CourseID:  sub.CourseID,
			LessonID:  sub.LessonID,
			TopicID:   sub.TopicID,
			ProQuizID: proQuiz.ID,
		}
	}

	var lessonID, topicID uint
	if sub.CourseID != 0 {
		lessonID, topicID = quiz.LessonID, quiz.TopicID
	}

	var started, completed int64
	if sub.ElapsedTime > 0 {
		now := time.Now().Unix()
		started = now - sub.ElapsedTime
		completed = now
	}

	graded := model.GradedMap{
		proQuestion.ID: {
			EssayID:       essay.ID,
			PointsAwarded: 0,
			Status:        model.GradedStatusNotGraded,
		},
	}

	attempt := model.QuizAttempt{
		UserID:      sub.UserID,
		QuizID:      quiz.ID,
		EssayID:     essay.ID,
		ProQuizID:   proQuiz.ID,
		CourseID:    sub.CourseID,
		LessonID:    lessonID,
		TopicID:     topicID,
		Points:      0,
		TotalPoints: proQuestion.Points,
		Percentage:  0,
		TimeSpent:   sub.ElapsedTime,
		Started:     started,
		Completed:   completed,
		// No score exists yet, so the attempt starts failed unless the quiz
		// has no passing bar at all. Grading updates this later.
		Pass:   proQuiz.PassingPercentage <= 0,
		Graded: datatypes.NewJSONType(graded),
	}

	created, err := s.attemptRepo.InsertIfAbsent(&attempt)
	if err != nil {
		return nil, fmt.Errorf("failed to persist attempt for user %d quiz %d: %w", sub.UserID, quiz.ID, err)
	}
	if !created {
		existing, err := s.attemptRepo.FindByIdentity(sub.UserID, quiz.ID, essay.ID)
		if err != nil {
			return nil, err
		}
		log.Debug().Uint("user_id", sub.UserID).Uint("quiz_id", quiz.ID).Uint("essay_id", essay.ID).Msg("Attempt already recorded, skipping fabrication")
		return existing, nil
	}

	if s.cfg.Statistics.Enabled {
		// Statistics are an optional extra; a failure here skips only this
		// step, never the attempt itself.
		statErr := s.statistics.RecordAttempt(StatisticRequest{
			ProQuizID:     proQuiz.ID,
			ProQuestionID: proQuestion.ID,
			UserID:        sub.UserID,
			Points:        proQuestion.Points,
			ReachedPoints: 0,
			AnswerData:    sub.Content,
			QuestionTime:  sub.ElapsedTime,
		})
		if statErr != nil {
			log.Warn().Err(statErr).Uint("pro_quiz_id", proQuiz.ID).Msg("Failed to persist quiz statistics, continuing")
		}
	}

	// quiz.submitted must fire before quiz.completed, with the progression
	// cascade in between, matching the LMS's own ordering.
	s.bus.Publish(ctx, event.QuizSubmitted, &attempt)

	if err := s.progress.RecordQuizActivity(sub.UserID, quiz, &attempt, model.StatusPendingReview); err != nil {
		log.Warn().Err(err).Uint("quiz_id", quiz.ID).Msg("Failed to record quiz activity")
	}
	if err := s.progress.CompleteParentSteps(sub.UserID, quiz); err != nil {
		log.Warn().Err(err).Uint("quiz_id", quiz.ID).Msg("Failed to complete parent steps")
	}

	s.bus.Publish(ctx, event.QuizCompleted, &attempt)

	return &attempt, nil
}

func (s *attemptService) ApplyGrade(ctx context.Context, essay *model.Essay, percent float64) error {
	attempt, err := s.attemptRepo.FindByIdentity(essay.AuthorID, essay.QuizID, essay.ID)
	if err != nil {
		return fmt.Errorf("failed to load attempt for essay %d: %w", essay.ID, err)
	}
	if attempt == nil {
		log.Warn().Uint("essay_id", essay.ID).Msg("No attempt record for graded essay, skipping attempt update")
		return nil
	}

	gradedStatus := model.GradedStatusNotGraded
	if essay.Status == model.EssayGraded {
		gradedStatus = model.GradedStatusGraded
	}

	graded := attempt.Graded.Data()
	if graded == nil {
		graded = model.GradedMap{}
	}
	graded[essay.ProQuestionID] = model.GradedEntry{
		EssayID:       essay.ID,
		PointsAwarded: essay.PointsAwarded,
		Status:        gradedStatus,
	}
	attempt.Graded = datatypes.NewJSONType(graded)
	attempt.Points = essay.PointsAwarded
	attempt.Percentage = percent

	passing := float64(0)
	if proQuiz, err := s.proQuizRepo.FindQuizByID(attempt.ProQuizID); err != nil {
		log.Warn().Err(err).Uint("pro_quiz_id", attempt.ProQuizID).Msg("Cannot resolve passing percentage, keeping pass flag")
		passing = -1
	} else {
		passing = proQuiz.PassingPercentage
	}
	if passing >= 0 {
		attempt.Pass = percent >= passing
	}

	if err := s.attemptRepo.Update(attempt); err != nil {
		return fmt.Errorf("failed to update attempt %d: %w", attempt.ID, err)
	}

	quiz, err := s.courseRepo.FindQuizByID(attempt.QuizID)
	if err != nil || quiz == nil {
		log.Warn().Err(err).Uint("quiz_id", attempt.QuizID).Msg("Quiz missing, skipping activity update after grade")
		return nil
	}

	status := model.StatusPendingReview
	if essay.Status == model.EssayGraded {
		if attempt.Pass {
			status = model.StatusCompleted
		} else {
			status = model.StatusFailed
		}
	}
	if err := s.progress.RecordQuizActivity(essay.AuthorID, quiz, attempt, status); err != nil {
		log.Warn().Err(err).Uint("quiz_id", quiz.ID).Msg("Failed to update quiz activity after grade")
	}
	if status == model.StatusCompleted {
		if err := s.progress.CompleteParentSteps(essay.AuthorID, quiz); err != nil {
			log.Warn().Err(err).Uint("quiz_id", quiz.ID).Msg("Failed to complete parent steps after grade")
		}
	}
	return nil
}
