package service

import (
	"context"
	"fmt"

	"github.com/bi1101/ielts-science-lms-sub003/internal/event"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/rs/zerolog/log"
)

// EssaySyncService translates external-submission lifecycle transitions into
// LMS essay mutations. The policy throughout is fail closed and silent: a
// submission that cannot be synchronized is skipped without surfacing an
// error to the external caller, whose own write has already succeeded.
type EssaySyncService interface {
	// Register attaches the service to the submission lifecycle topics.
	Register(bus *event.Bus)
	// SyncSubmission materializes the essay (and fabricated attempt) for a
	// submission that has reached a syncable status. Idempotent per
	// (submission, kind).
	SyncSubmission(ctx context.Context, sub *model.Submission) error
	// GradeSubmission pushes a grading transition into the linked essay and
	// attempt. It never creates an essay: no link, no-op.
	GradeSubmission(ctx context.Context, sub *model.Submission) error
}

type essaySyncService struct {
	essayRepo    repository.EssayRepository
	questionRepo repository.QuestionRepository
	proQuizRepo  repository.ProQuizRepository
	attempts     AttemptService
	bandScore    BandScoreService
}

func NewEssaySyncService(
	essayRepo repository.EssayRepository,
	questionRepo repository.QuestionRepository,
	proQuizRepo repository.ProQuizRepository,
	attempts AttemptService,
	bandScore BandScoreService,
) EssaySyncService {
	return &essaySyncService{
		essayRepo:    essayRepo,
		questionRepo: questionRepo,
		proQuizRepo:  proQuizRepo,
		attempts:     attempts,
		bandScore:    bandScore,
	}
}

func (s *essaySyncService) Register(bus *event.Bus) {
	bus.Subscribe(event.SubmissionCreated, func(ctx context.Context, ev event.Event) error {
		sub, ok := ev.Payload.(*model.Submission)
		if !ok {
			return fmt.Errorf("unexpected payload %T on %s", ev.Payload, ev.Topic)
		}
		return s.SyncSubmission(ctx, sub)
	})
	bus.Subscribe(event.SubmissionUpdated, func(ctx context.Context, ev event.Event) error {
		sub, ok := ev.Payload.(*model.Submission)
		if !ok {
			return fmt.Errorf("unexpected payload %T on %s", ev.Payload, ev.Topic)
		}
		if err := s.SyncSubmission(ctx, sub); err != nil {
			return err
		}
		if sub.Status == model.SubmissionGraded || sub.Status == model.SubmissionNotGraded {
			return s.GradeSubmission(ctx, sub)
		}
		return nil
	})
}

// resolveEssayLinkage walks submission → question → pro question → pro quiz.
// Any broken link returns all nils: the submission is simply not an essay
// synchronization candidate.
func (s *essaySyncService) resolveEssayLinkage(sub *model.Submission) (*model.Question, *model.ProQuestion, *model.ProQuiz) {
	question, err := s.questionRepo.FindByID(sub.QuestionID)
	if err != nil {
		log.Debug().Err(err).Uint("question_id", sub.QuestionID).Msg("Submission question not found, skipping sync")
		return nil, nil, nil
	}
	if question.QuestionType != model.QuestionTypeEssay {
		log.Debug().Uint("question_id", question.ID).Str("type", question.QuestionType).Msg("Question is not essay-type, skipping sync")
		return nil, nil, nil
	}
	proQuestion, err := s.proQuizRepo.FindQuestionByID(question.ProQuestionID)
	if err != nil {
		log.Debug().Err(err).Uint("pro_question_id", question.ProQuestionID).Msg("Pro question not found, skipping sync")
		return nil, nil, nil
	}
	proQuiz, err := s.proQuizRepo.FindQuizByID(proQuestion.ProQuizID)
	if err != nil {
		log.Debug().Err(err).Uint("pro_quiz_id", proQuestion.ProQuizID).Msg("Pro quiz not found, skipping sync")
		return nil, nil, nil
	}
	return question, proQuestion, proQuiz
}

func (s *essaySyncService) SyncSubmission(ctx context.Context, sub *model.Submission) error {
	if !sub.Syncable() {
		return nil
	}
	if sub.UserID == 0 || sub.QuizID == 0 || sub.QuestionID == 0 {
		log.Debug().Uint("submission_id", sub.ID).Msg("Submission missing user/quiz/question reference, skipping sync")
		return nil
	}
	question, proQuestion, proQuiz := s.resolveEssayLinkage(sub)
	if question == nil {
		return nil
	}

	// AuthorID is the student, passed explicitly rather than taken from any
	// ambient request identity.
	essay := &model.Essay{
		SubmissionID:  sub.ID,
		QuestionType:  sub.Kind,
		AuthorID:      sub.UserID,
		QuizID:        sub.QuizID,
		QuestionID:    question.ID,
		ProQuestionID: proQuestion.ID,
		CourseID:      sub.CourseID,
		Status:        model.EssayNotGraded,
		Content:       sub.Content,
	}
	essay, created, err := s.essayRepo.UpsertForSubmission(essay)
	if err != nil {
		return fmt.Errorf("failed to upsert essay for submission %d: %w", sub.ID, err)
	}
	if created {
		log.Info().Uint("submission_id", sub.ID).Uint("essay_id", essay.ID).Str("kind", sub.Kind).Msg("Essay created for submission")
	}

	if _, err := s.attempts.FabricateForEssay(ctx, sub, essay, proQuestion, proQuiz); err != nil {
		return fmt.Errorf("failed to fabricate attempt for submission %d: %w", sub.ID, err)
	}
	return nil
}

func (s *essaySyncService) GradeSubmission(ctx context.Context, sub *model.Submission) error {
	essay, err := s.essayRepo.FindBySubmission(sub.ID, sub.Kind)
	if err != nil {
		return fmt.Errorf("failed to look up essay for submission %d: %w", sub.ID, err)
	}
	if essay == nil {
		log.Debug().Uint("submission_id", sub.ID).Str("kind", sub.Kind).Msg("No linked essay, skipping grade update")
		return nil
	}

	percent := 0.0
	if sub.BandScore != nil {
		percent = s.bandScore.BandToPercent(*sub.BandScore)
	} else {
		log.Warn().Uint("submission_id", sub.ID).Msg("Graded submission carries no band score, writing zero")
	}

	totalPoints := uint(0)
	if proQuestion, err := s.proQuizRepo.FindQuestionByID(essay.ProQuestionID); err != nil {
		log.Warn().Err(err).Uint("pro_question_id", essay.ProQuestionID).Msg("Pro question missing, awarding zero points")
	} else {
		totalPoints = proQuestion.Points
	}

	essay.Percentage = percent
	essay.PointsAwarded = s.bandScore.PointsFromPercent(percent, totalPoints)
	if sub.Status == model.SubmissionGraded {
		essay.Status = model.EssayGraded
	} else {
		essay.Status = model.EssayNotGraded
	}
	if err := s.essayRepo.Update(essay); err != nil {
		return fmt.Errorf("failed to update essay %d: %w", essay.ID, err)
	}

	return s.attempts.ApplyGrade(ctx, essay, percent)
}
