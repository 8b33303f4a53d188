package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
)

func TestSyncSubmissionSkipsNonSyncableStatus(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	sub.Status = model.SubmissionDraft
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	var count int64
	env.db.Model(&model.Essay{}).Count(&count)
	assert.Zero(t, count, "draft submission must not create an essay")
}

func TestSyncSubmissionSkipsMissingReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *model.Submission)
	}{
		{name: "no user", mutate: func(s *model.Submission) { s.UserID = 0 }},
		{name: "no quiz", mutate: func(s *model.Submission) { s.QuizID = 0 }},
		{name: "no question", mutate: func(s *model.Submission) { s.QuestionID = 0 }},
		{name: "unknown question", mutate: func(s *model.Submission) { s.QuestionID = 999 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newSyncEnv(t, nil)
			seedEssayQuiz(t, env.db)

			sub := writingTaskSubmission()
			tt.mutate(sub)
			require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

			var essays, attempts int64
			env.db.Model(&model.Essay{}).Count(&essays)
			env.db.Model(&model.QuizAttempt{}).Count(&attempts)
			assert.Zero(t, essays)
			assert.Zero(t, attempts)
		})
	}
}

func TestSyncSubmissionSkipsNonEssayQuestion(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	require.NoError(t, env.db.Model(&model.Question{}).Where("id = ?", 20).Update("question_type", "single").Error)

	require.NoError(t, env.sync.SyncSubmission(context.Background(), writingTaskSubmission()))

	var count int64
	env.db.Model(&model.Essay{}).Count(&count)
	assert.Zero(t, count, "non-essay question must not synchronize")
}

func TestSyncSubmissionEndToEnd(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	essay, err := env.essayRepo.FindBySubmission(42, model.KindWritingTask)
	require.NoError(t, err)
	require.NotNil(t, essay, "essay must be created for the submission")
	assert.Equal(t, uint(42), essay.SubmissionID)
	assert.Equal(t, model.KindWritingTask, essay.QuestionType)
	assert.Equal(t, uint(7), essay.AuthorID, "essay author must be the submitting student")
	assert.Equal(t, model.EssayNotGraded, essay.Status)

	attempts, err := env.attemptRepo.FindAllByUserAndQuiz(7, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1, "exactly one attempt record must be appended")
	attempt := attempts[0]
	assert.Equal(t, uint(10), attempt.QuizID)
	assert.Equal(t, uint(11), attempt.ProQuizID)
	assert.Equal(t, uint(9), attempt.TotalPoints)
	assert.False(t, attempt.Pass, "attempt starts failed until grading provides a score")
	assert.NotZero(t, attempt.Started)
	assert.NotZero(t, attempt.Completed)
	assert.Equal(t, attempt.Completed-attempt.Started, int64(1800))

	graded := attempt.Graded.Data()
	require.Contains(t, graded, uint(33))
	assert.Equal(t, essay.ID, graded[33].EssayID)
	assert.Equal(t, uint(0), graded[33].PointsAwarded)
	assert.Equal(t, model.GradedStatusNotGraded, graded[33].Status)
}

func TestSyncSubmissionUnknownTimestampsStayZero(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	sub.ElapsedTime = 0
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	attempts, err := env.attemptRepo.FindAllByUserAndQuiz(7, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Zero(t, attempts[0].Started, "unknown start stays 0, not epoch")
	assert.Zero(t, attempts[0].Completed)
}

func TestSyncSubmissionIsIdempotent(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	var essays, attempts int64
	env.db.Model(&model.Essay{}).Count(&essays)
	env.db.Model(&model.QuizAttempt{}).Count(&attempts)
	assert.Equal(t, int64(1), essays, "duplicate sync must not create a second essay")
	assert.Equal(t, int64(1), attempts, "duplicate sync must not append a second attempt")
}

func TestGradeSubmissionWithoutEssayIsNoOp(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	band := 6.5
	sub.Status = model.SubmissionGraded
	sub.BandScore = &band
	require.NoError(t, env.sync.GradeSubmission(context.Background(), sub))

	var count int64
	env.db.Model(&model.Essay{}).Count(&count)
	assert.Zero(t, count, "grading must never create an essay")
}

func TestGradeSubmissionUpdatesEssayAndAttempt(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	band := 6.5
	sub.Status = model.SubmissionGraded
	sub.BandScore = &band
	require.NoError(t, env.sync.GradeSubmission(context.Background(), sub))

	essay, err := env.essayRepo.FindBySubmission(42, model.KindWritingTask)
	require.NoError(t, err)
	require.NotNil(t, essay)
	assert.Equal(t, model.EssayGraded, essay.Status)
	assert.Equal(t, 72.22, essay.Percentage)
	assert.Equal(t, uint(6), essay.PointsAwarded) // 72.22% of 9 points

	attempt, err := env.attemptRepo.FindByIdentity(7, 10, essay.ID)
	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, 72.22, attempt.Percentage)
	assert.Equal(t, uint(6), attempt.Points)
	assert.False(t, attempt.Pass, "72.22 is below the 80 passing bar")

	graded := attempt.Graded.Data()
	require.Contains(t, graded, uint(33))
	assert.Equal(t, model.GradedStatusGraded, graded[33].Status)
	assert.Equal(t, uint(6), graded[33].PointsAwarded)

	rows, err := env.activityRepo.FindByUserAndStep(7, 10, model.StepQuiz)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, ResolveStepStatus(rows))
}

func TestGradeSubmissionPassingBand(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	band := 8.0
	sub.Status = model.SubmissionGraded
	sub.BandScore = &band
	require.NoError(t, env.sync.GradeSubmission(context.Background(), sub))

	essay, err := env.essayRepo.FindBySubmission(42, model.KindWritingTask)
	require.NoError(t, err)
	attempt, err := env.attemptRepo.FindByIdentity(7, 10, essay.ID)
	require.NoError(t, err)
	assert.Equal(t, 88.89, attempt.Percentage)
	assert.True(t, attempt.Pass)

	rows, err := env.activityRepo.FindByUserAndStep(7, 10, model.StepQuiz)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, ResolveStepStatus(rows))
}

func TestSpeakingPartSubmissionSyncs(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	sub := writingTaskSubmission()
	sub.Kind = model.KindSpeakingPart
	require.NoError(t, env.sync.SyncSubmission(context.Background(), sub))

	essay, err := env.essayRepo.FindBySubmission(42, model.KindSpeakingPart)
	require.NoError(t, err)
	require.NotNil(t, essay)
	assert.Equal(t, model.KindSpeakingPart, essay.QuestionType)
}

func TestSameSubmissionIDDifferentKindsKeepSeparateEssays(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)

	writing := writingTaskSubmission()
	require.NoError(t, env.sync.SyncSubmission(context.Background(), writing))

	speaking := writingTaskSubmission()
	speaking.Kind = model.KindSpeakingPart
	require.NoError(t, env.sync.SyncSubmission(context.Background(), speaking))

	var essays int64
	env.db.Model(&model.Essay{}).Count(&essays)
	assert.Equal(t, int64(2), essays, "one essay per (submission, kind) pair")
}

func TestStatisticsPersistedWhenEnabled(t *testing.T) {
	env := newSyncEnv(t, nil)
	env.cfg.Statistics.Enabled = true
	seedEssayQuiz(t, env.db)

	require.NoError(t, env.sync.SyncSubmission(context.Background(), writingTaskSubmission()))

	var refs, rows int64
	env.db.Model(&model.QuizStatisticRef{}).Count(&refs)
	env.db.Model(&model.QuizStatistic{}).Count(&rows)
	assert.Equal(t, int64(1), refs)
	assert.Equal(t, int64(1), rows)
}
