package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
)

func TestResolveStepStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     string
	}{
		{name: "no rows", statuses: nil, want: model.StatusNotStarted},
		{name: "single row", statuses: []string{model.StatusInProgress}, want: model.StatusInProgress},
		{name: "completed beats not-started", statuses: []string{model.StatusNotStarted, model.StatusCompleted}, want: model.StatusCompleted},
		{name: "pending-review beats failed", statuses: []string{model.StatusFailed, model.StatusPendingReview}, want: model.StatusPendingReview},
		{name: "order independent", statuses: []string{model.StatusCompleted, model.StatusNotStarted}, want: model.StatusCompleted},
		{name: "unknown ranks lowest", statuses: []string{"garbage", model.StatusNotStarted}, want: model.StatusNotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]model.Activity, len(tt.statuses))
			for i, s := range tt.statuses {
				rows[i] = model.Activity{Status: s}
			}
			if got := ResolveStepStatus(rows); got != tt.want {
				t.Errorf("ResolveStepStatus(%v) = %q, want %q", tt.statuses, got, tt.want)
			}
		})
	}
}

func seedCourseTree(t *testing.T, env *syncEnv) {
	t.Helper()
	fixtures := []any{
		&model.Course{ID: 1, Title: "Course", AuthorID: 100},
		&model.Lesson{ID: 2, CourseID: 1, Title: "Lesson"},
		&model.Topic{ID: 3, LessonID: 2, Title: "Topic"},
		&model.Quiz{ID: 10, CourseID: 1, LessonID: 2, TopicID: 3, Title: "Topic quiz"},
	}
	for _, f := range fixtures {
		require.NoError(t, env.db.Create(f).Error)
	}
}

func resolvedStatus(t *testing.T, env *syncEnv, userID, stepID uint, stepType string) string {
	t.Helper()
	rows, err := env.activityRepo.FindByUserAndStep(userID, stepID, stepType)
	require.NoError(t, err)
	return ResolveStepStatus(rows)
}

func TestCompleteParentStepsImmediateParentOnly(t *testing.T) {
	env := newSyncEnv(t, &config.Config{})
	seedCourseTree(t, env)

	quiz, err := env.courseRepo.FindQuizByID(10)
	require.NoError(t, err)
	require.NoError(t, env.progress.CompleteParentSteps(7, quiz))

	assert.Equal(t, model.StatusCompleted, resolvedStatus(t, env, 7, 3, model.StepTopic))
	assert.Equal(t, model.StatusNotStarted, resolvedStatus(t, env, 7, 2, model.StepLesson))
	assert.Equal(t, model.StatusNotStarted, resolvedStatus(t, env, 7, 1, model.StepCourse))
}

func TestCompleteParentStepsAllParents(t *testing.T) {
	env := newSyncEnv(t, &config.Config{Progress: config.Progress{CompleteAllParents: true}})
	seedCourseTree(t, env)

	quiz, err := env.courseRepo.FindQuizByID(10)
	require.NoError(t, err)
	require.NoError(t, env.progress.CompleteParentSteps(7, quiz))

	assert.Equal(t, model.StatusCompleted, resolvedStatus(t, env, 7, 3, model.StepTopic))
	assert.Equal(t, model.StatusCompleted, resolvedStatus(t, env, 7, 2, model.StepLesson))
	assert.Equal(t, model.StatusCompleted, resolvedStatus(t, env, 7, 1, model.StepCourse))
}

func TestCompleteParentStepsDoesNotDuplicateCompletedRows(t *testing.T) {
	env := newSyncEnv(t, &config.Config{})
	seedCourseTree(t, env)

	quiz, err := env.courseRepo.FindQuizByID(10)
	require.NoError(t, err)
	require.NoError(t, env.progress.CompleteParentSteps(7, quiz))
	require.NoError(t, env.progress.CompleteParentSteps(7, quiz))

	rows, err := env.activityRepo.FindByUserAndStep(7, 3, model.StepTopic)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGlobalQuizCompletesCourseOnlyWhenAllQuizzesTaken(t *testing.T) {
	env := newSyncEnv(t, &config.Config{})
	require.NoError(t, env.db.Create(&model.Course{ID: 1, Title: "Course", AuthorID: 100}).Error)
	require.NoError(t, env.db.Create(&model.Quiz{ID: 10, CourseID: 1, Title: "Quiz A"}).Error)
	require.NoError(t, env.db.Create(&model.Quiz{ID: 20, CourseID: 1, Title: "Quiz B"}).Error)

	quizA, err := env.courseRepo.FindQuizByID(10)
	require.NoError(t, err)

	// Only quiz A is taken: the course must not complete.
	require.NoError(t, env.activityRepo.Create(&model.Activity{
		UserID: 7, CourseID: 1, StepID: 10, StepType: model.StepQuiz, Status: model.StatusPendingReview,
	}))
	require.NoError(t, env.progress.CompleteParentSteps(7, quizA))
	assert.Equal(t, model.StatusNotStarted, resolvedStatus(t, env, 7, 1, model.StepCourse))

	// Quiz B gets taken too: now the course completes.
	require.NoError(t, env.activityRepo.Create(&model.Activity{
		UserID: 7, CourseID: 1, StepID: 20, StepType: model.StepQuiz, Status: model.StatusCompleted,
	}))
	require.NoError(t, env.progress.CompleteParentSteps(7, quizA))
	assert.Equal(t, model.StatusCompleted, resolvedStatus(t, env, 7, 1, model.StepCourse))
}
