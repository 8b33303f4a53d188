package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
)

func TestMapAnswerType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"essay", "essay"},
		{"Essay", "essay"},
		{"free", "free_answer"},
		{"cloze", "cloze_answer"},
		{"matrix", "matrix_sort_answer"},
		{"single", "single"},
		{"something-new", "single"},
		{"", "single"},
	}
	for _, tt := range tests {
		if got := mapAnswerType(tt.in); got != tt.want {
			t.Errorf("mapAnswerType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeAnswers(t *testing.T) {
	out, err := normalizeAnswers([]dto.QuestionAnswerRequest{
		{Answer: "Paris", Correct: true, Points: 1},
		{Answer: "   "},
		{Answer: "London"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Paris", out[0].Answer)
	assert.Equal(t, "London", out[1].Answer)

	_, err = normalizeAnswers([]dto.QuestionAnswerRequest{{Answer: ""}, {Answer: "  "}})
	assert.Error(t, err)

	out, err = normalizeAnswers(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreateQuestionBridgesEngineRow(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	bridge := NewQuestionBridgeService(env.questionRepo, env.proQuizRepo, env.courseRepo)

	question, err := bridge.CreateQuestion(dto.QuestionCreateRequest{
		QuizID:          10,
		Title:           "Describe the chart",
		QuestionType:    "essay",
		PointsTotal:     9,
		ExternalEnabled: true,
		ExternalID:      77,
		ExternalType:    "writing-task",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), question.QuizID)
	assert.Equal(t, uint(9), question.Points)
	assert.True(t, question.ExternalEnabled)
	assert.Equal(t, uint(77), question.ExternalID)
	require.NotZero(t, question.ProQuestionID)

	proQuestion, err := env.proQuizRepo.FindQuestionByID(question.ProQuestionID)
	require.NoError(t, err)
	assert.Equal(t, uint(11), proQuestion.ProQuizID)
	assert.Equal(t, "essay", proQuestion.AnswerType)
	assert.Equal(t, "Describe the chart", proQuestion.Title)
	assert.Equal(t, uint(9), proQuestion.Points)
}

func TestCreateQuestionDefaultsAndAnswers(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	bridge := NewQuestionBridgeService(env.questionRepo, env.proQuizRepo, env.courseRepo)

	question, err := bridge.CreateQuestion(dto.QuestionCreateRequest{
		QuizID:       10,
		Title:        "Pick one",
		QuestionType: "single",
		Answers: []dto.QuestionAnswerRequest{
			{Answer: "A", Correct: true, Points: 1},
			{Answer: ""},
			{Answer: "B"},
		},
	})
	require.NoError(t, err)
	// Zero points defaults to one, matching the engine's own default.
	assert.Equal(t, uint(1), question.Points)

	proQuestion, err := env.proQuizRepo.FindQuestionByID(question.ProQuestionID)
	require.NoError(t, err)
	assert.Contains(t, proQuestion.AnswerData, "\"A\"")
	assert.Contains(t, proQuestion.AnswerData, "\"B\"")
	assert.NotContains(t, proQuestion.AnswerData, "\"answer\":\"\"")
}

func TestCreateQuestionUnknownQuiz(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	bridge := NewQuestionBridgeService(env.questionRepo, env.proQuizRepo, env.courseRepo)

	_, err := bridge.CreateQuestion(dto.QuestionCreateRequest{
		QuizID:       999,
		Title:        "Orphan",
		QuestionType: "essay",
	})
	assert.Error(t, err)
}

func TestUpdateQuestionSyncsEngineRow(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	bridge := NewQuestionBridgeService(env.questionRepo, env.proQuizRepo, env.courseRepo)

	title := "Opinion essay, revised"
	points := uint(12)
	question, err := bridge.UpdateQuestion(20, dto.QuestionUpdateRequest{
		Title:       &title,
		PointsTotal: &points,
	})
	require.NoError(t, err)
	assert.Equal(t, title, question.Title)
	assert.Equal(t, points, question.Points)

	proQuestion, err := env.proQuizRepo.FindQuestionByID(33)
	require.NoError(t, err)
	assert.Equal(t, title, proQuestion.Title)
	assert.Equal(t, points, proQuestion.Points)
	// Answer type is untouched when the payload omits question_type.
	assert.Equal(t, "essay", proQuestion.AnswerType)
}

func TestUpdateQuestionExternalFieldsAlone(t *testing.T) {
	env := newSyncEnv(t, nil)
	seedEssayQuiz(t, env.db)
	bridge := NewQuestionBridgeService(env.questionRepo, env.proQuizRepo, env.courseRepo)

	enabled := true
	externalID := uint(77)
	externalType := "writing-task"
	question, err := bridge.UpdateQuestion(20, dto.QuestionUpdateRequest{
		ExternalEnabled: &enabled,
		ExternalID:      &externalID,
		ExternalType:    &externalType,
	})
	require.NoError(t, err)
	assert.True(t, question.ExternalEnabled)
	assert.Equal(t, uint(77), question.ExternalID)
	assert.Equal(t, "writing-task", question.ExternalType)

	// The generic fields survive the linkage-only update.
	stored, err := env.questionRepo.FindByID(20)
	require.NoError(t, err)
	assert.Equal(t, "Opinion essay", stored.Title)
	assert.Equal(t, uint(9), stored.Points)
	assert.True(t, stored.ExternalEnabled)
}
