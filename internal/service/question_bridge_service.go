package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/rs/zerolog/log"
)

// answerTypes the quiz engine understands, keyed by the generic REST name.
var answerTypes = map[string]string{
	"single":     "single",
	"multiple":   "multiple",
	"free":       "free_answer",
	"essay":      "essay",
	"cloze":      "cloze_answer",
	"sort":       "sort_answer",
	"matrix":     "matrix_sort_answer",
	"assessment": "assessment_answer",
}

// QuestionBridgeService keeps LMS question posts and their quiz-engine rows
// consistent: creation maps generic REST fields onto the engine's internal
// ones, update persists the external-platform linkage even when the generic
// payload omits it.
type QuestionBridgeService interface {
	CreateQuestion(req dto.QuestionCreateRequest) (*model.Question, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateRequest) (*model.Question, error)
}

type questionBridgeService struct {
	questionRepo repository.QuestionRepository
	proQuizRepo  repository.ProQuizRepository
	courseRepo   repository.CourseRepository
}

func NewQuestionBridgeService(
	questionRepo repository.QuestionRepository,
	proQuizRepo repository.ProQuizRepository,
	courseRepo repository.CourseRepository,
) QuestionBridgeService {
	return &questionBridgeService{
		questionRepo: questionRepo,
		proQuizRepo:  proQuizRepo,
		courseRepo:   courseRepo,
	}
}

// mapAnswerType translates a generic question type into the engine's answer
// type, falling back to single choice.
func mapAnswerType(questionType string) string {
	if t, ok := answerTypes[strings.ToLower(questionType)]; ok {
		return t
	}
	return "single"
}

// normalizeAnswers re-validates incoming answer data the way the engine's
// own validator would: blank answers are dropped, nothing else is trusted
// from the wire.
func normalizeAnswers(answers []dto.QuestionAnswerRequest) ([]dto.QuestionAnswerRequest, error) {
	out := make([]dto.QuestionAnswerRequest, 0, len(answers))
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) == "" {
			continue
		}
		out = append(out, a)
	}
	if len(answers) > 0 && len(out) == 0 {
		return nil, fmt.Errorf("all %d submitted answers were empty", len(answers))
	}
	return out, nil
}

func encodeAnswerData(answers []dto.QuestionAnswerRequest) (string, error) {
	if len(answers) == 0 {
		return "", nil
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("failed to encode answer data: %w", err)
	}
	return string(data), nil
}

func (s *questionBridgeService) CreateQuestion(req dto.QuestionCreateRequest) (*model.Question, error) {
	quiz, err := s.courseRepo.FindQuizByID(req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz %d: %w", req.QuizID, err)
	}
	if quiz == nil {
		return nil, fmt.Errorf("quiz %d does not exist", req.QuizID)
	}
	proQuiz, err := s.proQuizRepo.FindQuizByQuizPostID(quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("quiz %d has no quiz-engine row: %w", quiz.ID, err)
	}

	answers, err := normalizeAnswers(req.Answers)
	if err != nil {
		return nil, err
	}
	answerData, err := encodeAnswerData(answers)
	if err != nil {
		return nil, err
	}

	points := req.PointsTotal
	if points == 0 {
		points = 1
	}

	proQuestion := &model.ProQuestion{
		ProQuizID:  proQuiz.ID,
		Title:      req.Title,
		AnswerType: mapAnswerType(req.QuestionType),
		Points:     points,
		AnswerData: answerData,
	}
	if err := s.proQuizRepo.CreateQuestion(proQuestion); err != nil {
		log.Error().Err(err).Uint("quiz_id", quiz.ID).Msg("Failed to create quiz-engine question")
		return nil, fmt.Errorf("failed to create quiz-engine question: %w", err)
	}

	question := &model.Question{
		QuizID:          quiz.ID,
		Title:           req.Title,
		QuestionType:    req.QuestionType,
		Points:          points,
		ProQuestionID:   proQuestion.ID,
		ExternalEnabled: req.ExternalEnabled,
		ExternalID:      req.ExternalID,
		ExternalType:    req.ExternalType,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question post: %w", err)
	}

	// Re-save the engine row with the final post fields so the two sides
	// cannot drift apart when defaults were applied above.
	proQuestion.Title = question.Title
	proQuestion.Points = question.Points
	if err := s.proQuizRepo.SaveQuestion(proQuestion); err != nil {
		log.Error().Err(err).Uint("pro_question_id", proQuestion.ID).Msg("Failed to re-save quiz-engine question")
	}

	return question, nil
}

func (s *questionBridgeService) UpdateQuestion(id uint, req dto.QuestionUpdateRequest) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question %d not found: %w", id, err)
	}

	if req.Title != nil {
		question.Title = *req.Title
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.PointsTotal != nil {
		question.Points = *req.PointsTotal
	}

	// External linkage fields are written whenever present, independently of
	// the generic fields: the dispatch path for generic updates does not
	// guarantee it will come back for them.
	if req.ExternalEnabled != nil {
		question.ExternalEnabled = *req.ExternalEnabled
	}
	if req.ExternalID != nil {
		question.ExternalID = *req.ExternalID
	}
	if req.ExternalType != nil {
		question.ExternalType = *req.ExternalType
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question %d: %w", id, err)
	}

	if question.ProQuestionID != 0 {
		proQuestion, err := s.proQuizRepo.FindQuestionByID(question.ProQuestionID)
		if err != nil {
			log.Warn().Err(err).Uint("pro_question_id", question.ProQuestionID).Msg("Quiz-engine question missing, post updated alone")
			return question, nil
		}
		proQuestion.Title = question.Title
		proQuestion.Points = question.Points
		if req.QuestionType != nil {
			proQuestion.AnswerType = mapAnswerType(*req.QuestionType)
		}
		if len(req.Answers) > 0 {
			answers, err := normalizeAnswers(req.Answers)
			if err != nil {
				return nil, err
			}
			answerData, err := encodeAnswerData(answers)
			if err != nil {
				return nil, err
			}
			proQuestion.AnswerData = answerData
		}
		if err := s.proQuizRepo.SaveQuestion(proQuestion); err != nil {
			log.Error().Err(err).Uint("pro_question_id", proQuestion.ID).Msg("Failed to sync quiz-engine question")
		}
	}

	return question, nil
}
