package service

import (
	"fmt"
	"time"

	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
)

// StatisticRequest carries everything the quiz-engine statistics layer needs
// as an explicit parameter object, so callers never have to stage ambient
// request state to reuse it.
type StatisticRequest struct {
	ProQuizID     uint
	ProQuestionID uint
	UserID        uint
	Points        uint
	ReachedPoints uint
	AnswerData    string
	QuestionTime  int64
}

// StatisticService persists quiz-engine statistics rows for fabricated
// attempts.
type StatisticService interface {
	RecordAttempt(req StatisticRequest) error
}

type statisticService struct {
	statRepo repository.StatisticRepository
}

func NewStatisticService(statRepo repository.StatisticRepository) StatisticService {
	return &statisticService{statRepo: statRepo}
}

func (s *statisticService) RecordAttempt(req StatisticRequest) error {
	if req.ProQuizID == 0 || req.ProQuestionID == 0 || req.UserID == 0 {
		return fmt.Errorf("statistic request missing quiz/question/user identity")
	}
	ref := model.QuizStatisticRef{
		ProQuizID:  req.ProQuizID,
		UserID:     req.UserID,
		CreateTime: time.Now().Unix(),
	}
	rows := []model.QuizStatistic{{
		ProQuestionID: req.ProQuestionID,
		Points:        req.Points,
		ReachedPoints: req.ReachedPoints,
		AnswerData:    req.AnswerData,
		QuestionTime:  req.QuestionTime,
	}}
	if err := s.statRepo.CreateRefWithRows(&ref, rows); err != nil {
		return fmt.Errorf("failed to persist statistic rows for pro quiz %d: %w", req.ProQuizID, err)
	}
	return nil
}
