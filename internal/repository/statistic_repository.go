package repository

import (
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"gorm.io/gorm"
)

type StatisticRepository interface {
	// CreateRefWithRows persists a statistic ref and its per-question rows in
	// one transaction.
	CreateRefWithRows(ref *model.QuizStatisticRef, rows []model.QuizStatistic) error
}

type statisticRepository struct {
	db *gorm.DB
}

func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{db: db}
}

func (r *statisticRepository) CreateRefWithRows(ref *model.QuizStatisticRef, rows []model.QuizStatistic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ref).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].RefID = ref.ID
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
