package service

import (
	"math"
)

// MaxBandScore is the top of the IELTS band scale.
const MaxBandScore float64 = 9.0

// BandScoreService converts IELTS 0-9 band scores into the percentage scale
// the LMS stores on essays and attempts.
type BandScoreService interface {
	// BandToPercent maps a band score to 0-100, rounded to 2 decimals.
	// Out-of-range input clamps rather than errors: grading data arrives from
	// an external system and a bad value must not block synchronization.
	BandToPercent(band float64) float64
	// PointsFromPercent converts a percentage into awarded points out of the
	// question's total, rounded to the nearest whole point.
	PointsFromPercent(percent float64, totalPoints uint) uint
}

type bandScoreServiceImpl struct{}

func NewBandScoreService() BandScoreService {
	return &bandScoreServiceImpl{}
}

func (s *bandScoreServiceImpl) BandToPercent(band float64) float64 {
	percent := band / MaxBandScore * 100.0
	percent = math.Round(percent*100) / 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func (s *bandScoreServiceImpl) PointsFromPercent(percent float64, totalPoints uint) uint {
	if percent <= 0 || totalPoints == 0 {
		return 0
	}
	if percent > 100 {
		percent = 100
	}
	return uint(math.Round(percent / 100.0 * float64(totalPoints)))
}
