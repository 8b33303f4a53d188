package service

import "testing"

func TestBandToPercent(t *testing.T) {
	svc := NewBandScoreService()

	tests := []struct {
		name string
		band float64
		want float64
	}{
		{name: "band 6.5", band: 6.5, want: 72.22},
		{name: "band 9", band: 9, want: 100.0},
		{name: "band 0", band: 0, want: 0.0},
		{name: "negative band clamps", band: -1, want: 0.0},
		{name: "band above scale clamps", band: 10, want: 100.0},
		{name: "band 4.5", band: 4.5, want: 50.0},
		{name: "band 7", band: 7, want: 77.78},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.BandToPercent(tt.band); got != tt.want {
				t.Errorf("BandToPercent(%v) = %v, want %v", tt.band, got, tt.want)
			}
		})
	}
}

func TestPointsFromPercent(t *testing.T) {
	svc := NewBandScoreService()

	tests := []struct {
		name    string
		percent float64
		total   uint
		want    uint
	}{
		{name: "full marks", percent: 100, total: 5, want: 5},
		{name: "zero percent", percent: 0, total: 5, want: 0},
		{name: "rounds to nearest", percent: 72.22, total: 5, want: 4},
		{name: "zero total", percent: 100, total: 0, want: 0},
		{name: "over 100 clamps", percent: 150, total: 4, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.PointsFromPercent(tt.percent, tt.total); got != tt.want {
				t.Errorf("PointsFromPercent(%v, %d) = %d, want %d", tt.percent, tt.total, got, tt.want)
			}
		})
	}
}
