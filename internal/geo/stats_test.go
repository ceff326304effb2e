package geo

import (
	"math"
	"testing"
)

const statsEps = 1e-9

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		nodata  float64
		want    BandStats
	}{
		{
			name:    "simple band",
			samples: []float64{1, 2, 3, 4, 5},
			nodata:  -9999,
			want:    BandStats{Min: 1, Max: 5, Mean: 3, StdDev: math.Sqrt(2), Valid: 5},
		},
		{
			name:    "nodata filtered",
			samples: []float64{0, -9999, 10, -9999, 20},
			nodata:  -9999,
			want:    BandStats{Min: 0, Max: 20, Mean: 10, StdDev: math.Sqrt(200.0 / 3.0), Valid: 3},
		},
		{
			name:    "nan samples skipped",
			samples: []float64{1, math.NaN(), 3},
			nodata:  -9999,
			want:    BandStats{Min: 1, Max: 3, Mean: 2, StdDev: 1, Valid: 2},
		},
		{
			name:    "nan nodata keeps everything",
			samples: []float64{-9999, 1},
			nodata:  math.NaN(),
			want:    BandStats{Min: -9999, Max: 1, Mean: -4999, StdDev: 5000, Valid: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stats(tt.samples, tt.nodata)
			if got.Valid != tt.want.Valid {
				t.Fatalf("expected %d valid samples, got %d", tt.want.Valid, got.Valid)
			}
			if math.Abs(got.Min-tt.want.Min) > statsEps ||
				math.Abs(got.Max-tt.want.Max) > statsEps ||
				math.Abs(got.Mean-tt.want.Mean) > statsEps ||
				math.Abs(got.StdDev-tt.want.StdDev) > statsEps {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestStatsAllInvalid(t *testing.T) {
	got := Stats([]float64{-9999, -9999, math.NaN()}, -9999)
	if got != (BandStats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		p       float64
		want    float64
	}{
		{name: "median of four", samples: []float64{10, 20, 30, 40}, p: 50, want: 20},
		{name: "median of five unsorted", samples: []float64{5, 1, 4, 2, 3}, p: 50, want: 3},
		{name: "90th of ten", samples: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, p: 90, want: 9},
		{name: "low percentile clamps to first", samples: []float64{7, 8, 9}, p: 1, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Percentile(tt.samples, -9999, tt.p)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPercentileErrors(t *testing.T) {
	if _, err := Percentile([]float64{1, 2, 3}, -9999, 0); err == nil {
		t.Fatal("expected an error for percentile 0")
	}
	if _, err := Percentile([]float64{1, 2, 3}, -9999, 100); err == nil {
		t.Fatal("expected an error for percentile 100")
	}
	if _, err := Percentile([]float64{-9999}, -9999, 50); err == nil {
		t.Fatal("expected an error for no valid values")
	}
}
