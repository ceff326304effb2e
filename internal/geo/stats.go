package geo

import (
	"fmt"
	"math"
	"sort"
)

// BandStats summarizes one band's valid samples.
type BandStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Valid  int
}

// Stats computes band statistics, ignoring nodata and NaN samples. Pass a
// NaN nodata to disable nodata filtering. All-invalid input yields the
// zero value.
func Stats(samples []float64, nodata float64) BandStats {
	count := 0
	mean := 0.0
	m2 := 0.0
	min := math.Inf(1)
	max := math.Inf(-1)

	checkNoData := !math.IsNaN(nodata)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		if checkNoData && v == nodata {
			continue
		}

		count++
		delta := v - mean
		mean += delta / float64(count)
		delta2 := v - mean
		m2 += delta * delta2

		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if count == 0 {
		return BandStats{}
	}

	return BandStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: math.Sqrt(m2 / float64(count)),
		Valid:  count,
	}
}

// Percentile returns the pth percentile value, ignoring nodata and NaN
// samples. p must be in the range (0, 100).
func Percentile(samples []float64, nodata float64, p float64) (float64, error) {
	if p <= 0 || p >= 100 {
		return 0, fmt.Errorf("invalid percentile %v", p)
	}

	values := make([]float64, 0, len(samples))
	checkNoData := !math.IsNaN(nodata)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		if checkNoData && v == nodata {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return 0, fmt.Errorf("no valid values")
	}

	sort.Float64s(values)
	idx := int(math.Ceil((p/100.0)*float64(len(values)))) - 1
	if idx < 0 {
		return values[0], nil
	}
	if idx >= len(values) {
		return values[len(values)-1], nil
	}
	return values[idx], nil
}
