package geo

import "math"

// NeedsRescale reports whether a band's maximum sample exceeds the 8-bit
// range, i.e. whether RescaleBand will compress it.
func NeedsRescale(band []float64) bool {
	return maxSample(band) > 255
}

// RescaleBand compresses one band's dynamic range into 8 bits. A band
// whose maximum sample exceeds 255 is scaled as round(sample/upper*255)
// with values above 255 clamped; a band already within 8-bit range passes
// through unscaled. Negative samples are never clamped at zero, they wrap
// during the byte conversion exactly as the historical pipeline's integer
// cast did. lower is accepted for symmetry with the upper bound but does
// not participate in the scaling.
func RescaleBand(band []float64, lower, upper float64) []uint8 {
	out := make([]uint8, len(band))
	if NeedsRescale(band) {
		for i, v := range band {
			scaled := math.RoundToEven(v / upper * 255.0)
			if scaled > 255 {
				scaled = 255
			}
			out[i] = toByte(scaled)
		}
		return out
	}

	for i, v := range band {
		out[i] = toByte(v)
	}
	return out
}

// RescaleBands rescales each band independently, preserving band order.
func RescaleBands(bands [][]float64, lower, upper float64) [][]uint8 {
	out := make([][]uint8, len(bands))
	for i, band := range bands {
		out[i] = RescaleBand(band, lower, upper)
	}
	return out
}

func maxSample(band []float64) float64 {
	max := math.Inf(-1)
	for _, v := range band {
		if v > max {
			max = v
		}
	}
	return max
}

// toByte matches a C-style uint8 cast: truncate toward zero, then wrap
// two's-complement for out-of-range values.
func toByte(v float64) uint8 {
	return uint8(int64(v))
}
