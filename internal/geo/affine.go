package geo

import "math"

// Affine is a 6-parameter transform in rasterio parameter order:
// x' = A*x + B*y + C, y' = D*x + E*y + F.
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// AffineFromGDAL builds an Affine from a GDAL geotransform.
func AffineFromGDAL(gt [6]float64) Affine {
	return Affine{
		A: gt[1],
		B: gt[2],
		C: gt[0],
		D: gt[4],
		E: gt[5],
		F: gt[3],
	}
}

// GDAL returns the transform in GDAL geotransform order.
func (a Affine) GDAL() [6]float64 {
	return [6]float64{a.C, a.A, a.B, a.F, a.D, a.E}
}

// Apply maps (x, y) through the transform.
func (a Affine) Apply(x, y float64) (float64, float64) {
	return x*a.A + y*a.B + a.C, x*a.D + y*a.E + a.F
}

// Invert returns the inverse transform.
func (a Affine) Invert() Affine {
	inv := 1 / (a.A*a.E - a.B*a.D)

	ia := a.E * inv
	ib := -a.B * inv
	id := -a.D * inv
	ie := a.A * inv

	return Affine{
		A: ia,
		B: ib,
		C: -a.C*ia - a.F*ib,
		D: id,
		E: ie,
		F: -a.C*id - a.F*ie,
	}
}

// Resolution returns the absolute x and y pixel sizes.
func (a Affine) Resolution() (float64, float64) {
	return math.Abs(a.A), math.Abs(a.E)
}
