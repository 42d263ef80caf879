package enorm

import "math"

// rdwarf and rgiant bound the unscaled range: rdwarf**2 must not underflow
// and rgiant**2 must not overflow in double precision. Values from MINPACK.
const (
	rdwarf = 3.834e-20
	rgiant = 1.304e19
)

//Norm Euclidean norm: ||X||_2 = \sqrt {\sum X_i^2}
//The sum of squares is accumulated in three buckets - small, intermediate
//and large magnitudes - with the small and large buckets kept scaled by
//their running maximum, so no intermediate square overflows or underflows
//destructively for any representable input.
func Norm(X []float64) float64 {
	if len(X) == 0 {
		return 0
	}
	var s1, s2, s3, x1max, x3max float64
	agiant := rgiant / float64(len(X))
	for _, x := range X {
		xabs := math.Abs(x)
		switch {
		case xabs > rdwarf && xabs < agiant:
			// intermediate components, squares cannot overflow or underflow
			s2 += xabs * xabs
		case xabs <= rdwarf:
			// small components
			s3, x3max = updateScaledSum(s3, x3max, xabs)
		default:
			// large components
			s1, x1max = updateScaledSum(s1, x1max, xabs)
		}
	}
	switch {
	case s1 != 0:
		return x1max * math.Sqrt(s1+s2/x1max/x1max)
	case s2 != 0:
		// the dominant factor stays outside the sqrt argument
		if s2 >= x3max {
			return math.Sqrt(s2 * (1 + x3max/s2*(x3max*s3)))
		}
		return math.Sqrt(x3max * (s2/x3max + x3max*s3))
	default:
		return x3max * math.Sqrt(s3)
	}
}

//Norm32 single precision variant of Norm, accumulated in double precision
func Norm32(X []float32) float32 {
	if len(X) == 0 {
		return 0
	}
	var s1, s2, s3, x1max, x3max float64
	agiant := rgiant / float64(len(X))
	for _, x := range X {
		xabs := math.Abs(float64(x))
		switch {
		case xabs > rdwarf && xabs < agiant:
			s2 += xabs * xabs
		case xabs <= rdwarf:
			s3, x3max = updateScaledSum(s3, x3max, xabs)
		default:
			s1, x1max = updateScaledSum(s1, x1max, xabs)
		}
	}
	switch {
	case s1 != 0:
		return float32(x1max * math.Sqrt(s1+s2/x1max/x1max))
	case s2 != 0:
		if s2 >= x3max {
			return float32(math.Sqrt(s2 * (1 + x3max/s2*(x3max*s3))))
		}
		return float32(math.Sqrt(x3max * (s2/x3max + x3max*s3)))
	default:
		return float32(x3max * math.Sqrt(s3))
	}
}

//updateScaledSum folds xabs into a sum of squares kept scaled by the largest
//magnitude seen so far. The new-max test must run first: the first nonzero
//term always rescales, so the accumulate branch never divides by a zero max.
func updateScaledSum(sum, max, xabs float64) (float64, float64) {
	if xabs > max {
		r := max / xabs
		return 1 + sum*(r*r), xabs
	}
	if xabs != 0 {
		r := xabs / max
		sum += r * r
	}
	return sum, max
}
