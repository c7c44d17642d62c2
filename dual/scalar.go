package dual

import "math"

// Scalar is the set of floating-point types a dual number can carry.
// Transcendental functions are evaluated in float64 and converted back.
type Scalar interface {
	~float32 | ~float64
}

func ln2[F Scalar]() F { return F(math.Ln2) }

func exp[F Scalar](x F) F { return F(math.Exp(float64(x))) }

func exp2[F Scalar](x F) F { return F(math.Exp2(float64(x))) }

func ln[F Scalar](x F) F { return F(math.Log(float64(x))) }

func powf[F Scalar](x, e F) F { return F(math.Pow(float64(x), float64(e))) }
