package objective

import "github.com/23skdu/fwdad/dual"

// Builtins returns the objectives every registry created by Default holds.
func Builtins() []Objective {
	return []Objective{
		{
			Name:        "rosenbrock",
			Description: "sum of 100(x[i+1]-x[i]^2)^2 + (1-x[i])^2, minimum 0 at (1, ..., 1)",
			MinDim:      2,
			Minimizer:   []float64{1, 1},
			Eval:        rosenbrock,
		},
		{
			Name:        "sphere",
			Description: "sum of x[i]^2, minimum 0 at the origin",
			MinDim:      1,
			Minimizer:   []float64{0, 0},
			Eval:        sphere,
		},
		{
			Name:        "himmelblau",
			Description: "(x^2+y-11)^2 + (x+y^2-7)^2, one of four minima at (3, 2)",
			Dim:         2,
			Minimizer:   []float64{3, 2},
			Eval:        himmelblau,
		},
		{
			Name:        "booth",
			Description: "(x+2y-7)^2 + (2x+y-5)^2, minimum 0 at (1, 3)",
			Dim:         2,
			Minimizer:   []float64{1, 3},
			Eval:        booth,
		},
		{
			Name:        "beale",
			Description: "(1.5-x+xy)^2 + (2.25-x+xy^2)^2 + (2.625-x+xy^3)^2, minimum 0 at (3, 0.5)",
			Dim:         2,
			Minimizer:   []float64{3, 0.5},
			Eval:        beale,
		},
		{
			Name:        "matyas",
			Description: "0.26(x^2+y^2) - 0.48xy, minimum 0 at the origin",
			Dim:         2,
			Minimizer:   []float64{0, 0},
			Eval:        matyas,
		},
		{
			Name:        "styblinski-tang",
			Description: "sum of (x[i]^4 - 16x[i]^2 + 5x[i])/2",
			MinDim:      1,
			Eval:        styblinskiTang,
		},
		{
			Name:        "pseudo-huber",
			Description: "sum of sqrt(1+x[i]^2) - 1, minimum 0 at the origin",
			MinDim:      1,
			Minimizer:   []float64{0, 0},
			Eval:        pseudoHuber,
		},
		{
			Name:        "log-sum-exp",
			Description: "ln(sum of exp(x[i]))",
			MinDim:      1,
			Eval:        logSumExp,
		},
		{
			Name:        "l1",
			Description: "sum of |x[i]|, minimum 0 at the origin",
			MinDim:      1,
			Minimizer:   []float64{0, 0},
			Nonsmooth:   true,
			Eval:        l1,
		},
	}
}

func square(d dual.Owning64) dual.Owning64 {
	return d.Mul(d)
}

func zero(x []dual.Owning64) dual.Owning64 {
	return dual.Constant(0.0, x[0].Ndiffs())
}

func rosenbrock(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1].Clone().Sub(x[i].Clone().Powf(2)).Powf(2).MulScalar(100)
		b := dual.ScalarSub(1.0, x[i].Clone()).Powf(2)
		sum.Add(a).Add(b)
	}
	return sum
}

func sphere(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for _, xi := range x {
		sum.Add(square(xi.Clone()))
	}
	return sum
}

func himmelblau(x []dual.Owning64) dual.Owning64 {
	a := square(x[0].Clone()).Add(x[1]).SubScalar(11)
	b := square(x[1].Clone()).Add(x[0]).SubScalar(7)
	return square(a).Add(square(b))
}

func booth(x []dual.Owning64) dual.Owning64 {
	a := x[1].Clone().MulScalar(2).Add(x[0]).SubScalar(7)
	b := x[0].Clone().MulScalar(2).Add(x[1]).SubScalar(5)
	return square(a).Add(square(b))
}

func beale(x []dual.Owning64) dual.Owning64 {
	xy := x[0].Clone().Mul(x[1])
	xy2 := xy.Clone().Mul(x[1])
	xy3 := xy2.Clone().Mul(x[1])

	a := dual.ScalarAdd(1.5, xy.Sub(x[0]))
	b := dual.ScalarAdd(2.25, xy2.Sub(x[0]))
	c := dual.ScalarAdd(2.625, xy3.Sub(x[0]))
	return square(a).Add(square(b)).Add(square(c))
}

func matyas(x []dual.Owning64) dual.Owning64 {
	s := square(x[0].Clone()).Add(square(x[1].Clone())).MulScalar(0.26)
	p := x[0].Clone().Mul(x[1]).MulScalar(0.48)
	return s.Sub(p)
}

func styblinskiTang(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for _, xi := range x {
		sum.Add(xi.Clone().Powf(4))
		sum.Sub(square(xi.Clone()).MulScalar(16))
		sum.Add(xi.Clone().MulScalar(5))
	}
	return sum.MulScalar(0.5)
}

func pseudoHuber(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for _, xi := range x {
		sum.Add(square(xi.Clone()).AddScalar(1).Powf(0.5).SubScalar(1))
	}
	return sum
}

func logSumExp(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for _, xi := range x {
		sum.Add(xi.Clone().Exp())
	}
	return sum.Ln()
}

func l1(x []dual.Owning64) dual.Owning64 {
	sum := zero(x)
	for _, xi := range x {
		sum.Add(xi.Clone().Abs())
	}
	return sum
}
