//go:build !noimplicitclone

package dual

// Arithmetic on a View. A view cannot be written, so each method below
// first copies it into a fresh Vec and computes there; the view itself is
// never modified. Build with -tags noimplicitclone to remove these methods
// and make every copy explicit through ToOwning.

func (v View[S, F]) Neg() Dual[Vec[F], F] { return v.ToOwning().Neg() }

func (v View[S, F]) Exp() Dual[Vec[F], F] { return v.ToOwning().Exp() }

func (v View[S, F]) Exp2() Dual[Vec[F], F] { return v.ToOwning().Exp2() }

func (v View[S, F]) ExpBase(base F) Dual[Vec[F], F] { return v.ToOwning().ExpBase(base) }

func (v View[S, F]) Ln() Dual[Vec[F], F] { return v.ToOwning().Ln() }

func (v View[S, F]) Inv() Dual[Vec[F], F] { return v.ToOwning().Inv() }

func (v View[S, F]) Powf(e F) Dual[Vec[F], F] { return v.ToOwning().Powf(e) }

func (v View[S, F]) PowDual(e Operand[F]) Dual[Vec[F], F] { return v.ToOwning().PowDual(e) }

func (v View[S, F]) Abs() Dual[Vec[F], F] { return v.ToOwning().Abs() }

func (v View[S, F]) Add(o Operand[F]) Dual[Vec[F], F] { return v.ToOwning().Add(o) }

func (v View[S, F]) Sub(o Operand[F]) Dual[Vec[F], F] { return v.ToOwning().Sub(o) }

func (v View[S, F]) Mul(o Operand[F]) Dual[Vec[F], F] { return v.ToOwning().Mul(o) }

func (v View[S, F]) Div(o Operand[F]) Dual[Vec[F], F] { return v.ToOwning().Div(o) }

func (v View[S, F]) AddScalar(s F) Dual[Vec[F], F] { return v.ToOwning().AddScalar(s) }

func (v View[S, F]) SubScalar(s F) Dual[Vec[F], F] { return v.ToOwning().SubScalar(s) }

func (v View[S, F]) MulScalar(s F) Dual[Vec[F], F] { return v.ToOwning().MulScalar(s) }

func (v View[S, F]) DivScalar(s F) Dual[Vec[F], F] { return v.ToOwning().DivScalar(s) }
