package dual

// View is a read-only dual number over storage S. It never writes to the
// memory it references, so any Reader (a borrowed slice, a reference to a
// fixed-size array) can back it.
type View[S Reader[F], F Scalar] struct {
	content S
}

// ensure interface compliance
var (
	_ Operand[float64] = View[Slice[float64], float64]{}
	_ Operand[float32] = View[Slice[float32], float32]{}
)

// NewView wraps s without copying. s must hold at least the value slot.
func NewView[F Scalar, S Reader[F]](s S) View[S, F] {
	checkNotEmpty(len(s.RO()))
	return View[S, F]{content: s}
}

// Borrow returns a read-only dual over s without copying.
func Borrow[F Scalar](s []F) View[Slice[F], F] {
	checkNotEmpty(len(s))
	return View[Slice[F], F]{content: Slice[F]{s: s}}
}

// ViewAs returns a read-only dual over d's memory that keeps the canonical
// view type of d's storage, e.g. ArrayRef3 for *Array3:
//
//	x := dual.New[float64](&dual.Array3[float64]{17, 1, 0})
//	v := dual.ViewAs[dual.ArrayRef3[float64]](x)
func ViewAs[V Reader[F], F Scalar, S interface {
	Owned[S, F]
	Viewer[V, F]
}](d Dual[S, F]) View[V, F] {
	return View[V, F]{content: d.content.View()}
}

// OwnAs copies v into the owned container matching its storage, e.g. a
// fresh *Array3 for an ArrayRef3.
func OwnAs[O Owned[O, F], F Scalar, S Owner[O, F]](v View[S, F]) Dual[O, F] {
	return Dual[O, F]{content: v.content.ToOwning()}
}

// Storage returns the backing container.
func (v View[S, F]) Storage() S {
	return v.content
}

func (v View[S, F]) Slice() []F {
	return v.content.RO()
}

func (v View[S, F]) Val() F {
	return v.content.RO()[0]
}

func (v View[S, F]) Diffs() []F {
	return v.content.RO()[1:]
}

func (v View[S, F]) Ndiffs() int {
	return len(v.content.RO()) - 1
}

// Mode always returns RO.
func (v View[S, F]) Mode() Mode {
	return RO
}

// View erases the storage type, keeping only the borrowed slice.
func (v View[S, F]) View() View[Slice[F], F] {
	return View[Slice[F], F]{content: Slice[F]{s: v.content.RO()}}
}

// ToOwning copies the viewed scalars into a fresh Vec-backed Dual.
// Use OwnAs to copy into a fixed-size container instead.
func (v View[S, F]) ToOwning() Dual[Vec[F], F] {
	return Dual[Vec[F], F]{content: Vec[F](v.content.RO()).Clone()}
}

// IsClose reports whether every slot of v is within atol of the matching
// slot of other. It panics if the derivative counts differ.
func (v View[S, F]) IsClose(other Operand[F], atol F) bool {
	return isClose[F](v, other, atol)
}

// Equal reports whether v and other hold exactly the same scalars.
func (v View[S, F]) Equal(other Operand[F]) bool {
	return equal[F](v, other)
}

func (v View[S, F]) String() string {
	return format[F](v)
}
