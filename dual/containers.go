package dual

import "slices"

// Reader is a container that can be read as a flat sequence of scalars.
// The returned slice must not be modified by the caller.
type Reader[F Scalar] interface {
	RO() []F
}

// Writer is a container that can also be written as a flat sequence of
// scalars.
type Writer[F Scalar] interface {
	Reader[F]
	RW() []F
}

// Viewer is a container that can hand out a read-only, non-owning handle
// of its canonical view type V without copying.
type Viewer[V Reader[F], F Scalar] interface {
	Reader[F]
	View() V
}

// Owner is a container that can produce an independently owned, writable
// copy of its contents.
type Owner[O Writer[F], F Scalar] interface {
	Reader[F]
	ToOwning() O
}

// Owned is writable storage that can clone itself. It is the storage
// constraint of Dual.
type Owned[S any, F Scalar] interface {
	Writer[F]
	Clone() S
}

// Vec is a dynamically sized buffer. Converting an existing slice to a Vec
// does not copy: the Vec writes through to the slice's backing array.
type Vec[F Scalar] []F

func (v Vec[F]) RO() []F { return v }

func (v Vec[F]) RW() []F { return v }

// Clone returns an independent copy of v.
func (v Vec[F]) Clone() Vec[F] { return slices.Clone(v) }

// View returns a read-only handle on the same memory.
func (v Vec[F]) View() Slice[F] { return Slice[F]{s: v} }

// ToOwning is Clone; it lets Vec satisfy Owner.
func (v Vec[F]) ToOwning() Vec[F] { return v.Clone() }

// Slice is a borrowed, read-only view of a slice of scalars.
type Slice[F Scalar] struct {
	s []F
}

// BorrowSlice wraps s without copying.
func BorrowSlice[F Scalar](s []F) Slice[F] { return Slice[F]{s: s} }

func (s Slice[F]) RO() []F { return s.s }

func (s Slice[F]) View() Slice[F] { return s }

// ToOwning copies the viewed scalars into a fresh Vec.
func (s Slice[F]) ToOwning() Vec[F] { return slices.Clone(s.s) }

// ensure interface compliance
var (
	_ Owned[Vec[float64], float64]    = Vec[float64](nil)
	_ Viewer[Slice[float64], float64] = Vec[float64](nil)
	_ Owner[Vec[float64], float64]    = Vec[float64](nil)
	_ Viewer[Slice[float32], float32] = Slice[float32]{}
	_ Owner[Vec[float32], float32]    = Slice[float32]{}
)
