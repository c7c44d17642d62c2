package dual

// Common bindings of the generic types. The fixed-size array aliases
// (Array3F64, ArrayView3F64, ...) live in arrays_gen.go.
type (
	// Owning64 is a heap-backed read-write dual of float64.
	Owning64 = Dual[Vec[float64], float64]
	// View64 is a read-only dual borrowing a []float64.
	View64 = View[Slice[float64], float64]
	// Owning32 is a heap-backed read-write dual of float32.
	Owning32 = Dual[Vec[float32], float32]
	// View32 is a read-only dual borrowing a []float32.
	View32 = View[Slice[float32], float32]
)
