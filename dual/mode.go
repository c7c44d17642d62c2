package dual

// Mode is the ownership marker of a dual number.
//
// The capability itself is carried by the type: a Dual is always RW and a
// View is always RO. Mode exposes the marker to code that only holds an
// Operand.
type Mode uint8

const (
	// RO marks read-only storage.
	RO Mode = iota
	// RW marks storage that can be written in place.
	RW
)

// Writable reports whether the storage can be mutated in place.
func (m Mode) Writable() bool {
	return m == RW
}

func (m Mode) String() string {
	switch m {
	case RO:
		return "RO"
	case RW:
		return "RW"
	default:
		return "unknown"
	}
}
