package dual

import "fmt"

// MismatchError is the panic value of a binary operation whose operands
// track a different number of variables.
type MismatchError struct {
	Left  int
	Right int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("dual: duals have different numbers of diffs: %d =/= %d", e.Left, e.Right)
}

func checkSameNdiffs(left, right int) {
	if left != right {
		panic(&MismatchError{Left: left, Right: right})
	}
}

func checkNotEmpty(n int) {
	if n == 0 {
		panic("dual: storage must hold at least the value slot")
	}
}
