//go:build amd64 && !purego

package fpenv

const (
	dazBit = 1 << 6  // denormals are zero
	ftzBit = 1 << 15 // flush to zero
)

// Defined in fpenv_amd64.s.
func stmxcsr(addr *uint32)
func ldmxcsr(addr *uint32)

func disableSubnormals() State {
	var cw uint32
	stmxcsr(&cw)
	old := cw
	cw |= ftzBit | dazBit
	ldmxcsr(&cw)
	return State(old)
}

func restore(s State) {
	cw := uint32(s)
	ldmxcsr(&cw)
}
