// Package fpenv scopes the floating point environment (denormal handling)
// to a single processing invocation. Flush-to-zero is a control register
// setting shared by everything scheduled on the same OS thread, so callers
// must restore the saved state on every exit path, error exits included.
package fpenv

// State is a saved floating point control word.
type State uint32

// DisableSubnormals turns on flush-to-zero and denormals-are-zero and
// returns the previous state. On platforms without control word access it
// is a no-op.
func DisableSubnormals() State {
	return disableSubnormals()
}

// Restore puts back a state captured by DisableSubnormals.
func Restore(s State) {
	restore(s)
}
