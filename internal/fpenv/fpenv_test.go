package fpenv

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisableSubnormalsRestoreRoundTrip(t *testing.T) {
	// the control word is per OS thread; keep the whole sequence on one
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	before := DisableSubnormals()
	Restore(before)

	s := DisableSubnormals()
	assert.Equal(t, before, s)
	Restore(s)

	after := DisableSubnormals()
	Restore(after)
	assert.Equal(t, before, after)
}

func TestDisableSubnormalsIsIdempotent(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	orig := DisableSubnormals()
	// a second save while flushing is active must capture the active state,
	// so restoring it keeps flushing on
	active := DisableSubnormals()
	Restore(active)
	inner := DisableSubnormals()
	assert.Equal(t, active, inner)

	Restore(orig)
}
