package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormLockTransitions(t *testing.T) {
	var f Form
	assert.Equal(t, Unlocked, f.State())

	f.Load(0)
	assert.True(t, f.Editable())
	assert.True(t, f.SubmitVisible())
	assert.False(t, f.EditVisible())

	f.Load(2)
	assert.Equal(t, Locked, f.State())
	assert.False(t, f.Editable())
	assert.False(t, f.SubmitVisible())
	assert.True(t, f.EditVisible())

	f.Unlock()
	assert.Equal(t, Unlocked, f.State())
	assert.True(t, f.SubmitVisible())

	// Only a fresh load locks again.
	f.Unlock()
	assert.Equal(t, Unlocked, f.State())
	f.Load(1)
	assert.Equal(t, Locked, f.State())
}

func TestLockStateString(t *testing.T) {
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "unlocked", Unlocked.String())
}
