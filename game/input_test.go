package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	ks := HeldKeys(KeyUp, KeyMissile)
	assert.True(t, ks.Has(KeyUp))
	assert.True(t, ks.Has(KeyMissile))
	assert.False(t, ks.Has(KeyDown))

	ks = ks.Without(KeyUp)
	assert.False(t, ks.Has(KeyUp))
	assert.True(t, ks.Has(KeyMissile))
}

func TestParseKeys_IgnoresUnknown(t *testing.T) {
	ks := ParseKeys("ArrowLeft", "KeyQ", "Space", "Escape")
	assert.Equal(t, HeldKeys(KeyLeft, KeyMissile), ks)

	_, ok := ParseKey("Enter")
	assert.False(t, ok)
}
