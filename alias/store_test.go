package alias_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shlexcore/shlex/alias"
)

func TestMapStore(t *testing.T) {
	store := alias.MapStore{"ll": "ls -l"}

	assert.True(t, store.HasName("ll"))
	value, ok := store.GetValue("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -l", string(value))

	assert.False(t, store.HasName("missing"))
	_, ok = store.GetValue("missing")
	assert.False(t, ok)
}
