package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("carries the prefix", func(t *testing.T) {
		id := New("unit")
		assert.True(t, strings.HasPrefix(id, "unit_"), "id %q should start with prefix", id)
	})

	t.Run("generates unique ids", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New("lesson")
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})
}
