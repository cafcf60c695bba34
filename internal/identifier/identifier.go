// Package identifier produces unique string IDs scoped by an entity-type
// prefix, e.g. "unit_1717430000000_a3f9c2". IDs are opaque and safe to use as
// map keys and JSON values.
package identifier

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New returns a fresh identifier for the given prefix. The millisecond
// timestamp keeps IDs roughly sortable by creation time; the random suffix
// makes collisions within the same millisecond vanishingly unlikely.
func New(prefix string) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand never fails on supported platforms; fall back to the
		// timestamp alone rather than panicking in a leaf helper.
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
