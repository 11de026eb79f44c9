//go:build unit

package conf

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDefaultLoadFactors(t *testing.T) {
	t.Run("returns a fresh slice from 0.1 to 0.9", func(t *testing.T) {
		// Execute
		lf := DefaultLoadFactors()
		lf[0] = 42

		// Check
		assert.Len(t, lf, 9, "nine load factors")
		assert.InDelta(t, 0.1, DefaultLoadFactors()[0], 1e-9, "first untouched by caller")
		assert.InDelta(t, 0.9, lf[8], 1e-9, "last")
	})
}
