//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLinearProbingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size unchanged", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(1009)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(1009), tableSize, "correct tableSize value")
	})
}

func TestLinearProbingHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid slot number", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute and Check
		assert.Equal(t, int64(5), h.HashFunc1(5), "key below table size")
		assert.Equal(t, int64(5), h.HashFunc1(15), "key above table size")
		assert.Equal(t, int64(5), h.HashFunc1(25), "key far above table size")
	})

	t.Run("normalizes negative keys", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute and Check
		assert.Equal(t, int64(9), h.HashFunc1(-1), "minus one")
		assert.Equal(t, int64(5), h.HashFunc1(-5), "minus five")
	})
}

func TestLinearProbingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)
		assert.Equal(t, int64(10), h.GetTableSize(), "correct tableSize value")

		// Execute
		h.SetTableSize(23)

		// Check
		assert.Equal(t, int64(23), h.GetTableSize(), "correct tableSize value")
		assert.Equal(t, int64(2), h.HashFunc1(25), "hash follows new table size")
	})
}

func TestLinearProbingHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(11)
		tableSize := h.GetTableSize()

		slotNo := h.HashFunc1(7)

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(slotNo, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in slot #%d", i)
		}
	})

	t.Run("first iteration is the home slot and next wraps around", func(t *testing.T) {
		// Prepare
		h := NewLinearProbingHashAlgorithm(10)

		// Execute and Check
		assert.Equal(t, int64(9), h.ProbeIteration(9, 0), "home slot")
		assert.Equal(t, int64(0), h.ProbeIteration(9, 1), "wraps to first slot")
		assert.Equal(t, int64(8), h.ProbeIteration(9, 9), "last slot before home")
	})
}
