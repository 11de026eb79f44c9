package hash

import (
	"github.com/gostonefire/hashsweep/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm for Linear Probing.
// It applies slot = key mod tableSize, normalized so that negative keys also land within the table,
// and walks the table one slot at a time on collision.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, a prime sized table gives the most even spread for key mod tableSize.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key int64) int64 {
	return utils.Mod(key, L.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	probe := hf1Value + iteration
	if probe >= L.tableSize {
		probe -= L.tableSize
	}

	return probe
}
