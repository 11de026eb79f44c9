package hash

import (
	"github.com/gostonefire/hashsweep/internal/utils"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm for Separate Chaining.
// It applies bucket = key mod tableSize, normalized so that negative keys also land within the table.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HashFunc1(key int64) int64 {
	return utils.Mod(key, S.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns the home bucket
func (S *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
