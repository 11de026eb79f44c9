package hashfunc

// HashAlgorithm - Interface that permits a caller of the hash table to supply a custom bucket
// selection algorithm, for instance to compare how different hash functions spread a particular key distribution.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a hash table is created. If a custom hash algorithm already has a table size it
	// will be overwritten by the capacity that was requested for the table.
	//   - tableSize is the number of slots or buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (home slot or bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// Negative keys are valid input and must be mapped into range as well.
	HashFunc1(key int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// Since the capacity of a table is fixed, an implementation that rounds the table size to something else than
	// what was given in SetTableSize will be rejected when the table is created.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to examine in the given iteration for a key whose HashFunc1 value is hf1Value.
	// Iteration 0 must return hf1Value itself. The function is not used for the Separate Chaining technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
