package hashsweep

import (
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/hashfunc"
	"github.com/gostonefire/hashsweep/internal/model"
	"github.com/gostonefire/hashsweep/internal/overflow"
	"github.com/gostonefire/hashsweep/internal/storage/openaddressing"
	"github.com/gostonefire/hashsweep/internal/storage/separatechaining"
)

// TableStorage - Interface for any collision resolution technique implementation
type TableStorage interface {
	Insert(key int64) (result model.InsertResult, err error)
	ValidateKey(key int64) (err error)
	GetCounters() (counters model.Counters)
	GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// Stats - Aggregated counters of one table, a value that is not affected by later inserts
//   - TotalInserts is the number of keys successfully placed
//   - TotalCollisions is the number of collision events, at most one per insert
//   - TotalProbes is the number of slots examined beyond the home slot, always 0 for Separate Chaining
type Stats struct {
	TotalInserts    int64 `json:"total_inserts"`
	TotalCollisions int64 `json:"total_collisions"`
	TotalProbes     int64 `json:"total_probes"`
}

// InsertResult - Outcome of a successful Insert
//   - BucketNo is the slot or bucket the key was stored in
//   - Probes is the number of slots examined beyond the home slot for this key
//   - Collided is true if the key's home slot was occupied or its bucket was non-empty
type InsertResult struct {
	BucketNo int64
	Probes   int64
	Collided bool
}

// HashTable - A fixed capacity table of integer keys using one collision resolution technique
type HashTable struct {
	storage   TableStorage
	technique int
	capacity  int64
}

// NewHashTable - Returns a new, empty hash table.
//   - capacity is the fixed number of slots (Linear Probing) or buckets (Separate Chaining), must be higher than 0 (zero)
//   - technique is either crt.LinearProbing or crt.SeparateChaining
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface,
//     nil gives key mod capacity.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type crt.InvalidConfig if any parameter was invalid
func NewHashTable(capacity int64, technique int, hashAlgorithm hashfunc.HashAlgorithm) (hashTable *HashTable, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", capacity))
		return
	}

	crtConf := model.CRTConf{
		TableSize:     capacity,
		HashAlgorithm: hashAlgorithm,
	}

	var ts TableStorage
	switch technique {
	case crt.LinearProbing:
		ts, err = openaddressing.NewOATable(crtConf)
	case crt.SeparateChaining:
		ts, err = separatechaining.NewSCTable(crtConf)
	default:
		err = crt.NewInvalidConfig(fmt.Sprintf("unknown collision resolution technique %d", technique))
	}
	if err != nil {
		return
	}

	hashTable = &HashTable{
		storage:   ts,
		technique: technique,
		capacity:  capacity,
	}

	return
}

// Capacity - Returns the fixed capacity of the table
func (H *HashTable) Capacity() int64 {
	return H.capacity
}

// Technique - Returns the collision resolution technique of the table
func (H *HashTable) Technique() int {
	return H.technique
}

// Insert - Inserts key into the table. A key equal to an already stored key is inserted once more.
//   - key is any int64, negative keys are mapped into the table as well
//
// It returns:
//   - result is an InsertResult describing where the key went
//   - err is of type crt.TableFull when a Linear Probing table has no empty slot left, or crt.InvalidKey
//     if a custom hash algorithm produced an index outside the table
func (H *HashTable) Insert(key int64) (result InsertResult, err error) {
	r, err := H.storage.Insert(key)
	if err != nil {
		return
	}

	result = InsertResult{
		BucketNo: r.BucketNo,
		Probes:   r.Probes,
		Collided: r.Collided,
	}

	return
}

// GetStats - Returns the counters of the table at the time of the call
func (H *HashTable) GetStats() Stats {
	c := H.storage.GetCounters()

	return Stats{
		TotalInserts:    c.Inserts,
		TotalCollisions: c.Collisions,
		TotalProbes:     c.Probes,
	}
}
