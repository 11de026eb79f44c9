package model

import "github.com/gostonefire/hashsweep/hashfunc"

// SlotEmpty - State indicating a slot that has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a key
const SlotOccupied uint8 = 1

// Slot - Represents one slot in an open addressing table
type Slot struct {
	State uint8
	Key   int64
}

// Node - Represents one key in a bucket chain
type Node struct {
	Key  int64
	Next *Node
}

// Bucket - Represents all keys in a bucket. For open addressing a bucket is a slot and holds at most one key.
type Bucket struct {
	Head     *Node
	Tail     *Node
	Length   int64
	BucketNo int64
}

// Counters - Aggregated counters of a table, they never decrease during the table's lifetime
//   - Inserts is the number of keys successfully placed
//   - Collisions is the number of inserts that could not use their home slot or landed in a non-empty bucket
//   - Probes is the number of slots examined beyond the home slot
type Counters struct {
	Inserts    int64
	Collisions int64
	Probes     int64
}

// InsertResult - Outcome of one successful insert
//   - BucketNo is where the key ended up
//   - Probes is the number of slots examined beyond the home slot for this key
//   - Collided is true if the key could not use an empty home slot or bucket
type InsertResult struct {
	BucketNo int64
	Probes   int64
	Collided bool
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// the table.
//   - TableSize is the fixed number of slots or buckets
//   - HashAlgorithm is the hash function to use, nil selects the internal one for the technique
type CRTConf struct {
	TableSize     int64
	HashAlgorithm hashfunc.HashAlgorithm
}
