package separatechaining

import (
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/hashfunc"
	"github.com/gostonefire/hashsweep/internal/hash"
	"github.com/gostonefire/hashsweep/internal/model"
	"github.com/gostonefire/hashsweep/internal/overflow"
	"github.com/gostonefire/hashsweep/internal/storage"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// It uses one array of directly addressable buckets where each bucket manages its keys in a single linked list.
// Chains grow without bound, so the table never gets full.
type SCTable struct {
	buckets           []model.Bucket
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	counters          model.Counters
}

// NewSCTable - Returns a pointer to a new, empty instance of a Separate Chaining table.
//   - crtConf is a model.CRTConf struct providing table size and an optional custom hash algorithm
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is of type crt.InvalidConfig if the configuration was not valid
func NewSCTable(crtConf model.CRTConf) (scTable *SCTable, err error) {
	hashAlgorithm, internalAlg, err := storage.ResolveHashAlgorithm(
		crtConf,
		func(tableSize int64) hashfunc.HashAlgorithm { return hash.NewSeparateChainingHashAlgorithm(tableSize) },
	)
	if err != nil {
		return
	}

	scTable = &SCTable{
		buckets:           make([]model.Bucket, crtConf.TableSize),
		tableSize:         crtConf.TableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	for i := range scTable.buckets {
		scTable.buckets[i].BucketNo = int64(i)
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		TableSize:                    S.tableSize,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetCounters - Returns a copy of the aggregated counters
func (S *SCTable) GetCounters() model.Counters {
	return S.counters
}

// ValidateKey - Checks that the key's bucket is within the table without changing anything
func (S *SCTable) ValidateKey(key int64) (err error) {
	return storage.CheckBucketNo(key, S.hashAlgorithm.HashFunc1(key), S.tableSize)
}

// GetBucket - Returns a bucket with its chain given the bucket number
//   - bucketNo is the identifier of a bucket
//
// It returns:
//   - bucket is a model.Bucket struct
//   - overflowIterator is a Records struct that iterates the keys of the chain in insertion order
//   - err is of type crt.InvalidKey if bucketNo is outside the table
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error) {
	err = storage.CheckBucketRange(bucketNo, S.tableSize)
	if err != nil {
		return
	}

	bucket = S.buckets[bucketNo]
	overflowIterator = overflow.NewRecords(bucket.Head)

	return
}

// Insert - Appends the key to the chain of its bucket. Duplicate keys are not detected.
//   - key is the key to insert
//
// It returns:
//   - result is a model.InsertResult telling which bucket got the key and whether it was already non-empty
//   - err is of type crt.InvalidKey if the hash algorithm returns a bucket outside the table
func (S *SCTable) Insert(key int64) (result model.InsertResult, err error) {
	bucketNo := S.hashAlgorithm.HashFunc1(key)
	err = storage.CheckBucketNo(key, bucketNo, S.tableSize)
	if err != nil {
		return
	}

	bucket := &S.buckets[bucketNo]
	result = model.InsertResult{BucketNo: bucketNo, Collided: bucket.Length > 0}

	node := &model.Node{Key: key}
	if bucket.Tail == nil {
		bucket.Head = node
	} else {
		bucket.Tail.Next = node
	}
	bucket.Tail = node
	bucket.Length++

	S.counters.Inserts++
	if result.Collided {
		S.counters.Collisions++
	}

	return
}
