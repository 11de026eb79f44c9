package openaddressing

import (
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/hashfunc"
	"github.com/gostonefire/hashsweep/internal/hash"
	"github.com/gostonefire/hashsweep/internal/model"
	"github.com/gostonefire/hashsweep/internal/overflow"
	"github.com/gostonefire/hashsweep/internal/storage"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique using Linear Probing.
// It uses one array of slots where each slot holds at most one key. In case of a collision, it probes through
// the table one slot at a time, looking for an empty slot, and assigns the free slot to the key.
// Once all slots are occupied the table will accept no more keys.
type OATable struct {
	slots             []model.Slot
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	counters          model.Counters
}

// NewOATable - Returns a pointer to a new, empty instance of a Linear Probing table.
//   - crtConf is a model.CRTConf struct providing table size and an optional custom hash algorithm
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is of type crt.InvalidConfig if the configuration was not valid
func NewOATable(crtConf model.CRTConf) (oaTable *OATable, err error) {
	hashAlgorithm, internalAlg, err := storage.ResolveHashAlgorithm(
		crtConf,
		func(tableSize int64) hashfunc.HashAlgorithm { return hash.NewLinearProbingHashAlgorithm(tableSize) },
	)
	if err != nil {
		return
	}

	oaTable = &OATable{
		slots:             make([]model.Slot, crtConf.TableSize),
		tableSize:         crtConf.TableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		TableSize:                    O.tableSize,
		InternalAlgorithm:            O.internalAlgorithm,
	}

	return
}

// GetCounters - Returns a copy of the aggregated counters
func (O *OATable) GetCounters() model.Counters {
	return O.counters
}

// ValidateKey - Checks that the key's home slot is within the table without changing anything
func (O *OATable) ValidateKey(key int64) (err error) {
	return storage.CheckBucketNo(key, O.hashAlgorithm.HashFunc1(key), O.tableSize)
}

// GetBucket - Returns a bucket given the slot number. In Linear Probing a bucket is a single slot, so it holds zero or one key.
//   - bucketNo is the slot number
//
// It returns:
//   - bucket is a model.Bucket struct
//   - overflowIterator is a Records struct that iterates the key in the slot, if any
//   - err is of type crt.InvalidKey if bucketNo is outside the table
func (O *OATable) GetBucket(bucketNo int64) (bucket model.Bucket, overflowIterator *overflow.Records, err error) {
	err = storage.CheckBucketRange(bucketNo, O.tableSize)
	if err != nil {
		return
	}

	bucket = O.slotToBucket(bucketNo)
	overflowIterator = overflow.NewRecords(bucket.Head)

	return
}

// Insert - Places the key in its home slot, or in the first empty slot following it.
// Duplicate keys are not detected, each call is an insertion of its own.
//   - key is the key to insert
//
// It returns:
//   - result is a model.InsertResult telling where the key ended up and how many probes it took
//   - err is of type crt.TableFull if every slot was examined without finding an empty one, or crt.InvalidKey if the hash algorithm misbehaves
func (O *OATable) Insert(key int64) (result model.InsertResult, err error) {
	result, err = O.probingForInsert(key)
	if err != nil {
		return
	}

	O.slots[result.BucketNo] = model.Slot{State: model.SlotOccupied, Key: key}
	O.counters.Inserts++
	if result.Collided {
		O.counters.Collisions++
	}

	return
}
