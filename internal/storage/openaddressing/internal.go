package openaddressing

import (
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/model"
	"github.com/gostonefire/hashsweep/internal/storage"
)

// slotToBucket - Converts a slot to a model.Bucket struct
func (O *OATable) slotToBucket(slotNo int64) (bucket model.Bucket) {
	bucket = model.Bucket{BucketNo: slotNo}

	slot := O.slots[slotNo]
	if slot.State == model.SlotOccupied {
		node := &model.Node{Key: slot.Key}
		bucket.Head = node
		bucket.Tail = node
		bucket.Length = 1
	}

	return
}

// probingForInsert - Is the Linear Probing algorithm for finding an empty slot for a key.
// Every slot examined after the home slot is counted as a probe, also when the table turns out to be full.
func (O *OATable) probingForInsert(key int64) (result model.InsertResult, err error) {
	var probe int64

	hf1Value := O.hashAlgorithm.HashFunc1(key)
	err = storage.CheckBucketNo(key, hf1Value, O.tableSize)
	if err != nil {
		return
	}

	for i := int64(0); i < O.tableSize; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		err = storage.CheckBucketNo(key, probe, O.tableSize)
		if err != nil {
			return
		}

		if i > 0 {
			O.counters.Probes++
			result.Probes++
		}

		if O.slots[probe].State == model.SlotEmpty {
			result.BucketNo = probe
			result.Collided = i > 0
			return
		}
	}

	// Every slot has been examined once
	err = crt.TableFull{}
	return
}
