package hashsweep

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/hashfunc"
)

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of keys stored
//   - UsedBuckets is the number of slots or buckets holding at least one key
//   - LongestRun is the longest chain (Separate Chaining) or the longest run of consecutive occupied slots,
//     wrapping around the end of the table (Linear Probing)
//   - LoadFactor is Records divided by the table capacity
//   - BucketDistribution is the number of keys stored in each bucket
type TableStat struct {
	Records            int64   `json:"records"`
	UsedBuckets        int64   `json:"used_buckets"`
	LongestRun         int64   `json:"longest_run"`
	LoadFactor         float64 `json:"load_factor"`
	BucketDistribution []int64 `json:"bucket_distribution,omitempty"`
}

// RunResult - The outcome of RunDetailed
//   - Stats is the counters of the table once the run stopped
//   - TableStat is the distribution of the table once the run stopped
//   - Processed is the number of keys that were inserted, including a key that failed on a full table
//   - Truncated is true if the run stopped early because the table got full
type RunResult struct {
	Stats     Stats     `json:"stats"`
	TableStat TableStat `json:"table_stat"`
	Processed int       `json:"processed"`
	Truncated bool      `json:"truncated"`
}

// Run - Inserts keys in order into a new table and returns its counters.
// If a Linear Probing table gets full the run stops and the counters so far are returned without error.
//   - keys is the ordered sequence of keys to insert
//   - capacity is the fixed table capacity, must be higher than 0 (zero)
//   - technique is either crt.LinearProbing or crt.SeparateChaining
//   - hashAlgorithm is an optional custom hash algorithm, nil gives key mod capacity
//
// It returns:
//   - stats is the counters of the table
//   - err is of type crt.InvalidConfig or crt.InvalidKey, in which case nothing was inserted and stats is zero
func Run(keys []int64, capacity int64, technique int, hashAlgorithm hashfunc.HashAlgorithm) (stats Stats, err error) {
	hashTable, _, _, err := runBatch(keys, capacity, technique, hashAlgorithm)
	if err != nil {
		return
	}

	stats = hashTable.GetStats()

	return
}

// RunDetailed - Works as Run but also reports how far the run got and how the keys ended up distributed.
//   - includeDistribution set to true will include a slice of length capacity with number of keys per bucket
func RunDetailed(
	keys []int64,
	capacity int64,
	technique int,
	hashAlgorithm hashfunc.HashAlgorithm,
	includeDistribution bool,
) (
	runResult RunResult,
	err error,
) {
	hashTable, processed, truncated, err := runBatch(keys, capacity, technique, hashAlgorithm)
	if err != nil {
		return
	}

	tableStat, err := hashTable.Stat(includeDistribution)
	if err != nil {
		return
	}

	runResult = RunResult{
		Stats:     hashTable.GetStats(),
		TableStat: tableStat,
		Processed: processed,
		Truncated: truncated,
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length capacity with number of keys per bucket,
//     false will set TableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) (tableStat TableStat, err error) {
	var ts TableStat
	var length, run, leadingRun int64
	var wrapped bool

	if includeDistribution {
		ts.BucketDistribution = make([]int64, H.capacity)
	}

	// Iterate over every available bucket
	for i := int64(0); i < H.capacity; i++ {
		length, err = H.bucketLength(i)
		if err != nil {
			return
		}

		if length > 0 {
			ts.Records += length
			ts.UsedBuckets++
			run++
		} else {
			if !wrapped {
				leadingRun = run
				wrapped = true
			}
			run = 0
		}

		if includeDistribution {
			ts.BucketDistribution[i] = length
		}

		switch H.technique {
		case crt.SeparateChaining:
			if length > ts.LongestRun {
				ts.LongestRun = length
			}
		case crt.LinearProbing:
			if run > ts.LongestRun {
				ts.LongestRun = run
			}
		}
	}

	// A cluster in a Linear Probing table may continue from the last slot into the first ones
	if H.technique == crt.LinearProbing && wrapped && run+leadingRun > ts.LongestRun {
		ts.LongestRun = run + leadingRun
	}

	ts.LoadFactor = float64(ts.Records) / float64(H.capacity)

	// Records must always agree with the insert counter
	if ts.Records != H.GetStats().TotalInserts {
		err = fmt.Errorf("found %d keys in buckets but %d were inserted", ts.Records, H.GetStats().TotalInserts)
		return
	}

	tableStat = ts
	return
}

// runBatch - Creates a table, validates every key and then inserts them in order until done or the table is full
func runBatch(
	keys []int64,
	capacity int64,
	technique int,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	hashTable *HashTable,
	processed int,
	truncated bool,
	err error,
) {
	hashTable, err = NewHashTable(capacity, technique, hashAlgorithm)
	if err != nil {
		return
	}

	// Reject the whole batch before anything is inserted
	for _, key := range keys {
		err = hashTable.storage.ValidateKey(key)
		if err != nil {
			hashTable = nil
			return
		}
	}

	for _, key := range keys {
		processed++
		_, err = hashTable.Insert(key)
		if errors.Is(err, crt.TableFull{}) {
			err = nil
			truncated = true
			return
		}
		if err != nil {
			err = fmt.Errorf("error while inserting key %d: %w", key, err)
			hashTable = nil
			return
		}
	}

	return
}

// bucketLength - Counts the keys of a bucket by walking its chain
func (H *HashTable) bucketLength(bucketNo int64) (length int64, err error) {
	_, iter, err := H.storage.GetBucket(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket %d: %w", bucketNo, err)
		return
	}

	for iter.HasNext() {
		_, err = iter.Next()
		if err != nil {
			return
		}
		length++
	}

	return
}
