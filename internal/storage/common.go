package storage

import (
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/hashfunc"
	"github.com/gostonefire/hashsweep/internal/model"
)

// ResolveHashAlgorithm - Validates the table configuration and returns the hash algorithm to use.
// If no HashAlgorithm was given in crtConf then the one returned by newInternal is used.
//   - crtConf is the table configuration
//   - newInternal returns the internal hash algorithm of the collision resolution technique for a given table size
//
// It returns:
//   - hashAlgorithm is the algorithm to use, with its table size set
//   - internalAlg is true if the internal algorithm was selected
//   - err is of type crt.InvalidConfig if table size is not positive or a custom algorithm changes the table size
func ResolveHashAlgorithm(
	crtConf model.CRTConf,
	newInternal func(tableSize int64) hashfunc.HashAlgorithm,
) (
	hashAlgorithm hashfunc.HashAlgorithm,
	internalAlg bool,
	err error,
) {
	if crtConf.TableSize <= 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", crtConf.TableSize))
		return
	}

	if crtConf.HashAlgorithm == nil {
		hashAlgorithm = newInternal(crtConf.TableSize)
		internalAlg = true
		return
	}

	hashAlgorithm = crtConf.HashAlgorithm
	hashAlgorithm.SetTableSize(crtConf.TableSize)
	if hashAlgorithm.GetTableSize() != crtConf.TableSize {
		err = crt.NewInvalidConfig(fmt.Sprintf(
			"hash algorithm changed table size from %d to %d, capacity is fixed",
			crtConf.TableSize,
			hashAlgorithm.GetTableSize(),
		))
		hashAlgorithm = nil
	}

	return
}

// CheckBucketNo - Returns an error of type crt.InvalidKey if bucketNo is outside the table
func CheckBucketNo(key, bucketNo, tableSize int64) (err error) {
	if bucketNo < 0 || bucketNo >= tableSize {
		err = crt.NewInvalidKey(fmt.Sprintf(
			"received bucket number %d for key %d from hash algorithm is outside permitted range 0 -> %d",
			bucketNo,
			key,
			tableSize-1,
		))
	}

	return
}

// CheckBucketRange - Returns an error of type crt.InvalidKey if a requested bucketNo is outside the table
func CheckBucketRange(bucketNo, tableSize int64) (err error) {
	if bucketNo < 0 || bucketNo >= tableSize {
		err = crt.NewInvalidKey(fmt.Sprintf(
			"requested bucket number %d is outside permitted range 0 -> %d",
			bucketNo,
			tableSize-1,
		))
	}

	return
}
