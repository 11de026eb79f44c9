package conf

// DefaultTableSize - Capacity used when none is given, a prime for an even spread of key mod capacity
const DefaultTableSize int64 = 1009

// DefaultLoadFactor - Load factor used for a single experiment when none is given
const DefaultLoadFactor float64 = 0.5

// DefaultWorkers - Max number of load factor points run concurrently in a sweep
const DefaultWorkers int = 4

// UniformRangeFactor - Uniform keys are drawn without replacement from 1 -> tableSize * UniformRangeFactor - 1
const UniformRangeFactor int64 = 10

// ClusterCenterFactor - Clustered keys are centered around tableSize * ClusterCenterFactor
const ClusterCenterFactor int64 = 5

// ClusterHalfWidth - Clustered keys are at most this far from the center (inclusive)
const ClusterHalfWidth int64 = 20

// SkewedMeanDivisor - Skewed keys are exponentially distributed with mean tableSize / SkewedMeanDivisor
const SkewedMeanDivisor float64 = 5

// DefaultLoadFactors - Returns the load factors 0.1 -> 0.9 in steps of 0.1
func DefaultLoadFactors() []float64 {
	lf := make([]float64, 9)
	for i := range lf {
		lf[i] = float64(i+1) / 10
	}

	return lf
}

// MaxServedTableSize - Largest table size the HTTP server accepts in a request
const MaxServedTableSize int64 = 1_000_003
