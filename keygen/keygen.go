// Package keygen generates synthetic key sets with the distributions used to study how collision resolution
// techniques behave under different key patterns.
package keygen

import (
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/conf"
	"math/rand"
	"strings"
)

// Distribution - Shape of a generated key set
type Distribution int

const (
	// Uniform - Distinct keys drawn evenly from a range ten times the table size
	Uniform Distribution = iota + 1
	// Clustered - Keys packed tightly around a single center, duplicates are likely
	Clustered
	// Skewed - Exponentially distributed keys, small keys are far more common than large ones
	Skewed
)

// Distributions - Returns all distributions in presentation order
func Distributions() []Distribution {
	return []Distribution{Uniform, Clustered, Skewed}
}

// String - Returns the name of the distribution
func (D Distribution) String() string {
	switch D {
	case Uniform:
		return "Uniform"
	case Clustered:
		return "Clustered"
	case Skewed:
		return "Skewed"
	}
	return fmt.Sprintf("Distribution(%d)", int(D))
}

// Label - Returns the lowercase name of the distribution, suitable for metric labels and query parameters
func (D Distribution) Label() string {
	return strings.ToLower(D.String())
}

// ParseDistribution - Returns the distribution with the given name, case is ignored
func ParseDistribution(s string) (distribution Distribution, err error) {
	for _, d := range Distributions() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			distribution = d
			return
		}
	}

	err = crt.NewInvalidConfig(fmt.Sprintf("unknown key distribution: %s", s))
	return
}

// Generate - Returns n keys following distribution, shaped for a table of tableSize.
//   - distribution is the shape of the key set
//   - n is the number of keys to generate, must not be negative
//   - tableSize is the capacity of the table the keys are meant for, must be higher than 0 (zero)
//   - rng is the source of randomness, the same seed gives the same keys
//
// It returns:
//   - keys is the generated keys in generation order
//   - err is of type crt.InvalidConfig if parameters are out of range
func Generate(distribution Distribution, n int, tableSize int64, rng *rand.Rand) (keys []int64, err error) {
	if n < 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("number of keys must not be negative, got %d", n))
		return
	}
	if tableSize <= 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", tableSize))
		return
	}

	switch distribution {
	case Uniform:
		keys, err = uniform(n, tableSize, rng)
	case Clustered:
		keys = clustered(n, tableSize, rng)
	case Skewed:
		keys = skewed(n, tableSize, rng)
	default:
		err = crt.NewInvalidConfig(fmt.Sprintf("unknown key distribution %d", int(distribution)))
	}

	return
}

// uniform - Samples n distinct keys from 1 -> tableSize * UniformRangeFactor - 1
func uniform(n int, tableSize int64, rng *rand.Rand) (keys []int64, err error) {
	span := tableSize*conf.UniformRangeFactor - 1
	if int64(n) > span {
		err = crt.NewInvalidConfig(fmt.Sprintf("can not sample %d distinct keys from a range of %d", n, span))
		return
	}

	// Partial Fisher-Yates over a sparse view of 1 -> span
	swapped := make(map[int64]int64, n)
	at := func(i int64) int64 {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	keys = make([]int64, n)
	for i := int64(0); i < int64(n); i++ {
		j := i + rng.Int63n(span-i)
		keys[i] = at(j) + 1
		swapped[j] = at(i)
	}

	return
}

// clustered - Draws n keys uniformly from center - ClusterHalfWidth -> center + ClusterHalfWidth
func clustered(n int, tableSize int64, rng *rand.Rand) (keys []int64) {
	center := tableSize * conf.ClusterCenterFactor
	width := 2*conf.ClusterHalfWidth + 1

	keys = make([]int64, n)
	for i := range keys {
		keys[i] = center - conf.ClusterHalfWidth + rng.Int63n(width)
	}

	return
}

// skewed - Draws n keys from an exponential distribution with mean tableSize / SkewedMeanDivisor, truncated to integers
func skewed(n int, tableSize int64, rng *rand.Rand) (keys []int64) {
	mean := float64(tableSize) / conf.SkewedMeanDivisor

	keys = make([]int64, n)
	for i := range keys {
		keys[i] = int64(rng.ExpFloat64() * mean)
	}

	return
}
