//go:build unit

package keygen

import (
	"errors"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func TestParseDistribution(t *testing.T) {
	t.Run("parses names ignoring case", func(t *testing.T) {
		// Execute and Check
		for input, expected := range map[string]Distribution{
			"Uniform":   Uniform,
			"clustered": Clustered,
			" SKEWED ":  Skewed,
			"uniform":   Uniform,
			"Clustered": Clustered,
		} {
			d, err := ParseDistribution(input)
			assert.NoErrorf(t, err, "parses %q", input)
			assert.Equalf(t, expected, d, "correct distribution for %q", input)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		// Execute
		_, err := ParseDistribution("gaussian")

		// Check
		assert.True(t, errors.Is(err, crt.InvalidConfig{}), "invalid config")
	})

	t.Run("label round trips", func(t *testing.T) {
		for _, d := range Distributions() {
			// Execute
			parsed, err := ParseDistribution(d.Label())

			// Check
			assert.NoError(t, err, "parses label")
			assert.Equal(t, d, parsed, "same distribution")
		}
	})
}

func TestGenerate(t *testing.T) {
	t.Run("uniform keys are distinct and within range", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(1))

		// Execute
		keys, err := Generate(Uniform, 908, 1009, rng)

		// Check
		assert.NoError(t, err, "generates keys")
		assert.Len(t, keys, 908, "correct number of keys")
		seen := make(map[int64]bool)
		for _, k := range keys {
			assert.GreaterOrEqual(t, k, int64(1), "not below range")
			assert.Less(t, k, int64(10090), "not above range")
			assert.Falsef(t, seen[k], "key %d is distinct", k)
			seen[k] = true
		}
	})

	t.Run("uniform can exhaust its whole range", func(t *testing.T) {
		// Prepare
		rng := rand.New(rand.NewSource(2))

		// Execute
		keys, err := Generate(Uniform, 19, 2, rng)

		// Check
		assert.NoError(t, err, "generates keys")
		assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, keys, "every key once")
	})

	t.Run("uniform fails when more keys than range", func(t *testing.T) {
		// Execute
		_, err := Generate(Uniform, 20, 2, rand.New(rand.NewSource(3)))

		// Check
		assert.True(t, errors.Is(err, crt.InvalidConfig{}), "invalid config")
	})

	t.Run("clustered keys are near the center", func(t *testing.T) {
		// Execute
		keys, err := Generate(Clustered, 500, 1009, rand.New(rand.NewSource(4)))

		// Check
		assert.NoError(t, err, "generates keys")
		assert.Len(t, keys, 500, "correct number of keys")
		for _, k := range keys {
			assert.GreaterOrEqual(t, k, int64(5045-20), "not below cluster")
			assert.LessOrEqual(t, k, int64(5045+20), "not above cluster")
		}
	})

	t.Run("skewed keys are non-negative and mostly small", func(t *testing.T) {
		// Execute
		keys, err := Generate(Skewed, 1000, 1009, rand.New(rand.NewSource(5)))

		// Check
		assert.NoError(t, err, "generates keys")
		var small int
		for _, k := range keys {
			assert.GreaterOrEqual(t, k, int64(0), "not negative")
			if k < 1009 {
				small++
			}
		}
		assert.Greater(t, small, 900, "most keys below table size")
	})

	t.Run("same seed gives same keys", func(t *testing.T) {
		for _, d := range Distributions() {
			// Execute
			a, errA := Generate(d, 300, 1009, rand.New(rand.NewSource(42)))
			b, errB := Generate(d, 300, 1009, rand.New(rand.NewSource(42)))

			// Check
			assert.NoError(t, errA, "generates keys")
			assert.NoError(t, errB, "generates keys")
			assert.Equalf(t, a, b, "deterministic %s", d)
		}
	})

	t.Run("zero keys is fine, negative count and table size are not", func(t *testing.T) {
		// Execute
		keys, err := Generate(Skewed, 0, 1009, rand.New(rand.NewSource(6)))
		_, errCount := Generate(Skewed, -1, 1009, rand.New(rand.NewSource(6)))
		_, errSize := Generate(Skewed, 1, 0, rand.New(rand.NewSource(6)))
		_, errDist := Generate(Distribution(9), 1, 10, rand.New(rand.NewSource(6)))

		// Check
		assert.NoError(t, err, "zero keys")
		assert.Empty(t, keys, "no keys")
		assert.True(t, errors.Is(errCount, crt.InvalidConfig{}), "negative count")
		assert.True(t, errors.Is(errSize, crt.InvalidConfig{}), "zero table size")
		assert.True(t, errors.Is(errDist, crt.InvalidConfig{}), "unknown distribution")
	})
}
