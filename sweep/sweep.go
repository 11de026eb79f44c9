// Package sweep runs one batch experiment per load factor and collects the statistics into a curve, the
// data behind a collisions versus load factor plot.
package sweep

import (
	"context"
	"fmt"
	"github.com/gostonefire/hashsweep"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/conf"
	"github.com/gostonefire/hashsweep/keygen"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"math/rand"
)

// Conf - Configuration of a sweep
//   - TableSize is the capacity of every table, conf.DefaultTableSize if 0 (zero)
//   - Technique is crt.LinearProbing or crt.SeparateChaining
//   - Distribution is the shape of the generated keys
//   - LoadFactors are the points of the curve, each within (0, 1], conf.DefaultLoadFactors if empty
//   - Seed is the seed of the first point, point i uses Seed + i
//   - Workers is the max number of points run concurrently, conf.DefaultWorkers if 0 (zero)
type Conf struct {
	TableSize    int64
	Technique    int
	Distribution keygen.Distribution
	LoadFactors  []float64
	Seed         int64
	Workers      int
}

// Point - The outcome of one batch run in a sweep
type Point struct {
	LoadFactor           float64         `json:"load_factor"`
	Keys                 int             `json:"keys"`
	Stats                hashsweep.Stats `json:"stats"`
	Truncated            bool            `json:"truncated"`
	LongestRun           int64           `json:"longest_run"`
	AvgProbesPerInsert   float64         `json:"avg_probes_per_insert"`
	AvgProbesPerSlotLoad float64         `json:"avg_probes_per_slot_load"`
}

// Sweeper - Runs sweeps and single experiments
type Sweeper struct {
	logger *logging.Logger
}

// NewSweeper - Returns a new Sweeper, a nil logger gives the package default
func NewSweeper(logger *logging.Logger) *Sweeper {
	registerMetrics()

	if logger == nil {
		logger = logging.MustGetLogger("sweep")
	}

	return &Sweeper{logger: logger}
}

// Run - Runs one experiment per load factor, concurrently, and returns the points in load factor order.
// The first failing point cancels the rest.
func (S *Sweeper) Run(ctx context.Context, sweepConf Conf) (points []Point, err error) {
	sweepConf = sweepConf.withDefaults()
	err = sweepConf.validate()
	if err != nil {
		return
	}

	S.logger.Infof("sweeping %d load factors, %s, %s keys, table size %d",
		len(sweepConf.LoadFactors), crt.Name(sweepConf.Technique), sweepConf.Distribution, sweepConf.TableSize)

	result := make([]Point, len(sweepConf.LoadFactors))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(sweepConf.Workers)

	for i, lf := range sweepConf.LoadFactors {
		i, lf := i, lf
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			point, err := S.RunPoint(sweepConf, lf, sweepConf.Seed+int64(i))
			if err != nil {
				return err
			}
			result[i] = point

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		S.logger.Warningf("sweep aborted: %s", err)
		return
	}

	points = result
	return
}

// RunPoint - Generates keys for one load factor and runs them through a new table
//   - sweepConf is the sweep configuration, its LoadFactors and Workers are ignored
//   - loadFactor is the share of the table capacity to fill with generated keys
//   - seed is the seed of the key generator
func (S *Sweeper) RunPoint(sweepConf Conf, loadFactor float64, seed int64) (point Point, err error) {
	sweepConf = sweepConf.withDefaults()
	sweepConf.LoadFactors = []float64{loadFactor}
	err = sweepConf.validate()
	if err != nil {
		return
	}

	n := int(float64(sweepConf.TableSize) * loadFactor)
	keys, err := keygen.Generate(sweepConf.Distribution, n, sweepConf.TableSize, rand.New(rand.NewSource(seed)))
	if err != nil {
		return
	}

	rr, err := hashsweep.RunDetailed(keys, sweepConf.TableSize, sweepConf.Technique, nil, false)
	if err != nil {
		err = fmt.Errorf("error while running load factor %.2f: %w", loadFactor, err)
		return
	}

	point = Point{
		LoadFactor: loadFactor,
		Keys:       n,
		Stats:      rr.Stats,
		Truncated:  rr.Truncated,
		LongestRun: rr.TableStat.LongestRun,
	}
	if rr.Stats.TotalInserts > 0 {
		point.AvgProbesPerInsert = float64(rr.Stats.TotalProbes) / float64(rr.Stats.TotalInserts)
	}
	point.AvgProbesPerSlotLoad = float64(rr.Stats.TotalProbes) / (float64(sweepConf.TableSize) * loadFactor)

	observePoint(crt.Label(sweepConf.Technique), sweepConf.Distribution.Label(), point)
	S.logger.Debugf("load factor %.2f: %d keys, %d inserts, %d collisions, %d probes",
		loadFactor, n, rr.Stats.TotalInserts, rr.Stats.TotalCollisions, rr.Stats.TotalProbes)

	return
}

// withDefaults - Returns a copy of the configuration with zero values replaced by defaults
func (C Conf) withDefaults() Conf {
	if C.TableSize == 0 {
		C.TableSize = conf.DefaultTableSize
	}
	if len(C.LoadFactors) == 0 {
		C.LoadFactors = conf.DefaultLoadFactors()
	}
	if C.Workers <= 0 {
		C.Workers = conf.DefaultWorkers
	}

	return C
}

// validate - Returns an error of type crt.InvalidConfig if the configuration can not be run
func (C Conf) validate() (err error) {
	if C.TableSize <= 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", C.TableSize))
		return
	}

	if !crt.IsValid(C.Technique) {
		err = crt.NewInvalidConfig(fmt.Sprintf("unknown collision resolution technique %d", C.Technique))
		return
	}

	var knownDistribution bool
	for _, d := range keygen.Distributions() {
		knownDistribution = knownDistribution || d == C.Distribution
	}
	if !knownDistribution {
		err = crt.NewInvalidConfig(fmt.Sprintf("unknown key distribution %d", int(C.Distribution)))
		return
	}

	for _, lf := range C.LoadFactors {
		if lf <= 0 || lf > 1 {
			err = crt.NewInvalidConfig(fmt.Sprintf("load factor must be within (0, 1], got %g", lf))
			return
		}
	}

	return
}
