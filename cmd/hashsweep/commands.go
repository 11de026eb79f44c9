package main

import (
	"context"
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/server"
	"github.com/gostonefire/hashsweep/internal/utils"
	"github.com/gostonefire/hashsweep/keygen"
	"github.com/gostonefire/hashsweep/report"
	"github.com/gostonefire/hashsweep/sweep"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ExperimentOptions - Options describing the tables and keys of an experiment
type ExperimentOptions struct {
	Technique    string `short:"t" long:"technique" default:"linear" env:"HASHSWEEP_TECHNIQUE" description:"collision resolution technique [linear, chaining]"`
	Distribution string `short:"d" long:"distribution" default:"uniform" env:"HASHSWEEP_DISTRIBUTION" description:"key distribution [uniform, clustered, skewed]"`
	Size         int64  `short:"s" long:"size" default:"1009" env:"HASHSWEEP_SIZE" description:"table capacity"`
	Prime        bool   `long:"prime" env:"HASHSWEEP_PRIME" description:"round the table capacity up to the next prime"`
	Seed         int64  `long:"seed" default:"0" env:"HASHSWEEP_SEED" description:"seed of the key generator"`
}

// sweepConf - Returns the sweep configuration described by the options
func (E ExperimentOptions) sweepConf() (sweepConf sweep.Conf, err error) {
	technique, err := crt.Parse(E.Technique)
	if err != nil {
		return
	}

	distribution, err := keygen.ParseDistribution(E.Distribution)
	if err != nil {
		return
	}

	if E.Size <= 0 {
		err = crt.NewInvalidConfig(fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", E.Size))
		return
	}

	tableSize := E.Size
	if E.Prime {
		tableSize = utils.NextPrime(tableSize)
	}

	sweepConf = sweep.Conf{
		TableSize:    tableSize,
		Technique:    technique,
		Distribution: distribution,
		Seed:         E.Seed,
	}

	return
}

// RunCommand - Runs a single experiment
type RunCommand struct {
	ExperimentOptions
	LoadFactor float64 `short:"f" long:"load-factor" default:"0.5" env:"HASHSWEEP_LOAD_FACTOR" description:"share of the table capacity to fill, within (0, 1]"`

	out io.Writer
}

// Execute - Implements flags.Commander
func (R *RunCommand) Execute(_ []string) (err error) {
	sweepConf, err := R.sweepConf()
	if err != nil {
		return
	}

	point, err := sweep.NewSweeper(nil).RunPoint(sweepConf, R.LoadFactor, sweepConf.Seed)
	if err != nil {
		return
	}

	w := writerOrStdout(R.out)
	_, err = fmt.Fprintf(w, "%s, %s keys, table size %d, load factor %.2f\n",
		crt.Name(sweepConf.Technique), sweepConf.Distribution, sweepConf.TableSize, point.LoadFactor)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "Total Insertions: %d\nTotal Collisions: %d\n", point.Stats.TotalInserts, point.Stats.TotalCollisions)
	if err != nil {
		return
	}

	if sweepConf.Technique == crt.LinearProbing {
		_, err = fmt.Fprintf(w, "Total Probes: %d\nAvg Probes/Insertion: %.2f\nLongest Cluster: %d\n",
			point.Stats.TotalProbes, point.AvgProbesPerInsert, point.LongestRun)
	} else {
		_, err = fmt.Fprintf(w, "Longest Chain: %d\n", point.LongestRun)
	}
	if err != nil {
		return
	}

	if point.Truncated {
		_, err = fmt.Fprintf(w, "Table full after %d of %d keys\n", point.Stats.TotalInserts, point.Keys)
	}

	return
}

// SweepCommand - Runs a load factor sweep
type SweepCommand struct {
	ExperimentOptions
	LoadFactors []float64 `short:"f" long:"load-factor" env:"HASHSWEEP_LOAD_FACTORS" env-delim:"," description:"load factor of a point, repeat for more points (default 0.1 -> 0.9)"`
	Workers     int       `short:"w" long:"workers" default:"4" env:"HASHSWEEP_WORKERS" description:"max number of points run concurrently"`
	Format      string    `long:"format" default:"text" choice:"text" choice:"json" choice:"html" env:"HASHSWEEP_FORMAT" description:"output format"`

	out io.Writer
}

// Execute - Implements flags.Commander
func (S *SweepCommand) Execute(_ []string) (err error) {
	sweepConf, err := S.sweepConf()
	if err != nil {
		return
	}
	sweepConf.LoadFactors = S.LoadFactors
	sweepConf.Workers = S.Workers

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	points, err := sweep.NewSweeper(nil).Run(ctx, sweepConf)
	if err != nil {
		return
	}

	curve := report.NewCurve(fmt.Sprintf("%s keys", sweepConf.Distribution), sweepConf.Technique, sweepConf.TableSize, points)
	w := writerOrStdout(S.out)

	switch S.Format {
	case "json":
		err = report.WriteJSON(w, curve)
	case "html":
		err = report.WriteHTML(w, curve)
	default:
		err = report.WriteText(w, curve)
	}

	return
}

// ServeCommand - Serves sweeps over http
type ServeCommand struct {
	ExperimentOptions
	Listen          string        `long:"listen" default:":8080" env:"HASHSWEEP_LISTEN" description:"address to listen on"`
	Workers         int           `short:"w" long:"workers" default:"4" env:"HASHSWEEP_WORKERS" description:"max number of points run concurrently per sweep"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" default:"10s" env:"HASHSWEEP_SHUTDOWN_TIMEOUT" description:"time given to in-flight requests on shutdown"`
}

// Execute - Implements flags.Commander
func (S *ServeCommand) Execute(_ []string) (err error) {
	baseConf, err := S.sweepConf()
	if err != nil {
		return
	}
	baseConf.Workers = S.Workers

	srv := server.NewServer(sweep.NewSweeper(nil), baseConf, nil)
	httpSrv := &http.Server{
		Addr:              S.Listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Noticef("listening on %s", S.Listen)
		serveErr <- httpSrv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		return
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), S.ShutdownTimeout)
	defer cancel()

	err = httpSrv.Shutdown(shutdownCtx)

	return
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
