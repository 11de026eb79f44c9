// Package server exposes sweeps and single experiments over HTTP together with the prometheus metrics
// collected while running them.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/conf"
	"github.com/gostonefire/hashsweep/keygen"
	"github.com/gostonefire/hashsweep/report"
	"github.com/gostonefire/hashsweep/sweep"
	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Server - Routes HTTP requests to a Sweeper
type Server struct {
	sweeper  *sweep.Sweeper
	baseConf sweep.Conf
	logger   *logging.Logger
	router   *mux.Router
}

// NewServer - Returns a new Server
//   - sweeper runs the requested sweeps and experiments
//   - baseConf holds the values used when a request leaves a parameter out
//   - logger is the request logger, a nil logger gives the package default
func NewServer(sweeper *sweep.Sweeper, baseConf sweep.Conf, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.MustGetLogger("server")
	}

	S := &Server{
		sweeper:  sweeper,
		baseConf: baseConf,
		logger:   logger,
		router:   mux.NewRouter(),
	}
	S.routes()

	return S
}

// Router - Returns the http.Handler to be used by an http.Server
func (S *Server) Router() http.Handler {
	return S.router
}

func (S *Server) routes() {
	S.router.Use(S.logRequests)

	S.router.HandleFunc("/sweep", S.handleSweep()).Methods(http.MethodGet)
	S.router.HandleFunc("/run", S.handleRun()).Methods(http.MethodGet)
	S.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	S.router.Handle("/", http.RedirectHandler("/sweep", http.StatusFound)).Methods(http.MethodGet)
}

// logRequests - Logs method, path, and duration of every request at debug level
func (S *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		S.logger.Debugf("%s %s in %s", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

// handleSweep - Runs a full sweep and returns it as an HTML report, or JSON if format=json
func (S *Server) handleSweep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		sweepConf, err := S.parseConf(query)
		if err != nil {
			S.writeError(w, err)
			return
		}

		points, err := S.sweeper.Run(r.Context(), sweepConf)
		if err != nil {
			S.writeError(w, err)
			return
		}

		curve := report.NewCurve(
			fmt.Sprintf("%s keys", sweepConf.Distribution),
			sweepConf.Technique,
			sweepConf.TableSize,
			points,
		)

		if query.Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json")
			err = report.WriteJSON(w, curve)
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			err = report.WriteHTML(w, curve)
		}
		if err != nil {
			S.logger.Errorf("error while writing sweep response: %s", err)
		}
	}
}

// handleRun - Runs a single experiment and returns its point as JSON
func (S *Server) handleRun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		sweepConf, err := S.parseConf(query)
		if err != nil {
			S.writeError(w, err)
			return
		}

		loadFactor := conf.DefaultLoadFactor
		if v := query.Get("load_factor"); v != "" {
			loadFactor, err = strconv.ParseFloat(v, 64)
			if err != nil {
				S.writeError(w, crt.NewInvalidConfig(fmt.Sprintf("load_factor is not a number: %s", v)))
				return
			}
		}

		point, err := S.sweeper.RunPoint(sweepConf, loadFactor, sweepConf.Seed)
		if err != nil {
			S.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(point)
		if err != nil {
			S.logger.Errorf("error while writing run response: %s", err)
		}
	}
}

// parseConf - Returns the base configuration overridden by the technique, distribution, size, and seed
// query parameters
func (S *Server) parseConf(query url.Values) (sweepConf sweep.Conf, err error) {
	sweepConf = S.baseConf

	if v := query.Get("technique"); v != "" {
		sweepConf.Technique, err = crt.Parse(v)
		if err != nil {
			return
		}
	}

	if v := query.Get("distribution"); v != "" {
		sweepConf.Distribution, err = keygen.ParseDistribution(v)
		if err != nil {
			return
		}
	}

	if v := query.Get("size"); v != "" {
		sweepConf.TableSize, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			err = crt.NewInvalidConfig(fmt.Sprintf("size is not an integer: %s", v))
			return
		}
		if sweepConf.TableSize <= 0 {
			err = crt.NewInvalidConfig(fmt.Sprintf("size must be a positive value higher than 0 (zero), got %d", sweepConf.TableSize))
			return
		}
		if sweepConf.TableSize > conf.MaxServedTableSize {
			err = crt.NewInvalidConfig(fmt.Sprintf("size must not exceed %d", conf.MaxServedTableSize))
			return
		}
	}

	if v := query.Get("seed"); v != "" {
		sweepConf.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			err = crt.NewInvalidConfig(fmt.Sprintf("seed is not an integer: %s", v))
			return
		}
	}

	return
}

// writeError - Configuration errors are the caller's fault, anything else is ours
func (S *Server) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, crt.InvalidConfig{}) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	S.logger.Errorf("error while serving request: %s", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
