//go:build unit

package server

import (
	"encoding/json"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/keygen"
	"github.com/gostonefire/hashsweep/sweep"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	logger := logging.MustGetLogger("testServer")
	baseConf := sweep.Conf{
		TableSize:    101,
		Technique:    crt.LinearProbing,
		Distribution: keygen.Uniform,
		Seed:         1,
		Workers:      2,
	}

	return NewServer(sweep.NewSweeper(logger), baseConf, logger)
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestServer_Sweep(t *testing.T) {
	t.Run("html report by default", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		rec := serve(s, http.MethodGet, "/sweep?technique=chaining&distribution=clustered")

		// Check
		assert.Equal(t, http.StatusOK, rec.Code, "status")
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "<title>Clustered keys</title>")
		assert.Contains(t, rec.Body.String(), "Separate Chaining, table size 101")
	})

	t.Run("json report on request", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		rec := serve(s, http.MethodGet, "/sweep?format=json&size=211&seed=7")

		// Check
		assert.Equal(t, http.StatusOK, rec.Code, "status")
		var curve struct {
			Technique string        `json:"technique"`
			TableSize int64         `json:"table_size"`
			Points    []sweep.Point `json:"points"`
		}
		err := json.Unmarshal(rec.Body.Bytes(), &curve)
		assert.NoError(t, err, "decode body")
		assert.Equal(t, "Linear Probing", curve.Technique)
		assert.Equal(t, int64(211), curve.TableSize)
		assert.Len(t, curve.Points, 9, "default load factors")
	})

	t.Run("bad parameters are a client error", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		for _, target := range []string{
			"/sweep?technique=quadratic",
			"/sweep?distribution=normal",
			"/sweep?size=abc",
			"/sweep?size=-5",
			"/sweep?size=0",
			"/run?size=0",
			"/run?size=-3",
			"/sweep?size=99999999",
			"/sweep?seed=1.5",
		} {
			// Execute
			rec := serve(s, http.MethodGet, target)

			// Check
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("root redirects to sweep", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		rec := serve(s, http.MethodGet, "/")

		// Check
		assert.Equal(t, http.StatusFound, rec.Code, "status")
		assert.Equal(t, "/sweep", rec.Header().Get("Location"))
	})
}

func TestServer_Run(t *testing.T) {
	t.Run("single experiment as json", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		rec := serve(s, http.MethodGet, "/run?load_factor=0.5&seed=3")

		// Check
		assert.Equal(t, http.StatusOK, rec.Code, "status")
		var point sweep.Point
		err := json.Unmarshal(rec.Body.Bytes(), &point)
		assert.NoError(t, err, "decode body")
		assert.Equal(t, 50, point.Keys, "int(101 * 0.5)")
		assert.Equal(t, int64(50), point.Stats.TotalInserts, "uniform keys are distinct")
		assert.InDelta(t, 0.5, point.LoadFactor, 1e-9)
	})

	t.Run("load factor out of range", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		recHigh := serve(s, http.MethodGet, "/run?load_factor=1.5")
		recText := serve(s, http.MethodGet, "/run?load_factor=half")

		// Check
		assert.Equal(t, http.StatusBadRequest, recHigh.Code)
		assert.Equal(t, http.StatusBadRequest, recText.Code)
	})

	t.Run("only GET is routed", func(t *testing.T) {
		// Prepare
		s := newTestServer()

		// Execute
		rec := serve(s, http.MethodPost, "/run")

		// Check
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestServer_Metrics(t *testing.T) {
	t.Run("exposes sweep metrics", func(t *testing.T) {
		// Prepare
		s := newTestServer()
		rec := serve(s, http.MethodGet, "/run?technique=linear&distribution=skewed")
		assert.Equal(t, http.StatusOK, rec.Code, "prepare run")

		// Execute
		rec = serve(s, http.MethodGet, "/metrics")

		// Check
		assert.Equal(t, http.StatusOK, rec.Code, "status")
		body := rec.Body.String()
		assert.True(t, strings.Contains(body, `hashsweep_sweep_runs_total{distribution="skewed",technique="linear"}`), "runs counter")
		assert.Contains(t, body, "hashsweep_sweep_probes_per_insert_bucket")
	})
}
