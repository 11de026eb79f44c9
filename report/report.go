// Package report renders sweep curves as text tables, JSON or an HTML page.
package report

import (
	"encoding/json"
	"fmt"
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/sweep"
	"io"
	"text/tabwriter"
)

// Curve - A named sweep ready to be rendered
//   - Title is a heading for the curve
//   - Technique is the collision resolution technique the points were run with
//   - Points are the sweep points in load factor order
type Curve struct {
	Title     string        `json:"title"`
	Technique string        `json:"technique"`
	TableSize int64         `json:"table_size"`
	Points    []sweep.Point `json:"points"`

	technique int
}

// NewCurve - Returns a Curve for the given points
func NewCurve(title string, technique int, tableSize int64, points []sweep.Point) Curve {
	return Curve{
		Title:     title,
		Technique: crt.Name(technique),
		TableSize: tableSize,
		Points:    points,
		technique: technique,
	}
}

// showProbes - Probes are only meaningful for Linear Probing
func (C Curve) showProbes() bool {
	return C.technique == crt.LinearProbing
}

// WriteText - Writes the curve as an aligned table
func WriteText(w io.Writer, curve Curve) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	_, err = fmt.Fprintf(w, "%s (%s, table size %d)\n", curve.Title, curve.Technique, curve.TableSize)
	if err != nil {
		return
	}

	if curve.showProbes() {
		_, err = fmt.Fprintln(tw, "load factor\tkeys\tinserts\tcollisions\tprobes\tavg probes\tlongest cluster\t")
	} else {
		_, err = fmt.Fprintln(tw, "load factor\tkeys\tinserts\tcollisions\tlongest chain\t")
	}
	if err != nil {
		return
	}

	for _, p := range curve.Points {
		if curve.showProbes() {
			_, err = fmt.Fprintf(tw, "%.2f\t%d\t%d\t%d\t%d\t%.2f\t%d\t\n",
				p.LoadFactor, p.Keys, p.Stats.TotalInserts, p.Stats.TotalCollisions, p.Stats.TotalProbes, p.AvgProbesPerInsert, p.LongestRun)
		} else {
			_, err = fmt.Fprintf(tw, "%.2f\t%d\t%d\t%d\t%d\t\n",
				p.LoadFactor, p.Keys, p.Stats.TotalInserts, p.Stats.TotalCollisions, p.LongestRun)
		}
		if err != nil {
			return
		}
	}

	err = tw.Flush()

	return
}

// WriteJSON - Writes the curve as indented JSON
func WriteJSON(w io.Writer, curve Curve) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(curve)

	return
}

// WriteHTML - Writes the curve as a standalone HTML page
func WriteHTML(w io.Writer, curve Curve) (err error) {
	err = HTML(curve).Render(w)

	return
}
