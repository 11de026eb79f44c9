package report

import (
	"fmt"
	"github.com/gostonefire/hashsweep/sweep"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const stylesheet = `
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { padding: 0.25rem 0.75rem; text-align: right; border-bottom: 1px solid #ddd; }
.bar { height: 0.8rem; background: #3b82f6; }
.bar.probes { background: #f97316; }
.cell-bar { width: 20rem; text-align: left; }
`

// HTML - Returns the curve as an HTML5 page holding the table and one bar per point,
// scaled to the largest collision count (and largest average probe count for Linear Probing).
func HTML(curve Curve) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    curve.Title,
		Language: "en",
		Head:     []g.Node{h.StyleEl(g.Raw(stylesheet))},
		Body: []g.Node{
			h.H1(g.Text(curve.Title)),
			h.P(g.Text(fmt.Sprintf("%s, table size %d", curve.Technique, curve.TableSize))),
			renderTable(curve),
		},
	})
}

func renderTable(curve Curve) g.Node {
	collisionsMax := maxCollisions(curve.Points)
	avgProbesMax := maxAvgProbes(curve.Points)

	rows := []g.Node{h.Class("curve"), headerRow(curve)}
	for _, p := range curve.Points {
		rows = append(rows, pointRow(curve, p, collisionsMax, avgProbesMax))
	}

	return h.Table(rows...)
}

// headerRow - Column headings, probe columns only for Linear Probing
func headerRow(curve Curve) g.Node {
	cells := []g.Node{
		h.Th(g.Text("Load factor")),
		h.Th(g.Text("Keys")),
		h.Th(g.Text("Inserts")),
		h.Th(g.Text("Collisions")),
	}
	if curve.showProbes() {
		cells = append(cells, h.Th(g.Text("Probes")), h.Th(g.Text("Avg probes")))
	}
	cells = append(cells, h.Th(g.Text("Longest run")), h.Th(g.Text("Collision curve")))
	if curve.showProbes() {
		cells = append(cells, h.Th(g.Text("Probe curve")))
	}

	return h.Tr(cells...)
}

// pointRow - One table row per point
func pointRow(curve Curve, p sweep.Point, collisionsMax int64, avgProbesMax float64) g.Node {
	cells := []g.Node{
		h.Td(g.Text(fmt.Sprintf("%.2f", p.LoadFactor))),
		h.Td(g.Text(fmt.Sprintf("%d", p.Keys))),
		h.Td(g.Text(fmt.Sprintf("%d", p.Stats.TotalInserts))),
		h.Td(g.Text(fmt.Sprintf("%d", p.Stats.TotalCollisions))),
	}
	if curve.showProbes() {
		cells = append(cells,
			h.Td(g.Text(fmt.Sprintf("%d", p.Stats.TotalProbes))),
			h.Td(g.Text(fmt.Sprintf("%.2f", p.AvgProbesPerInsert))),
		)
	}
	cells = append(cells,
		h.Td(g.Text(fmt.Sprintf("%d", p.LongestRun))),
		h.Td(h.Class("cell-bar"), bar("bar", share(float64(p.Stats.TotalCollisions), float64(collisionsMax)))),
	)
	if curve.showProbes() {
		cells = append(cells, h.Td(h.Class("cell-bar"), bar("bar probes", share(p.AvgProbesPerInsert, avgProbesMax))))
	}

	return h.Tr(cells...)
}

// bar - A horizontal bar covering percent of its cell
func bar(class string, percent float64) g.Node {
	return h.Div(h.Class(class), h.Style(fmt.Sprintf("width: %.1f%%", percent)))
}

// share - Returns v as percent of maxValue, 0 (zero) if maxValue is 0 (zero)
func share(v, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return 100 * v / maxValue
}

func maxCollisions(points []sweep.Point) (m int64) {
	for _, p := range points {
		if p.Stats.TotalCollisions > m {
			m = p.Stats.TotalCollisions
		}
	}
	return
}

func maxAvgProbes(points []sweep.Point) (m float64) {
	for _, p := range points {
		if p.AvgProbesPerInsert > m {
			m = p.AvgProbesPerInsert
		}
	}
	return
}
