package qlight

import (
	"fmt"
	"strings"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellGate
	cellControl
	cellVertical
	cellBarrier
)

type cell struct {
	kind  cellKind
	label string
}

// Visualizer lays out a circuit as a grid of three-character cells, one
// row per qubit. Gates pack into the leftmost column whose rows are still
// free, so independent gates share a column.
type Visualizer struct {
	n       int
	columns [][]cell
	// lastUsed[q] is the index of the rightmost column touching qubit q,
	// or -1 when its wire is still empty.
	lastUsed []int
}

// NewVisualizer returns an empty diagram for n qubit wires.
func NewVisualizer(n int) *Visualizer {
	lastUsed := make([]int, n)
	for i := range lastUsed {
		lastUsed[i] = -1
	}
	return &Visualizer{n: n, lastUsed: lastUsed}
}

// columnFor returns the leftmost column free on every given row, growing
// the grid when all existing columns are taken.
func (v *Visualizer) columnFor(rows []int) int {
	col := 0
	for _, r := range rows {
		if v.lastUsed[r]+1 > col {
			col = v.lastUsed[r] + 1
		}
	}
	for len(v.columns) <= col {
		v.columns = append(v.columns, make([]cell, v.n))
	}
	return col
}

func (v *Visualizer) place(col int, row int, c cell) {
	v.columns[col][row] = c
	v.lastUsed[row] = col
}

// AppendStandalone adds a single-qubit gate box on the given wire.
func (v *Visualizer) AppendStandalone(name string, qubit int) {
	col := v.columnFor([]int{qubit})
	v.place(col, qubit, cell{kind: cellGate, label: name})
}

// AppendControlled adds a controlled gate: a box on the target wire,
// control dots on the control wires, and vertical connectors on every
// wire strictly between the outermost involved wires.
func (v *Visualizer) AppendControlled(name string, controls []int, target int) {
	lo, hi := target, target
	for _, c := range controls {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	span := make([]int, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		span = append(span, r)
	}
	col := v.columnFor(span)
	for _, r := range span {
		v.place(col, r, cell{kind: cellVertical})
	}
	for _, c := range controls {
		v.place(col, c, cell{kind: cellControl})
	}
	v.place(col, target, cell{kind: cellGate, label: name})
}

// AppendBarrier adds a barrier column across the given wires, or across
// every wire when none are given.
func (v *Visualizer) AppendBarrier(qubits []int) {
	rows := qubits
	if len(rows) == 0 {
		rows = make([]int, v.n)
		for i := range rows {
			rows[i] = i
		}
	}
	col := v.columnFor(rows)
	for _, r := range rows {
		v.place(col, r, cell{kind: cellBarrier})
	}
}

// String renders the grid, one line per qubit wire.
func (v *Visualizer) String() string {
	var sb strings.Builder
	for q := 0; q < v.n; q++ {
		sb.WriteString(qubitLabelStyle.Render(fmt.Sprintf("q_%d ", q)))
		sb.WriteString(wireStyle.Render("|0>"))
		for _, col := range v.columns {
			switch c := col[q]; c.kind {
			case cellGate:
				sb.WriteString(gateStyle.Render("|" + c.label + "|"))
			case cellControl:
				sb.WriteString(wireStyle.Render("─") + controlStyle.Render("■") + wireStyle.Render("─"))
			case cellVertical:
				sb.WriteString(wireStyle.Render("─│─"))
			case cellBarrier:
				sb.WriteString(barrierStyle.Render("─░─"))
			default:
				sb.WriteString(wireStyle.Render("───"))
			}
		}
		sb.WriteString(wireStyle.Render("─"))
		if q < v.n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Diagram renders the recorded gate operations as an ASCII wire diagram.
func (c *Circuit) Diagram() string {
	v := NewVisualizer(c.n)
	for _, op := range c.ops {
		switch {
		case op.Barrier:
			v.AppendBarrier(op.Targets)
		case len(op.Controls) > 0:
			v.AppendControlled(op.Kind.String(), op.Controls, op.Targets[0])
		default:
			for _, q := range op.Targets {
				v.AppendStandalone(op.Kind.String(), q)
			}
		}
	}
	return v.String()
}
