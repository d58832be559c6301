package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"acspice/internal/consts"
	"acspice/pkg/component"
)

// row maps a 1-based node id to its matrix row/column. Ground (node 0)
// has no row; this is the single conversion point between node ids and
// array indices.
func row(node int) int { return node - 1 }

// Conductance assembles the N x N complex nodal conductance matrix for
// one angular frequency. Stamping runs in two passes: every non-source
// element accumulates its admittance stamps in component-list order,
// then each voltage source overwrites its constraint row in the order
// the sources were discovered. The overwrite pass runs last so that a
// voltage-source constraint always wins regardless of list order, and
// so that on a node shared by two sources the later one wins.
func Conductance(components []component.Component, numNodes int, omega float64) *mat.CDense {
	g := mat.NewCDense(numNodes, numNodes, nil)

	var voltageSources []component.Component
	for _, comp := range components {
		switch kind := comp.Kind(); {
		case kind.IsCurrentSource():
			// Stamps the excitation vector only.
		case kind.IsVoltageSource():
			voltageSources = append(voltageSources, comp)
		case kind == component.KindVCCS:
			stampTransconductance(g, comp, omega)
		default:
			stampTwoTerminal(g, comp, omega)
		}
	}

	for _, src := range voltageSources {
		stampVoltageSource(g, src)
	}

	return g
}

// stampTwoTerminal accumulates the admittance quad of a two-terminal
// element. The two mutual terms are evaluated independently in each
// direction; passives return the same value both ways but dependent
// elements may not, so symmetry is never assumed. Terms touching
// ground are skipped, ground has no row or column.
func stampTwoTerminal(g *mat.CDense, comp component.Component, omega float64) {
	nodes := comp.Nodes()
	a, b := nodes[0], nodes[1]

	if a != consts.Ground && b != consts.Ground {
		i, j := row(a), row(b)
		g.Set(i, j, g.At(i, j)-comp.Conductance(a, b, omega))
		g.Set(j, i, g.At(j, i)-comp.Conductance(b, a, omega))
	}
	if a != consts.Ground {
		i := row(a)
		g.Set(i, i, g.At(i, i)+comp.Conductance(a, b, omega))
	}
	if b != consts.Ground {
		j := row(b)
		g.Set(j, j, g.At(j, j)+comp.Conductance(b, a, omega))
	}
}

// stampTransconductance accumulates the four-entry VCCS pattern: each
// non-ground output row is coupled to each non-ground control column
// with the signed transconductance the component reports for that pair.
func stampTransconductance(g *mat.CDense, comp component.Component, omega float64) {
	nodes := comp.Nodes()
	for _, out := range nodes[:2] {
		if out == consts.Ground {
			continue
		}
		for _, ctrl := range nodes[2:] {
			if ctrl == consts.Ground {
				continue
			}
			i, j := row(out), row(ctrl)
			g.Set(i, j, g.At(i, j)+comp.Conductance(out, ctrl, omega))
		}
	}
}

// stampVoltageSource replaces a KCL row with the direct voltage
// definition V(plus) - V(minus) = forced value. Whichever terminal is
// non-ground owns the row; when only the minus terminal is live the
// diagonal carries -1 to match the sign convention of the excitation
// vector. Equal terminals are a degenerate no-op.
func stampVoltageSource(g *mat.CDense, src component.Component) {
	nodes := src.Nodes()
	nodePlus, nodeMinus := nodes[0], nodes[1]
	if nodePlus == nodeMinus {
		return
	}

	switch {
	case nodePlus != consts.Ground && nodeMinus != consts.Ground:
		zeroRow(g, row(nodePlus))
		g.Set(row(nodePlus), row(nodePlus), 1)
		g.Set(row(nodePlus), row(nodeMinus), -1)
	case nodePlus != consts.Ground:
		zeroRow(g, row(nodePlus))
		g.Set(row(nodePlus), row(nodePlus), 1)
	default:
		zeroRow(g, row(nodeMinus))
		g.Set(row(nodeMinus), row(nodeMinus), -1)
	}
}

func zeroRow(g *mat.CDense, i int) {
	_, cols := g.Dims()
	for j := 0; j < cols; j++ {
		g.Set(i, j, 0)
	}
}

// Excitation assembles the length-N complex current vector. AC current
// sources accumulate their phasor into the rows of their terminals;
// DC current sources carry no small-signal excitation and stamp
// nothing. Voltage sources overwrite their forced row last, in
// discovery order, mirroring the matrix pass.
func Excitation(components []component.Component, numNodes int) []complex128 {
	rhs := make([]complex128, numNodes)

	var voltageSources []component.Component
	for _, comp := range components {
		switch comp.Kind() {
		case component.KindACCurrentSource:
			props := comp.Properties()
			current := cmplx.Rect(props[0], props[1])
			nodes := comp.Nodes()
			if nodes[0] != consts.Ground {
				rhs[row(nodes[0])] -= current
			}
			if nodes[1] != consts.Ground {
				rhs[row(nodes[1])] += current
			}
		case component.KindACVoltageSource, component.KindDCVoltageSource:
			voltageSources = append(voltageSources, comp)
		}
	}

	for _, src := range voltageSources {
		forceVoltage(rhs, src)
	}

	return rhs
}

// forceVoltage writes (not accumulates) the forced phasor into the row
// owned by the source: the plus terminal's row when it is non-ground,
// otherwise the minus terminal's. A DC source forces zero, the AC
// small-signal value of a constant level.
func forceVoltage(rhs []complex128, src component.Component) {
	nodes := src.Nodes()
	nodePlus, nodeMinus := nodes[0], nodes[1]
	if nodePlus == nodeMinus {
		return
	}

	var voltage complex128
	if !src.Kind().IsDC() {
		props := src.Properties()
		voltage = cmplx.Rect(props[0], props[1])
	}

	forced := nodePlus
	if nodePlus == consts.Ground {
		forced = nodeMinus
	}
	rhs[row(forced)] = voltage
}
