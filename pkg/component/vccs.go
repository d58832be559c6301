package component

// VCCS is a voltage-controlled current source: a current
// gm*(V(ctrlPlus) - V(ctrlMinus)) flows from outPlus through the
// source to outMinus. Nodes are ordered out+, out-, ctrl+, ctrl-.
type VCCS struct {
	base
	gm float64
}

func NewVCCS(name string, outPlus, outMinus, ctrlPlus, ctrlMinus int, gm float64) *VCCS {
	return &VCCS{
		base: base{name: name, nodes: []int{outPlus, outMinus, ctrlPlus, ctrlMinus}},
		gm:   gm,
	}
}

func (g *VCCS) Kind() Kind { return KindVCCS }

// Conductance returns the signed transconductance coupling an output
// node row to a control node column. It is intentionally asymmetric:
// swapping from and to does not, in general, give the same value.
func (g *VCCS) Conductance(from, to int, omega float64) complex128 {
	outPlus, outMinus := g.nodes[0], g.nodes[1]
	ctrlPlus, ctrlMinus := g.nodes[2], g.nodes[3]

	var sign float64
	switch {
	case from == outPlus && to == ctrlPlus:
		sign = 1
	case from == outPlus && to == ctrlMinus:
		sign = -1
	case from == outMinus && to == ctrlPlus:
		sign = -1
	case from == outMinus && to == ctrlMinus:
		sign = 1
	default:
		return 0
	}
	return complex(sign*g.gm, 0)
}

func (g *VCCS) Properties() []float64 { return []float64{g.gm} }

func (g *VCCS) SetProperties(props []float64) { g.gm = props[0] }
