package component

type Inductor struct {
	base
	inductance float64
}

func NewInductor(name string, n1, n2 int, inductance float64) *Inductor {
	return &Inductor{
		base:       base{name: name, nodes: []int{n1, n2}},
		inductance: inductance,
	}
}

func (l *Inductor) Kind() Kind { return KindInductor }

// Conductance is the inductor admittance 1/(jwL) = -j/(wL). At omega
// zero this is -Inf, which is the honest answer for an ideal inductor
// at DC; AC sweeps start above zero.
func (l *Inductor) Conductance(from, to int, omega float64) complex128 {
	return complex(0, -1.0/(omega*l.inductance))
}

func (l *Inductor) Properties() []float64 { return []float64{l.inductance} }

func (l *Inductor) SetProperties(props []float64) { l.inductance = props[0] }
