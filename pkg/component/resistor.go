package component

type Resistor struct {
	base
	resistance float64
}

func NewResistor(name string, n1, n2 int, resistance float64) *Resistor {
	return &Resistor{
		base:       base{name: name, nodes: []int{n1, n2}},
		resistance: resistance,
	}
}

func (r *Resistor) Kind() Kind { return KindResistor }

// Conductance is direction-independent: G = 1/R regardless of the
// node order it is evaluated with.
func (r *Resistor) Conductance(from, to int, omega float64) complex128 {
	return complex(1.0/r.resistance, 0)
}

func (r *Resistor) Properties() []float64 { return []float64{r.resistance} }

func (r *Resistor) SetProperties(props []float64) { r.resistance = props[0] }
