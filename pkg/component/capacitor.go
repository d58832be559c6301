package component

type Capacitor struct {
	base
	capacitance float64
}

func NewCapacitor(name string, n1, n2 int, capacitance float64) *Capacitor {
	return &Capacitor{
		base:        base{name: name, nodes: []int{n1, n2}},
		capacitance: capacitance,
	}
}

func (c *Capacitor) Kind() Kind { return KindCapacitor }

// Conductance is the capacitor admittance jwC.
func (c *Capacitor) Conductance(from, to int, omega float64) complex128 {
	return complex(0, omega*c.capacitance)
}

func (c *Capacitor) Properties() []float64 { return []float64{c.capacitance} }

func (c *Capacitor) SetProperties(props []float64) { c.capacitance = props[0] }
