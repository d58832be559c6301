package component

// ACVoltageSource is an ideal sinusoidal voltage source. The first
// node is the positive terminal. Phase is stored in radians.
type ACVoltageSource struct {
	base
	amplitude float64
	phase     float64
}

func NewACVoltageSource(name string, nodePlus, nodeMinus int, amplitude, phase float64) *ACVoltageSource {
	return &ACVoltageSource{
		base:      base{name: name, nodes: []int{nodePlus, nodeMinus}},
		amplitude: amplitude,
		phase:     phase,
	}
}

func (v *ACVoltageSource) Kind() Kind { return KindACVoltageSource }

// Conductance is zero: an ideal voltage source has no admittance of
// its own, its constraint is applied as an MNA row overwrite.
func (v *ACVoltageSource) Conductance(from, to int, omega float64) complex128 { return 0 }

func (v *ACVoltageSource) Properties() []float64 { return []float64{v.amplitude, v.phase} }

func (v *ACVoltageSource) SetProperties(props []float64) {
	v.amplitude = props[0]
	v.phase = props[1]
}

// DCVoltageSource is an ideal constant voltage source. Its
// small-signal AC value is zero; it still pins its node.
type DCVoltageSource struct {
	base
	voltage float64
}

func NewDCVoltageSource(name string, nodePlus, nodeMinus int, voltage float64) *DCVoltageSource {
	return &DCVoltageSource{
		base:    base{name: name, nodes: []int{nodePlus, nodeMinus}},
		voltage: voltage,
	}
}

func (v *DCVoltageSource) Kind() Kind { return KindDCVoltageSource }

func (v *DCVoltageSource) Conductance(from, to int, omega float64) complex128 { return 0 }

func (v *DCVoltageSource) Properties() []float64 { return []float64{v.voltage} }

func (v *DCVoltageSource) SetProperties(props []float64) { v.voltage = props[0] }
