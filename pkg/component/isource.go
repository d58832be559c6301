package component

// ACCurrentSource is an ideal sinusoidal current source driving
// current from its first node into its second. Phase is in radians.
type ACCurrentSource struct {
	base
	amplitude float64
	phase     float64
}

func NewACCurrentSource(name string, nodeIn, nodeOut int, amplitude, phase float64) *ACCurrentSource {
	return &ACCurrentSource{
		base:      base{name: name, nodes: []int{nodeIn, nodeOut}},
		amplitude: amplitude,
		phase:     phase,
	}
}

func (i *ACCurrentSource) Kind() Kind { return KindACCurrentSource }

func (i *ACCurrentSource) Conductance(from, to int, omega float64) complex128 { return 0 }

func (i *ACCurrentSource) Properties() []float64 { return []float64{i.amplitude, i.phase} }

func (i *ACCurrentSource) SetProperties(props []float64) {
	i.amplitude = props[0]
	i.phase = props[1]
}

// DCCurrentSource is an ideal constant current source. It carries no
// small-signal excitation, so AC analysis ignores it entirely.
type DCCurrentSource struct {
	base
	current float64
}

func NewDCCurrentSource(name string, nodeIn, nodeOut int, current float64) *DCCurrentSource {
	return &DCCurrentSource{
		base:    base{name: name, nodes: []int{nodeIn, nodeOut}},
		current: current,
	}
}

func (i *DCCurrentSource) Kind() Kind { return KindDCCurrentSource }

func (i *DCCurrentSource) Conductance(from, to int, omega float64) complex128 { return 0 }

func (i *DCCurrentSource) Properties() []float64 { return []float64{i.current} }

func (i *DCCurrentSource) SetProperties(props []float64) { i.current = props[0] }
