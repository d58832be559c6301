package component

// Kind identifies a component variant. The assembler selects stamp
// behavior by switching on Kind, never by downcasting.
type Kind int

const (
	KindResistor Kind = iota
	KindCapacitor
	KindInductor
	KindVCCS
	KindACVoltageSource
	KindDCVoltageSource
	KindACCurrentSource
	KindDCCurrentSource
)

func (k Kind) String() string {
	switch k {
	case KindResistor:
		return "R"
	case KindCapacitor:
		return "C"
	case KindInductor:
		return "L"
	case KindVCCS:
		return "G"
	case KindACVoltageSource:
		return "V(AC)"
	case KindDCVoltageSource:
		return "V(DC)"
	case KindACCurrentSource:
		return "I(AC)"
	case KindDCCurrentSource:
		return "I(DC)"
	default:
		return "?"
	}
}

func (k Kind) IsVoltageSource() bool {
	return k == KindACVoltageSource || k == KindDCVoltageSource
}

func (k Kind) IsCurrentSource() bool {
	return k == KindACCurrentSource || k == KindDCCurrentSource
}

// IsDC reports whether the source holds a constant value. DC sources
// contribute no small-signal excitation.
func (k Kind) IsDC() bool {
	return k == KindDCVoltageSource || k == KindDCCurrentSource
}

// Component is the contract every circuit element exposes to the
// analysis core. Node id 0 is the ground reference; real nodes are
// numbered 1..N. Components are owned by the caller and only read
// through this interface during a run.
type Component interface {
	Name() string
	Kind() Kind

	// Nodes returns the connected node ids in declaration order.
	// Two entries for two-terminal elements; the VCCS lists its
	// output pair followed by its control pair.
	Nodes() []int

	// Conductance returns the element's complex admittance
	// contribution between two of its nodes at angular frequency
	// omega. The two directions are evaluated independently by the
	// assembler and need not be symmetric.
	Conductance(from, to int, omega float64) complex128

	// Properties returns the element parameter vector: [amplitude,
	// phase] for AC sources (phase in radians), [value] for DC
	// sources and passives.
	Properties() []float64

	// SetProperties replaces the parameter vector. Used by the DC
	// operating-point collaborator to install companion-model values;
	// the AC core never calls it.
	SetProperties(props []float64)
}

type base struct {
	name  string
	nodes []int
}

func (b *base) Name() string { return b.name }

func (b *base) Nodes() []int { return b.nodes }
