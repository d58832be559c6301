package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"acspice/internal/consts"
	"acspice/pkg/component"
	"acspice/pkg/matrix"
)

// Point is one row of a sweep result: linear frequency in Hz,
// magnitude in dB and phase in degrees of the output-node voltage.
// A point whose solve hit a singular matrix carries NaN values.
type Point struct {
	Freq     float64
	MagDB    float64
	PhaseDeg float64
}

// ACSweep drives a logarithmic frequency sweep and extracts the
// response at one output node.
type ACSweep struct {
	outputNode      int
	inputSource     int
	startFreq       float64
	stopFreq        float64
	pointsPerDecade int
	frequencies     []float64
}

func NewAC(outputNode, inputSource int, fStart, fStop float64, pointsPerDecade int) *ACSweep {
	ac := &ACSweep{
		outputNode:      outputNode,
		inputSource:     inputSource,
		startFreq:       fStart,
		stopFreq:        fStop,
		pointsPerDecade: pointsPerDecade,
	}
	ac.generateFrequencyPoints()
	return ac
}

// generateFrequencyPoints lays out the sweep grid: over d decades at p
// points per decade there are ceil(d*p)+1 points inclusive of both
// endpoints, with point k at fStart*10^(k/p). A fractional decade span
// overshoots fStop rather than compressing the grid, keeping every
// point an exact power step from the start.
func (ac *ACSweep) generateFrequencyPoints() {
	decades := math.Log10(ac.stopFreq / ac.startFreq)
	points := int(math.Ceil(decades*float64(ac.pointsPerDecade))) + 1

	ac.frequencies = make([]float64, points)
	for k := range ac.frequencies {
		ac.frequencies[k] = ac.startFreq * math.Pow(10, float64(k)/float64(ac.pointsPerDecade))
	}
}

// Frequencies returns the sweep grid in ascending order.
func (ac *ACSweep) Frequencies() []float64 { return ac.frequencies }

// Run solves the circuit at each sweep point and reports the
// output-node response. Points come back fully materialized in
// ascending frequency order. A singular solve at one point yields a
// NaN row and the sweep continues.
func (ac *ACSweep) Run(components []component.Component, numNodes int) ([]Point, error) {
	if ac.outputNode <= consts.Ground || ac.outputNode > numNodes {
		return nil, fmt.Errorf("output node %d out of range 1..%d", ac.outputNode, numNodes)
	}
	if ac.inputSource < 0 || ac.inputSource >= len(components) {
		return nil, fmt.Errorf("input source index %d out of range", ac.inputSource)
	}
	if kind := components[ac.inputSource].Kind(); !kind.IsVoltageSource() && !kind.IsCurrentSource() {
		return nil, fmt.Errorf("component %d (%s) is not an independent source",
			ac.inputSource, components[ac.inputSource].Name())
	}

	solver, err := matrix.NewSolver(numNodes)
	if err != nil {
		return nil, fmt.Errorf("creating solver: %w", err)
	}
	defer solver.Destroy()

	points := make([]Point, len(ac.frequencies))
	for k, freq := range ac.frequencies {
		omega := 2 * math.Pi * freq
		voltages := solver.SolveAtFrequency(components, numNodes, omega)
		v := voltages[ac.outputNode-1]

		points[k] = Point{
			Freq:     freq,
			MagDB:    20 * math.Log10(cmplx.Abs(v)),
			PhaseDeg: cmplx.Phase(v) * consts.DegPerRad,
		}
	}

	return points, nil
}
