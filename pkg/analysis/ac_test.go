package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acspice/pkg/component"
)

func dividerCircuit() []component.Component {
	return []component.Component{
		component.NewACVoltageSource("V1", 1, 0, 1, 0),
		component.NewResistor("R1", 1, 2, 3000),
		component.NewResistor("R2", 2, 0, 1000),
	}
}

func rcLowPass() []component.Component {
	// Corner at omega = 1/RC = 1000 rad/s, about 159.2 Hz.
	return []component.Component{
		component.NewACVoltageSource("V1", 1, 0, 1, 0),
		component.NewResistor("R1", 1, 2, 1000),
		component.NewCapacitor("C1", 2, 0, 1e-6),
	}
}

// Ten points per decade over exactly two decades: 21 points inclusive
// of both endpoints, point k at fstart*10^(k/10).
func TestFrequencyGrid(t *testing.T) {
	ac := NewAC(1, 0, 10, 1000, 10)
	freqs := ac.Frequencies()

	require.Len(t, freqs, 21)
	for k, f := range freqs {
		assert.Equal(t, 10*math.Pow(10, float64(k)/10), f, "point %d", k)
	}
	assert.Equal(t, 10.0, freqs[0])
	assert.InDelta(t, 1000.0, freqs[20], 1e-9)
}

func TestFrequencyGridFractionalDecade(t *testing.T) {
	// 1.5 decades at 4 points/decade: ceil(6)+1 = 7 points, the last
	// one past fstop rather than compressing the spacing.
	ac := NewAC(1, 0, 100, 100*math.Sqrt(1000), 4)
	freqs := ac.Frequencies()

	require.Len(t, freqs, 7)
	assert.Greater(t, freqs[6], 100*math.Sqrt(1000)*0.999)
}

// A resistor divider is flat in frequency: every point sits at the
// analytic ratio with zero phase.
func TestRunResistorDividerFlat(t *testing.T) {
	ac := NewAC(2, 0, 10, 1000, 10)
	points, err := ac.Run(dividerCircuit(), 2)
	require.NoError(t, err)
	require.Len(t, points, 21)

	wantDB := 20 * math.Log10(0.25) // 1k/(3k+1k)
	for _, p := range points {
		assert.InDelta(t, wantDB, p.MagDB, 1e-9, "f=%g", p.Freq)
		assert.InDelta(t, 0, p.PhaseDeg, 1e-9, "f=%g", p.Freq)
	}
}

func TestRunRCLowPass(t *testing.T) {
	ac := NewAC(2, 0, 1, 100e3, 10)
	points, err := ac.Run(rcLowPass(), 2)
	require.NoError(t, err)

	const rc = 1e-3
	for _, p := range points {
		omega := 2 * math.Pi * p.Freq
		wantMag := 20 * math.Log10(1/math.Sqrt(1+omega*omega*rc*rc))
		wantPhase := -math.Atan(omega*rc) * 180 / math.Pi
		assert.InDelta(t, wantMag, p.MagDB, 1e-6, "f=%g", p.Freq)
		assert.InDelta(t, wantPhase, p.PhaseDeg, 1e-6, "f=%g", p.Freq)
	}

	// Roll-off: one decade above the corner costs close to 20 dB.
	first, last := points[0], points[len(points)-1]
	assert.InDelta(t, 0, first.MagDB, 0.01)
	assert.Less(t, last.MagDB, -50.0)
	assert.InDelta(t, -90.0, last.PhaseDeg, 1.0)
}

// A floating node makes every solve singular: the sweep completes with
// NaN rows instead of failing.
func TestRunFloatingNodeContinues(t *testing.T) {
	ac := NewAC(2, 0, 10, 1000, 5)
	points, err := ac.Run(dividerCircuit(), 3) // node 3 is unconnected
	require.NoError(t, err)
	require.Len(t, points, 11)

	for _, p := range points {
		assert.True(t, math.IsNaN(p.MagDB), "f=%g", p.Freq)
		assert.True(t, math.IsNaN(p.PhaseDeg), "f=%g", p.Freq)
	}
}

// Two sources fighting over one node resolve deterministically: the
// later source's overwrite wins.
func TestRunDuellingVoltageSources(t *testing.T) {
	components := []component.Component{
		component.NewACVoltageSource("V1", 1, 0, 1, 0),
		component.NewACVoltageSource("V2", 1, 0, 2, 0),
		component.NewResistor("R1", 1, 0, 1000),
	}

	ac := NewAC(1, 0, 10, 100, 5)
	points, err := ac.Run(components, 1)
	require.NoError(t, err)

	for _, p := range points {
		assert.InDelta(t, 20*math.Log10(2), p.MagDB, 1e-9, "f=%g", p.Freq)
	}
}

func TestRunValidation(t *testing.T) {
	components := dividerCircuit()

	_, err := NewAC(0, 0, 10, 100, 5).Run(components, 2)
	assert.Error(t, err, "ground is not a valid output node")

	_, err = NewAC(3, 0, 10, 100, 5).Run(components, 2)
	assert.Error(t, err, "output node beyond highest node")

	_, err = NewAC(2, 5, 10, 100, 5).Run(components, 2)
	assert.Error(t, err, "source index out of range")

	_, err = NewAC(2, 1, 10, 100, 5).Run(components, 2)
	assert.Error(t, err, "R1 is not an independent source")
}

func TestRunPhaseFollowsSourcePhase(t *testing.T) {
	components := []component.Component{
		component.NewACVoltageSource("V1", 1, 0, 1, math.Pi/4),
		component.NewResistor("R1", 1, 0, 1000),
	}

	ac := NewAC(1, 0, 100, 100, 1)
	points, err := ac.Run(components, 1)
	require.NoError(t, err)
	require.NotEmpty(t, points)
	assert.InDelta(t, 45.0, points[0].PhaseDeg, 1e-9)
}
