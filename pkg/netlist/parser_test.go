package netlist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acspice/pkg/component"
)

const rcNetlist = `* RC low-pass filter
V1 1 0 AC 1 0
R1 1 2 1k
C1 2 0 1u
.ac 10 10 100k
.out 2
.end
`

func TestParseRCNetlist(t *testing.T) {
	nl, err := Parse(rcNetlist)
	require.NoError(t, err)

	assert.Equal(t, "RC low-pass filter", nl.Title)
	assert.Equal(t, 2, nl.NumNodes)
	assert.Equal(t, 2, nl.OutputNode)
	assert.Equal(t, 10, nl.ACParam.PointsPerDecade)
	assert.Equal(t, 10.0, nl.ACParam.FStart)
	assert.Equal(t, 100e3, nl.ACParam.FStop)

	require.Len(t, nl.Components, 3)
	assert.Equal(t, component.KindACVoltageSource, nl.Components[0].Kind())
	assert.Equal(t, component.KindResistor, nl.Components[1].Kind())
	assert.Equal(t, component.KindCapacitor, nl.Components[2].Kind())
	assert.Equal(t, []int{1, 2}, nl.Components[1].Nodes())
	assert.InDelta(t, 1000.0, nl.Components[1].Properties()[0], 1e-12)
	assert.InDelta(t, 1e-6, nl.Components[2].Properties()[0], 1e-18)

	assert.Equal(t, 0, nl.DefaultInputSource())
}

func TestParseSourceVariants(t *testing.T) {
	nl, err := Parse(`* sources
V1 1 0 AC 2 90
V2 2 0 DC 5
V3 3 0 12
I1 1 2 AC 1m 0
I2 2 3 DC 10m
G1 3 0 1 0 20m
`)
	require.NoError(t, err)
	require.Len(t, nl.Components, 6)

	v1 := nl.Components[0]
	assert.Equal(t, component.KindACVoltageSource, v1.Kind())
	assert.InDelta(t, 2.0, v1.Properties()[0], 1e-12)
	assert.InDelta(t, math.Pi/2, v1.Properties()[1], 1e-12, "phase converts to radians")

	assert.Equal(t, component.KindDCVoltageSource, nl.Components[1].Kind())
	assert.Equal(t, component.KindDCVoltageSource, nl.Components[2].Kind(), "bare value reads as DC")
	assert.Equal(t, component.KindACCurrentSource, nl.Components[3].Kind())
	assert.InDelta(t, 1e-3, nl.Components[3].Properties()[0], 1e-15)
	assert.Equal(t, component.KindDCCurrentSource, nl.Components[4].Kind())

	g1 := nl.Components[5]
	assert.Equal(t, component.KindVCCS, g1.Kind())
	assert.Equal(t, []int{3, 0, 1, 0}, g1.Nodes())
	assert.InDelta(t, 0.02, g1.Properties()[0], 1e-12)

	assert.Equal(t, 3, nl.NumNodes)
}

func TestParseValueSuffixes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"1k", 1e3},
		{"2.2meg", 2.2e6},
		{"1u", 1e-6},
		{"470n", 470e-9},
		{"3p", 3e-12},
		{"1.5e3", 1500},
		{"10uF", 1e-5},
		{"-5m", -5e-3},
		{"10M", 10e-3}, // M is milli; only MEG is 1e6
		{"3MEG", 3e6},
		{"2K", 2e3},
		{"4.7U", 4.7e-6},
		{"1mHz", 1e-3},
	}
	for _, tc := range cases {
		got, err := ParseValue(tc.in)
		require.NoError(t, err, tc.in)
		assert.InEpsilon(t, tc.want, got, 1e-12, tc.in)
	}
}

func TestParseComments(t *testing.T) {
	nl, err := Parse(`* title
* full comment line
R1 1 0 50 * trailing comment
`)
	require.NoError(t, err)
	require.Len(t, nl.Components, 1)
	assert.InDelta(t, 50.0, nl.Components[0].Properties()[0], 1e-12)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"UnknownElement", "* t\nX1 1 2 5\n", ErrUnknownElement},
		{"UnknownCard", "* t\n.noise 1 2\n", ErrUnknownElement},
		{"BadNode", "* t\nR1 1 abc 5\n", ErrBadNodeID},
		{"NegativeNode", "* t\nR1 1 -2 5\n", ErrBadNodeID},
		{"BadValue", "* t\nR1 1 2 abc\n", ErrBadValue},
		{"TooFewFields", "* t\nR1 1 2\n", ErrTooFewFields},
		{"ACSourceMissingPhase", "* t\nV1 1 0 AC 1\n", ErrTooFewFields},
		{"VCCSMissingNodes", "* t\nG1 1 0 2 5\n", ErrTooFewFields},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDefaultInputSourceNoSource(t *testing.T) {
	nl, err := Parse("* t\nR1 1 0 50\n")
	require.NoError(t, err)
	assert.Equal(t, -1, nl.DefaultInputSource())
}
