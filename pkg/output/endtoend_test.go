package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acspice/pkg/analysis"
	"acspice/pkg/netlist"
)

// Full pipeline: parse a netlist, sweep it, write the CSV.
func TestRCNetlistSweepToCSV(t *testing.T) {
	nl, err := netlist.Parse(`* RC low-pass filter
V1 1 0 AC 1 0
R1 1 2 1k
C1 2 0 1u
.ac 10 10 100k
.out 2
.end
`)
	require.NoError(t, err)

	sweep := analysis.NewAC(nl.OutputNode, nl.DefaultInputSource(),
		nl.ACParam.FStart, nl.ACParam.FStop, nl.ACParam.PointsPerDecade)
	points, err := sweep.Run(nl.Components, nl.NumNodes)
	require.NoError(t, err)
	require.Len(t, points, 41) // 4 decades at 10 points per decade

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, points))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 42)
	assert.Equal(t, "Frequency / Hz, Amplitude / dB, Phase / Degrees", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasSuffix(line, ","), "row keeps its trailing comma: %q", line)
	}
}
