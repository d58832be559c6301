package output

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"acspice/pkg/analysis"
)

// SaveBode renders magnitude and phase panels with a logarithmic
// frequency axis into a PNG. Rows with non-finite values (singular
// solve points) are left out of the traces.
func SaveBode(path, title string, points []analysis.Point) error {
	magPts := make(plotter.XYs, 0, len(points))
	phasePts := make(plotter.XYs, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.MagDB) || math.IsInf(p.MagDB, 0) {
			continue
		}
		magPts = append(magPts, plotter.XY{X: p.Freq, Y: p.MagDB})
		phasePts = append(phasePts, plotter.XY{X: p.Freq, Y: p.PhaseDeg})
	}
	if len(magPts) == 0 {
		return fmt.Errorf("no finite sweep points to plot")
	}

	magPlot, err := bodePanel(title, "Amplitude / dB", magPts)
	if err != nil {
		return err
	}
	phasePlot, err := bodePanel("", "Phase / Degrees", phasePts)
	if err != nil {
		return err
	}

	img := vgimg.New(8*vg.Inch, 6*vg.Inch)
	canvases := plot.Align([][]*plot.Plot{{magPlot}, {phasePlot}}, draw.Tiles{Rows: 2, Cols: 1}, draw.New(img))
	magPlot.Draw(canvases[0][0])
	phasePlot.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}

	return nil
}

func bodePanel(title, yLabel string, pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency / Hz"
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("building %s trace: %w", yLabel, err)
	}
	p.Add(line)

	return p, nil
}
