package output

import (
	"fmt"
	"io"

	"acspice/pkg/analysis"
)

// WriteCSV writes sweep points in ascending frequency order, one row
// per point. The trailing comma before the newline is part of the
// format consumed downstream and is kept deliberately.
func WriteCSV(w io.Writer, points []analysis.Point) error {
	if _, err := fmt.Fprintln(w, "Frequency / Hz, Amplitude / dB, Phase / Degrees"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%g, %g, %g,\n", p.Freq, p.MagDB, p.PhaseDeg); err != nil {
			return fmt.Errorf("writing row at %g Hz: %w", p.Freq, err)
		}
	}

	return nil
}
