package matrix

import (
	"fmt"
	"math"

	"github.com/edp1096/sparse"
	"gonum.org/v1/gonum/mat"

	"acspice/pkg/component"
)

// Solver owns the sparse LU workspace for one circuit size. The dense
// conductance matrix and excitation vector are rebuilt from scratch at
// every frequency point; only the factorization workspace is reused
// across points.
type Solver struct {
	size   int
	matrix *sparse.Matrix
	config *sparse.Configuration
}

func NewSolver(size int) (*Solver, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		// Translate keeps element addressing by external index valid
		// after Factor reorders the matrix; the workspace is cleared
		// and re-stamped at every sweep point.
		Translate: true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	m, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	// Reserve the full element structure up front so that rows left
	// empty by a degenerate circuit still exist and factor into a
	// zero-pivot error rather than a nil dereference.
	for i := 1; i <= size; i++ {
		for j := 1; j <= size; j++ {
			m.GetElement(int64(i), int64(j))
		}
	}

	return &Solver{size: size, matrix: m, config: config}, nil
}

// SolveAtFrequency assembles the nodal system for one angular
// frequency and solves it. The returned slice holds the node voltages,
// node k at index k-1. A singular system (floating node, contradictory
// sources) yields a NaN-filled vector instead of an error: the caller
// keeps sweeping and the bad point is visible in the output.
func (s *Solver) SolveAtFrequency(components []component.Component, numNodes int, omega float64) []complex128 {
	g := Conductance(components, numNodes, omega)
	rhs := Excitation(components, numNodes)
	return s.Solve(g, rhs)
}

// Solve factors and solves g*x = rhs with pivoted complex LU.
func (s *Solver) Solve(g *mat.CDense, rhs []complex128) []complex128 {
	s.matrix.Clear()
	for i := 0; i < s.size; i++ {
		for j := 0; j < s.size; j++ {
			v := g.At(i, j)
			element := s.matrix.GetElement(int64(i+1), int64(j+1))
			element.Real = real(v)
			element.Imag = imag(v)
		}
	}

	b := make([]float64, s.size+1)
	ib := make([]float64, s.size+1)
	for i, v := range rhs {
		b[i+1] = real(v)
		ib[i+1] = imag(v)
	}

	if err := s.matrix.Factor(); err != nil {
		return nanVector(s.size)
	}
	re, im, err := s.matrix.SolveComplex(b, ib)
	if err != nil {
		return nanVector(s.size)
	}

	x := make([]complex128, s.size)
	for i := range x {
		x[i] = complex(re[i+1], im[i+1])
	}
	return x
}

func (s *Solver) Size() int { return s.size }

func (s *Solver) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
	}
}

func nanVector(size int) []complex128 {
	nan := math.NaN()
	x := make([]complex128, size)
	for i := range x {
		x[i] = complex(nan, nan)
	}
	return x
}
