package consts

import "math"

const (
	Ground = 0 // Reserved node id for the reference node

	DegPerRad = 180.0 / math.Pi
	RadPerDeg = math.Pi / 180.0
)
