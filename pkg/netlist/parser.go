package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"acspice/internal/consts"
	"acspice/pkg/component"
)

var (
	ErrTooFewFields   = errors.New("too few fields")
	ErrUnknownElement = errors.New("unknown element type")
	ErrBadNodeID      = errors.New("bad node id")
	ErrBadValue       = errors.New("bad value")
)

// Netlist is the parsed form of a circuit description: the component
// list in file order, the highest node id, and the sweep and output
// parameters from the .ac and .out cards.
type Netlist struct {
	Title      string
	Components []component.Component
	NumNodes   int // highest node id in the file
	OutputNode int
	ACParam    struct {
		PointsPerDecade int
		FStart          float64
		FStop           float64
	}
}

// DefaultInputSource returns the index of the first independent source
// in the component list, or -1 if the netlist has none.
func (n *Netlist) DefaultInputSource() int {
	for i, comp := range n.Components {
		if kind := comp.Kind(); kind.IsVoltageSource() || kind.IsCurrentSource() {
			return i
		}
	}
	return -1
}

var unitMap = map[string]float64{
	"t":   1e12,  // tera
	"g":   1e9,   // giga
	"meg": 1e6,   // mega
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)((?i:meg|[tgkmunpf]))?[A-Za-z]*$`)

// ParseValue parses a numeric field with an optional SPICE unit suffix
// (1k, 2.2u, 3meg). Suffixes are case-insensitive, so M is milli and
// only MEG means 1e6, matching SPICE. Trailing unit letters after the
// factor are ignored so values like 10uF or 50Hz read naturally.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, val)
	}

	if suffix := strings.ToLower(matches[2]); suffix != "" {
		num *= unitMap[suffix]
	}

	return num, nil
}

// Parse reads a netlist. The first line is the title; * starts a
// comment; elements are one per line with integer node ids (0 is
// ground); dot cards set analysis parameters.
func Parse(input string) (*Netlist, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	nl := &Netlist{OutputNode: 1}

	if scanner.Scan() {
		nl.Title = strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "*"))
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if idx := strings.Index(line, "*"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if len(line) == 0 {
			continue
		}

		if err := nl.parseLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return nl, nil
}

func (n *Netlist) parseLine(line string) error {
	if strings.HasPrefix(line, ".") {
		return n.parseDotCard(line)
	}

	comp, nodes, err := parseElement(line)
	if err != nil {
		return err
	}

	n.Components = append(n.Components, comp)
	for _, node := range nodes {
		if node > n.NumNodes {
			n.NumNodes = node
		}
	}
	return nil
}

// parseDotCard handles .ac, .out and .end.
func (n *Netlist) parseDotCard(line string) error {
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case ".ac":
		if len(fields) < 4 {
			return fmt.Errorf("%w: .ac needs points-per-decade, fstart, fstop", ErrTooFewFields)
		}
		ppd, err := strconv.Atoi(fields[1])
		if err != nil || ppd <= 0 {
			return fmt.Errorf("%w: points per decade %q", ErrBadValue, fields[1])
		}
		n.ACParam.PointsPerDecade = ppd
		if n.ACParam.FStart, err = ParseValue(fields[2]); err != nil {
			return err
		}
		if n.ACParam.FStop, err = ParseValue(fields[3]); err != nil {
			return err
		}

	case ".out":
		if len(fields) < 2 {
			return fmt.Errorf("%w: .out needs a node id", ErrTooFewFields)
		}
		node, err := parseNode(fields[1])
		if err != nil {
			return err
		}
		n.OutputNode = node

	case ".end":
		// End of netlist, nothing to do.

	default:
		return fmt.Errorf("%w: %s", ErrUnknownElement, fields[0])
	}

	return nil
}

func parseNode(field string) (int, error) {
	node, err := strconv.Atoi(field)
	if err != nil || node < consts.Ground {
		return 0, fmt.Errorf("%w: %q", ErrBadNodeID, field)
	}
	return node, nil
}

// parseElement builds one component from an element line. The element
// type is the first letter of the name, SPICE style.
func parseElement(line string) (component.Component, []int, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, nil, fmt.Errorf("%w: %q", ErrTooFewFields, line)
	}

	name := fields[0]

	switch strings.ToUpper(name[:1]) {
	case "R", "C", "L":
		n1, err := parseNode(fields[1])
		if err != nil {
			return nil, nil, err
		}
		n2, err := parseNode(fields[2])
		if err != nil {
			return nil, nil, err
		}
		value, err := ParseValue(fields[3])
		if err != nil {
			return nil, nil, err
		}

		nodes := []int{n1, n2}
		switch strings.ToUpper(name[:1]) {
		case "R":
			return component.NewResistor(name, n1, n2, value), nodes, nil
		case "C":
			return component.NewCapacitor(name, n1, n2, value), nodes, nil
		default:
			return component.NewInductor(name, n1, n2, value), nodes, nil
		}

	case "V":
		return parseSource(fields, true)

	case "I":
		return parseSource(fields, false)

	case "G":
		if len(fields) < 6 {
			return nil, nil, fmt.Errorf("%w: VCCS needs 4 nodes and a transconductance", ErrTooFewFields)
		}
		nodes := make([]int, 4)
		for i := range nodes {
			node, err := parseNode(fields[i+1])
			if err != nil {
				return nil, nil, err
			}
			nodes[i] = node
		}
		gm, err := ParseValue(fields[5])
		if err != nil {
			return nil, nil, err
		}
		return component.NewVCCS(name, nodes[0], nodes[1], nodes[2], nodes[3], gm), nodes, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
	}
}

// parseSource handles V and I elements:
//
//	V1 n+ n- DC 5
//	V1 n+ n- AC 1 0
//	I1 n1 n2 1m       (bare value reads as DC)
//
// AC phase is given in degrees in the file and held in radians on the
// component.
func parseSource(fields []string, isVoltage bool) (component.Component, []int, error) {
	name := fields[0]

	n1, err := parseNode(fields[1])
	if err != nil {
		return nil, nil, err
	}
	n2, err := parseNode(fields[2])
	if err != nil {
		return nil, nil, err
	}
	nodes := []int{n1, n2}

	switch strings.ToUpper(fields[3]) {
	case "AC":
		if len(fields) < 6 {
			return nil, nil, fmt.Errorf("%w: AC source needs amplitude and phase", ErrTooFewFields)
		}
		amplitude, err := ParseValue(fields[4])
		if err != nil {
			return nil, nil, err
		}
		phaseDeg, err := ParseValue(fields[5])
		if err != nil {
			return nil, nil, err
		}
		phase := phaseDeg * consts.RadPerDeg
		if isVoltage {
			return component.NewACVoltageSource(name, n1, n2, amplitude, phase), nodes, nil
		}
		return component.NewACCurrentSource(name, n1, n2, amplitude, phase), nodes, nil

	case "DC":
		if len(fields) < 5 {
			return nil, nil, fmt.Errorf("%w: DC source needs a value", ErrTooFewFields)
		}
		return newDCSource(name, n1, n2, fields[4], isVoltage)

	default:
		return newDCSource(name, n1, n2, fields[3], isVoltage)
	}
}

func newDCSource(name string, n1, n2 int, field string, isVoltage bool) (component.Component, []int, error) {
	value, err := ParseValue(field)
	if err != nil {
		return nil, nil, err
	}
	nodes := []int{n1, n2}
	if isVoltage {
		return component.NewDCVoltageSource(name, n1, n2, value), nodes, nil
	}
	return component.NewDCCurrentSource(name, n1, n2, value), nodes, nil
}
