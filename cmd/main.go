package main // import "acsim"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"acspice/pkg/analysis"
	"acspice/pkg/netlist"
	"acspice/pkg/output"
	"acspice/pkg/util"
)

var (
	outputNode  = flag.Int("node", 0, "output node id (default: .out card, else node 1)")
	inputSource = flag.Int("source", -1, "input source index (default: first source in the netlist)")
	startFreq   = flag.Float64("start", 0, "sweep start frequency in Hz (default: .ac card)")
	stopFreq    = flag.Float64("stop", 0, "sweep stop frequency in Hz (default: .ac card)")
	ppd         = flag.Int("ppd", 0, "points per decade (default: .ac card)")
	outPath     = flag.String("o", "output.csv", "output CSV path")
	plotPath    = flag.String("plot", "", "optional Bode plot PNG path")
)

var stage = color.New(color.FgCyan, color.Bold)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: acsim [flags] <netlist_file>")
	}

	stage.Printf("[1] Reading netlist file: %s\n", flag.Arg(0))
	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading netlist file: %v", err)
	}

	stage.Println("[2] Parsing netlist")
	nl, err := netlist.Parse(string(content))
	if err != nil {
		log.Fatalf("Error parsing netlist: %v", err)
	}
	fmt.Printf("%s: %d components, %d nodes\n", nl.Title, len(nl.Components), nl.NumNodes)
	for _, comp := range nl.Components {
		props := comp.Properties()
		fmt.Printf("  %-6s %-6v nodes=%v  %s\n",
			comp.Name(), comp.Kind(), comp.Nodes(), util.FormatValueFactor(props[0], ""))
	}

	node, source, fStart, fStop, points := sweepParams(nl)

	stage.Printf("[3] Running AC sweep: node %d, %s .. %s, %d points/decade\n",
		node, util.FormatFrequency(fStart), util.FormatFrequency(fStop), points)
	sweep := analysis.NewAC(node, source, fStart, fStop, points)
	result, err := sweep.Run(nl.Components, nl.NumNodes)
	if err != nil {
		log.Fatalf("AC sweep failed: %v", err)
	}

	stage.Printf("[4] Writing %s\n", *outPath)
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *outPath, err)
	}
	if err := output.WriteCSV(f, result); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *outPath, err)
	}

	if *plotPath != "" {
		stage.Printf("[5] Rendering Bode plot %s\n", *plotPath)
		if err := output.SaveBode(*plotPath, nl.Title, result); err != nil {
			log.Fatalf("Failed to render plot: %v", err)
		}
	}

	first, last := result[0], result[len(result)-1]
	fmt.Printf("%d points, %s %s <%s deg .. %s %s <%s deg\n",
		len(result),
		util.FormatFrequency(first.Freq), util.FormatDB(first.MagDB), util.FormatPhase(first.PhaseDeg),
		util.FormatFrequency(last.Freq), util.FormatDB(last.MagDB), util.FormatPhase(last.PhaseDeg))
}

// sweepParams merges the .ac and .out cards with the command-line
// overrides, flags winning.
func sweepParams(nl *netlist.Netlist) (node, source int, fStart, fStop float64, points int) {
	node = nl.OutputNode
	if *outputNode > 0 {
		node = *outputNode
	}

	source = nl.DefaultInputSource()
	if *inputSource >= 0 {
		source = *inputSource
	}
	if source < 0 {
		log.Fatal("Netlist has no independent source and no -source given")
	}

	fStart, fStop = nl.ACParam.FStart, nl.ACParam.FStop
	if *startFreq > 0 {
		fStart = *startFreq
	}
	if *stopFreq > 0 {
		fStop = *stopFreq
	}

	points = nl.ACParam.PointsPerDecade
	if *ppd > 0 {
		points = *ppd
	}

	if fStart <= 0 || fStop < fStart || points <= 0 {
		log.Fatal("No sweep range: add a .ac card or pass -start, -stop and -ppd")
	}

	return node, source, fStart, fStop, points
}
