// labprobe runs a registered engine headless for a fixed number of steps and
// prints a coarse health summary: live-cell occupancy or field mass over time,
// plus the engine's final parameter snapshot. Useful for sanity-checking rule
// changes without a display.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"ca-lab/internal/core"
	_ "ca-lab/internal/sims/cyclic"
	_ "ca-lab/internal/sims/grayscott"
	_ "ca-lab/internal/sims/hodge"
	_ "ca-lab/internal/sims/lenia"
	_ "ca-lab/internal/sims/mitosis"
	_ "ca-lab/internal/sims/quarks"
	_ "ca-lab/internal/sims/rug"
	_ "ca-lab/internal/sims/slime"
)

func main() {
	engine := flag.String("engine", "cyclic", "engine to probe")
	steps := flag.Int("steps", 200, "steps to simulate")
	seed := flag.Int64("seed", 42, "seed for engine reset")
	every := flag.Int("every", 20, "steps between progress lines")
	flag.Parse()

	factory, ok := core.Engines()[*engine]
	if !ok {
		names := make([]string, 0, len(core.Engines()))
		for name := range core.Engines() {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown engine %q (have: %s)", *engine, strings.Join(names, ", "))
	}

	eng := factory(nil)
	eng.Reset(*seed)

	size := eng.Size()
	fmt.Printf("%s: %dx%d, seed %d, %d steps\n", eng.Name(), size.W, size.H, *seed, *steps)

	if *every <= 0 {
		*every = 1
	}
	for step := 1; step <= *steps; step++ {
		eng.Step()
		if step%*every == 0 || step == *steps {
			fmt.Printf("step %4d  %s\n", step, summarize(eng))
		}
	}

	if provider, ok := eng.(core.ParameterSnapshotProvider); ok {
		fmt.Println("parameters:")
		for _, p := range provider.Parameters().Params {
			fmt.Printf("  %-12s %s\n", p.Key, p.Value)
		}
	}
}

func summarize(eng core.Engine) string {
	switch e := eng.(type) {
	case core.CellEngine:
		cells := e.Cells()
		live := 0
		for _, c := range cells {
			if c != 0 {
				live++
			}
		}
		return fmt.Sprintf("occupancy %5.1f%% (%d states)",
			100*float64(live)/float64(len(cells)), e.States())
	case core.FieldEngine:
		vals := e.Field()
		mass := 0.0
		peak := 0.0
		for _, v := range vals {
			mass += v
			if v > peak {
				peak = v
			}
		}
		return fmt.Sprintf("mass %8.2f  peak %.3f", mass, peak)
	default:
		return "no observable state"
	}
}
