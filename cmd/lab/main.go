//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"sort"
	"strings"

	"ca-lab/internal/app"
	"ca-lab/internal/lab"
	"ca-lab/internal/settings"
	_ "ca-lab/internal/sims/cyclic"
	_ "ca-lab/internal/sims/grayscott"
	_ "ca-lab/internal/sims/hodge"
	_ "ca-lab/internal/sims/lenia"
	_ "ca-lab/internal/sims/mitosis"
	_ "ca-lab/internal/sims/quarks"
	_ "ca-lab/internal/sims/rug"
	_ "ca-lab/internal/sims/slime"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := lab.Labs()[cfg.Lab]
	if !ok {
		names := make([]string, 0, len(lab.Labs()))
		for name := range lab.Labs() {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("unknown lab %q (have: %s)", cfg.Lab, strings.Join(names, ", "))
	}

	store := settings.NewFileStore(cfg.Settings)
	l := factory(store, cfg.Seed)

	game := app.New(l, cfg.Scale, cfg.TPS)
	size := l.Engine().Size()

	ebiten.SetWindowTitle("ca-lab — " + l.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
