package lenia

import (
	"fmt"

	"ca-lab/internal/core"
	"ca-lab/internal/lab"
	"ca-lab/internal/region"
	"ca-lab/internal/settings"
	"ca-lab/internal/sims/grayscott"
)

// regions are tuned for the R=13 kernel at 128x128.
var regions = region.Table{
	{Name: "SPARSE LIFE", Lo1: 0.10, Hi1: 0.14, Lo2: 0.012, Hi2: 0.022},
	{Name: "SMOOTH FLOW", Lo1: 0.14, Hi1: 0.18, Lo2: 0.014, Hi2: 0.028},
	{Name: "DENSE BLOBS", Lo1: 0.10, Hi1: 0.16, Lo2: 0.030, Hi2: 0.060},
	{Name: "CRAWLERS", Lo1: 0.18, Hi1: 0.24, Lo2: 0.025, Hi2: 0.050},
	{Name: "CHAOTIC", Lo1: 0.16, Hi1: 0.22, Lo2: 0.040, Hi2: 0.070},
	{Name: "TURBULENCE", Lo1: 0.22, Hi1: 0.28, Lo2: 0.050, Hi2: 0.080},
}

func classify(mu, sigma float64) string {
	if name := regions.Classify(mu, sigma); name != "" {
		return name
	}
	// Growth centered past any reachable potential kills everything.
	if mu > 0.40 || sigma < 0.008 {
		return "VOID"
	}
	return ""
}

func init() {
	lab.Register("lenialab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "lenialab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "mu", Label: "Growth center", Type: core.ParamTypeFloat,
					Step: 0.005, Min: 0.05, Max: 0.50,
				},
				Default:     0.15,
				SettingsKey: "lenia_lab_mu",
				Format: func(v float64) string {
					return fmt.Sprintf("mu=%.3f", v)
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "sigma", Label: "Growth width", Type: core.ParamTypeFloat,
					Step: 0.002, Min: 0.008, Max: 0.100,
				},
				Default:     0.022,
				SettingsKey: "lenia_lab_sigma",
				Format: func(v float64) string {
					return fmt.Sprintf("sig=%.3f", v)
				},
			},
			Regions:    regions,
			Classify:   classify,
			Palettes:   grayscott.Ramps,
			Store:      store,
			PaletteKey: "lenia_lab_palette",
			Seed:       seed,
		})
	})

	// Auto-play: runs the committed parameters with no live axes.
	lab.Register("lenia", func(store settings.Store, seed int64) *lab.Lab {
		cfg := DefaultConfig()
		paletteIdx := 0
		if store != nil {
			cfg.Mu = store.Get("lenia_lab_mu", cfg.Mu)
			cfg.Sigma = store.Get("lenia_lab_sigma", cfg.Sigma)
			paletteIdx = int(store.Get("lenia_lab_palette", 0))
		}
		return lab.New(lab.Config{
			Name:         "lenia",
			Engine:       New(cfg),
			Palettes:     grayscott.Ramps,
			PaletteIndex: paletteIdx,
			Seed:         seed,
		})
	})
}
