package quarks

import (
	"fmt"
	"image/color"
	"math"

	"ca-lab/internal/core"
	"ca-lab/internal/lab"
	"ca-lab/internal/palette"
	"ca-lab/internal/region"
	"ca-lab/internal/settings"
)

var regions = region.Table{
	{Name: "LONE MANDALA", Lo1: 1, Hi1: 2, Lo2: 2, Hi2: 10},
	{Name: "ISLANDS", Lo1: 2, Hi1: 4, Lo2: 4, Hi2: 14},
	{Name: "DRIFTERS", Lo1: 3, Hi1: 6, Lo2: 15, Hi2: 28},
	{Name: "SWARM", Lo1: 7, Hi1: 12, Lo2: 4, Hi2: 14},
	{Name: "CHAOS", Lo1: 7, Hi1: 12, Lo2: 20, Hi2: 40},
	{Name: "ORBITING", Lo1: 3, Hi1: 5, Lo2: 28, Hi2: 40},
}

var gradientKeys = [][]color.RGBA{
	{
		palette.RGB(20, 0, 80), palette.RGB(0, 100, 200), palette.RGB(0, 200, 150),
		palette.RGB(100, 255, 100), palette.RGB(255, 255, 0), palette.RGB(255, 100, 0),
		palette.RGB(150, 0, 100),
	},
	{
		palette.RGB(150, 0, 100), palette.RGB(255, 100, 0), palette.RGB(255, 255, 0),
		palette.RGB(100, 255, 100), palette.RGB(0, 200, 150), palette.RGB(0, 100, 200),
		palette.RGB(20, 0, 80),
	},
	{
		palette.RGB(0, 0, 40), palette.RGB(0, 50, 100), palette.RGB(0, 150, 150),
		palette.RGB(100, 200, 200), palette.RGB(200, 230, 255),
	},
	{
		palette.RGB(40, 0, 0), palette.RGB(150, 30, 0), palette.RGB(255, 100, 0),
		palette.RGB(255, 200, 50), palette.RGB(255, 255, 200),
	},
	{
		palette.RGB(0, 20, 0), palette.RGB(0, 80, 40), palette.RGB(50, 150, 50),
		palette.RGB(150, 220, 100), palette.RGB(220, 255, 180),
	},
	{
		palette.RGB(40, 0, 60), palette.RGB(100, 0, 150), palette.RGB(200, 50, 200),
		palette.RGB(255, 150, 220), palette.RGB(255, 220, 255),
	},
}

func buildPalettes(int) []palette.Palette {
	out := make([]palette.Palette, 0, len(gradientKeys)+4)
	for _, keys := range gradientKeys {
		out = append(out, palette.Gradient(keys, 256))
	}
	out = append(out,
		palette.BandedRainbow(16, 256),
		palette.BandedRainbow(8, 256),
		palette.MonoBands(palette.RGB(0, 100, 255), 10, 256),
		palette.MonoBands(palette.RGB(255, 50, 50), 10, 256),
	)
	return out
}

func init() {
	lab.Register("quarkslab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "quarkslab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "quarks", Label: "Quarks", Type: core.ParamTypeInt,
					Step: 1, Min: 1, Max: 12,
				},
				Default:     5,
				SettingsKey: "quarks_lab_num",
				Format: func(v float64) string {
					return fmt.Sprintf("q=%d", int(math.Round(v)))
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "radius", Label: "Roam radius", Type: core.ParamTypeInt,
					Step: 2, Min: 2, Max: 40,
				},
				Default:     17,
				SettingsKey: "quarks_lab_radius",
				Format: func(v float64) string {
					return fmt.Sprintf("r=%d", int(math.Round(v)))
				},
			},
			Regions:      regions,
			Palettes:     buildPalettes,
			Store:        store,
			PaletteKey:   "quarks_lab_palette",
			StepInterval: 0.1,
			Seed:         seed,
		})
	})
}
