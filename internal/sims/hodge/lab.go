package hodge

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
	{Name: "SLOW PULSES", Lo1: 1, Hi1: 3, Lo2: 8, Hi2: 32},
	{Name: "BZ CLASSIC", Lo1: 4, Hi1: 7, Lo2: 48, Hi2: 80},
	{Name: "TIGHT SPIRALS", Lo1: 8, Hi1: 12, Lo2: 48, Hi2: 80},
	{Name: "TURBULENCE", Lo1: 13, Hi1: 20, Lo2: 8, Hi2: 128},
	{Name: "SUBTLE WAVES", Lo1: 2, Hi1: 4, Lo2: 80, Hi2: 128},
	{Name: "BOLD BANDS", Lo1: 4, Hi1: 8, Lo2: 8, Hi2: 24},
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

// buildPalettes sizes every ramp to n+1 entries so cell values 0..n index
// the palette directly; it is rebuilt whenever the n axis changes.
func buildPalettes(states int) []palette.Palette {
	out := make([]palette.Palette, 0, len(gradientKeys)+2)
	for _, keys := range gradientKeys {
		out = append(out, palette.Gradient(keys, states))
	}
	out = append(out,
		palette.BandedRainbow(8, states),
		palette.BandedRainbow(4, states),
	)
	return out
}

func init() {
	lab.Register("hodgelab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "hodgelab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "g", Label: "Growth", Type: core.ParamTypeFloat,
					Step: 0.5, Min: 1.0, Max: 20.0,
				},
				Default:     5.0,
				SettingsKey: "hodge_lab_g",
				Format: func(v float64) string {
					return fmt.Sprintf("g=%.1f", v)
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "n", Label: "Max state", Type: core.ParamTypeInt,
					Step: 4, Min: 8, Max: 128,
				},
				Default:     63,
				SettingsKey: "hodge_lab_n",
				Format: func(v float64) string {
					return fmt.Sprintf("n=%d", int(math.Round(v)))
				},
			},
			Regions:      regions,
			Palettes:     buildPalettes,
			Store:        store,
			PaletteKey:   "hodge_lab_palette",
			StepInterval: 0.1,
			Seed:         seed,
		})
	})
}
