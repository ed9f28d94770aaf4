package rug

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
	{Name: "CLASSIC", Lo1: 1, Hi1: 1, Lo2: 256, Hi2: 256},
	{Name: "BOLD BANDS", Lo1: 1, Hi1: 1, Lo2: 16, Hi2: 48},
	{Name: "FAST CYCLE", Lo1: 2, Hi1: 4, Lo2: 128, Hi2: 256},
	{Name: "FINE CARPET", Lo1: 1, Hi1: 1, Lo2: 64, Hi2: 128},
	{Name: "PSYCHEDELIC", Lo1: 5, Hi1: 8, Lo2: 64, Hi2: 128},
	{Name: "STATIC", Lo1: 9, Hi1: 12, Lo2: 16, Hi2: 32},
}

var (
	sunsetKeys = []color.RGBA{
		palette.RGB(20, 0, 80), palette.RGB(0, 100, 200), palette.RGB(0, 200, 150),
		palette.RGB(100, 255, 100), palette.RGB(255, 255, 0), palette.RGB(255, 100, 0),
		palette.RGB(150, 0, 100),
	}
	glacierKeys = []color.RGBA{
		palette.RGB(0, 0, 40), palette.RGB(0, 50, 100), palette.RGB(0, 150, 150),
		palette.RGB(100, 200, 200), palette.RGB(200, 230, 255),
	}
)

// buildPalettes returns full 256-entry ramps; cell values are rescaled onto
// them by the display mapping, so the ramps are independent of the modulus.
func buildPalettes(int) []palette.Palette {
	return []palette.Palette{
		palette.BandedRainbow(16, 256),
		palette.BandedRainbow(8, 256),
		palette.MonoBands(palette.RGB(0, 100, 255), 10, 256),
		palette.MonoBands(palette.RGB(255, 50, 50), 10, 256),
		palette.MonoBands(palette.RGB(50, 255, 100), 10, 256),
		palette.MonoBands(palette.RGB(255, 200, 50), 10, 256),
		palette.MonoBands(palette.RGB(200, 100, 255), 10, 256),
		palette.Gradient(sunsetKeys, 256),
		palette.Gradient(glacierKeys, 256),
	}
}

func init() {
	lab.Register("ruglab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "ruglab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "inc", Label: "Increment", Type: core.ParamTypeInt,
					Step: 1, Min: 1, Max: 12,
				},
				Default:     1,
				SettingsKey: "rug_lab_inc",
				Format: func(v float64) string {
					return fmt.Sprintf("inc=%d", int(math.Round(v)))
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "states", Label: "States", Type: core.ParamTypeInt,
					Step: 8, Min: 16, Max: 256,
				},
				Default:     256,
				SettingsKey: "rug_lab_states",
				Format: func(v float64) string {
					return fmt.Sprintf("states=%d", int(math.Round(v)))
				},
			},
			Regions:      regions,
			Palettes:     buildPalettes,
			Store:        store,
			PaletteKey:   "rug_lab_palette",
			StepInterval: 0.08,
			Seed:         seed,
		})
	})
}
