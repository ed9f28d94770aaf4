package cyclic

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
	{Name: "DEMONS", Lo1: 10, Hi1: 14, Lo2: 1, Hi2: 1},
	{Name: "BOLD SPIRALS", Lo1: 4, Hi1: 6, Lo2: 1, Hi2: 1},
	{Name: "FINE SPIRALS", Lo1: 18, Hi1: 24, Lo2: 1, Hi2: 1},
	{Name: "DEFECTS", Lo1: 8, Hi1: 16, Lo2: 2, Hi2: 3},
	{Name: "FROZEN", Lo1: 16, Hi1: 28, Lo2: 4, Hi2: 5},
	{Name: "MINIMAL", Lo1: 3, Hi1: 4, Lo2: 1, Hi2: 1},
}

var (
	fireKeys = []color.RGBA{
		palette.RGB(80, 0, 0), palette.RGB(255, 0, 0), palette.RGB(255, 140, 0),
		palette.RGB(255, 255, 50), palette.RGB(255, 255, 255),
	}
	oceanKeys = []color.RGBA{
		palette.RGB(0, 0, 80), palette.RGB(0, 40, 255),
		palette.RGB(0, 255, 255), palette.RGB(100, 255, 200),
	}
	forestKeys = []color.RGBA{
		palette.RGB(0, 60, 0), palette.RGB(0, 190, 20),
		palette.RGB(80, 255, 0), palette.RGB(255, 255, 50),
	}
	iceKeys = []color.RGBA{
		palette.RGB(255, 255, 255), palette.RGB(100, 200, 255),
		palette.RGB(20, 80, 255), palette.RGB(120, 0, 200),
	}
)

// buildPalettes sizes every ramp to the current state count so cell values
// index the palette directly.
func buildPalettes(states int) []palette.Palette {
	return []palette.Palette{
		palette.HueWheel(states, 0, 1),
		palette.Gradient(fireKeys, states),
		palette.Gradient(oceanKeys, states),
		palette.Gradient(forestKeys, states),
		palette.HueWheel(states, 0.75, 0.5),
		palette.Gradient(iceKeys, states),
	}
}

func init() {
	lab.Register("cycliclab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "cycliclab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "states", Label: "States", Type: core.ParamTypeInt,
					Step: 1, Min: 3, Max: 28,
				},
				Default:     12,
				SettingsKey: "cyclic_lab_states",
				Format: func(v float64) string {
					return fmt.Sprintf("states=%d", int(math.Round(v)))
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "threshold", Label: "Threshold", Type: core.ParamTypeInt,
					Step: 1, Min: 1, Max: 5,
				},
				Default:     1,
				SettingsKey: "cyclic_lab_threshold",
				Format: func(v float64) string {
					return fmt.Sprintf("thresh=%d", int(math.Round(v)))
				},
			},
			Regions:      regions,
			Palettes:     buildPalettes,
			Store:        store,
			PaletteKey:   "cyclic_lab_palette",
			StepInterval: 0.08,
			Seed:         seed,
		})
	})
}
