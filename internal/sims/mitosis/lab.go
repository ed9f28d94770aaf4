package mitosis

import (
	"fmt"
	"image/color"

	"ca-lab/internal/core"
	"ca-lab/internal/lab"
	"ca-lab/internal/palette"
	"ca-lab/internal/region"
	"ca-lab/internal/settings"
)

var regions = region.Table{
	{Name: "GENTLE", Lo1: 0.3, Hi1: 0.8, Lo2: 0.1, Hi2: 0.3},
	{Name: "BALANCED", Lo1: 1.0, Hi1: 1.6, Lo2: 0.3, Hi2: 0.7},
	{Name: "BLOOMING", Lo1: 2.0, Hi1: 3.0, Lo2: 0.1, Hi2: 0.4},
	{Name: "AGGRESSIVE", Lo1: 1.8, Hi1: 3.0, Lo2: 1.0, Hi2: 2.0},
	{Name: "STARVED", Lo1: 0.3, Hi1: 0.8, Lo2: 1.0, Hi2: 2.0},
	{Name: "FRENZY", Lo1: 2.0, Hi1: 3.0, Lo2: 0.5, Hi2: 1.0},
}

var rampKeys = [][]color.RGBA{
	{palette.RGB(0, 0, 0), palette.RGB(20, 70, 30), palette.RGB(50, 140, 60), palette.RGB(100, 200, 100), palette.RGB(180, 255, 180)},
	{palette.RGB(0, 0, 0), palette.RGB(20, 40, 120), palette.RGB(50, 100, 200), palette.RGB(100, 160, 255), palette.RGB(200, 220, 255)},
	{palette.RGB(0, 0, 0), palette.RGB(80, 20, 100), palette.RGB(150, 50, 170), palette.RGB(200, 100, 220), palette.RGB(255, 180, 255)},
	{palette.RGB(0, 0, 0), palette.RGB(120, 30, 0), palette.RGB(200, 80, 0), palette.RGB(255, 160, 50), palette.RGB(255, 230, 150)},
	{palette.RGB(0, 0, 0), palette.RGB(0, 80, 90), palette.RGB(30, 150, 160), palette.RGB(80, 210, 210), palette.RGB(180, 255, 255)},
	{palette.RGB(0, 0, 0), palette.RGB(90, 60, 10), palette.RGB(170, 120, 30), palette.RGB(230, 180, 60), palette.RGB(255, 230, 140)},
	{palette.RGB(0, 0, 0), palette.RGB(30, 90, 0), palette.RGB(80, 180, 0), palette.RGB(160, 230, 50), palette.RGB(220, 255, 150)},
	{palette.RGB(0, 0, 0), palette.RGB(120, 40, 90), palette.RGB(200, 80, 150), palette.RGB(100, 180, 220), palette.RGB(220, 200, 255)},
}

func buildPalettes(int) []palette.Palette {
	out := make([]palette.Palette, len(rampKeys))
	for i, keys := range rampKeys {
		out[i] = palette.Gradient(keys, 256)
	}
	return out
}

func init() {
	lab.Register("mitosislab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "mitosislab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "growth", Label: "Growth rate", Type: core.ParamTypeFloat,
					Step: 0.1, Min: 0.3, Max: 3.0,
				},
				Default:     1.2,
				SettingsKey: "mitosis_lab_growth",
				Format: func(v float64) string {
					return fmt.Sprintf("grow=%.1f", v)
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "comp", Label: "Competition", Type: core.ParamTypeFloat,
					Step: 0.1, Min: 0.1, Max: 2.0,
				},
				Default:     0.5,
				SettingsKey: "mitosis_lab_comp",
				Format: func(v float64) string {
					return fmt.Sprintf("comp=%.1f", v)
				},
			},
			Regions:    regions,
			Palettes:   buildPalettes,
			Store:      store,
			PaletteKey: "mitosis_lab_palette",
			Seed:       seed,
		})
	})
}
