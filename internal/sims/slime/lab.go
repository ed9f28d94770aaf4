package slime

import (
	"fmt"
	"image/color"

	"ca-lab/internal/core"
	"ca-lab/internal/lab"
	"ca-lab/internal/palette"
	"ca-lab/internal/region"
	"ca-lab/internal/settings"
)

var colonyColors = []color.RGBA{
	palette.RGB(255, 50, 50),
	palette.RGB(50, 255, 50),
	palette.RGB(50, 100, 255),
	palette.RGB(255, 255, 50),
	palette.RGB(255, 50, 255),
	palette.RGB(50, 255, 255),
}

var regions = region.Table{
	{Name: "COLD WAR", Lo1: 0.05, Hi1: 0.10, Lo2: 0.02, Hi2: 0.06},
	{Name: "CREEPING", Lo1: 0.05, Hi1: 0.12, Lo2: 0.10, Hi2: 0.20},
	{Name: "BALANCED", Lo1: 0.12, Hi1: 0.22, Lo2: 0.08, Hi2: 0.15},
	{Name: "BLITZ", Lo1: 0.25, Hi1: 0.40, Lo2: 0.02, Hi2: 0.08},
	{Name: "TOTAL WAR", Lo1: 0.25, Hi1: 0.40, Lo2: 0.15, Hi2: 0.30},
	{Name: "EROSION", Lo1: 0.05, Hi1: 0.12, Lo2: 0.20, Hi2: 0.30},
}

// buildPalettes returns the single encoded palette: black for empty, then
// each colony color at its quantized brightness levels.
func buildPalettes(int) []palette.Palette {
	p := make(palette.Palette, 1+len(colonyColors)*brightnessLevels)
	p[0] = palette.RGB(0, 0, 0)
	for ci, base := range colonyColors {
		for l := 0; l < brightnessLevels; l++ {
			brightness := 0.3 + 0.7*float64(l)/float64(brightnessLevels-1)
			p[1+ci*brightnessLevels+l] = color.RGBA{
				R: uint8(float64(base.R) * brightness),
				G: uint8(float64(base.G) * brightness),
				B: uint8(float64(base.B) * brightness),
				A: 255,
			}
		}
	}
	return []palette.Palette{p}
}

func init() {
	lab.Register("slimelab", func(store settings.Store, seed int64) *lab.Lab {
		return lab.New(lab.Config{
			Name:   "slimelab",
			Engine: New(DefaultConfig()),
			AxisX: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "growth", Label: "Growth chance", Type: core.ParamTypeFloat,
					Step: 0.02, Min: 0.02, Max: 0.40,
				},
				Default:     0.15,
				SettingsKey: "slime_lab_growth",
				Format: func(v float64) string {
					return fmt.Sprintf("grow=%.2f", v)
				},
			},
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "attack", Label: "Attack power", Type: core.ParamTypeFloat,
					Step: 0.02, Min: 0.02, Max: 0.30,
				},
				Default:     0.10,
				SettingsKey: "slime_lab_attack",
				Format: func(v float64) string {
					return fmt.Sprintf("atk=%.2f", v)
				},
			},
			Regions:      regions,
			Palettes:     buildPalettes,
			Store:        store,
			StepInterval: 0.08,
			Seed:         seed,
		})
	})
}
