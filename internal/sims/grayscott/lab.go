package grayscott

import (
	"fmt"
	"image/color"

	"ca-lab/internal/core"
	"ca-lab/internal/lab"
	"ca-lab/internal/palette"
	"ca-lab/internal/settings"
)

// rampKeys are the continuous display ramps shared by every Gray-Scott
// visual; the V concentration interpolates across each one.
var rampKeys = [][]color.RGBA{
	// Ocean
	{
		palette.RGB(5, 10, 40), palette.RGB(10, 40, 120), palette.RGB(20, 100, 180),
		palette.RGB(80, 200, 220), palette.RGB(200, 255, 255), palette.RGB(255, 255, 255),
	},
	// Fire
	{
		palette.RGB(10, 5, 0), palette.RGB(80, 10, 0), palette.RGB(200, 50, 0),
		palette.RGB(255, 150, 0), palette.RGB(255, 230, 50), palette.RGB(255, 255, 200),
	},
	// Forest
	{
		palette.RGB(5, 15, 5), palette.RGB(10, 60, 20), palette.RGB(30, 130, 40),
		palette.RGB(80, 200, 60), palette.RGB(180, 240, 100), palette.RGB(240, 255, 200),
	},
	// Purple
	{
		palette.RGB(10, 0, 20), palette.RGB(40, 0, 80), palette.RGB(100, 20, 160),
		palette.RGB(180, 80, 220), palette.RGB(220, 160, 255), palette.RGB(255, 230, 255),
	},
	// Grayscale
	{
		palette.RGB(10, 10, 10), palette.RGB(50, 50, 50), palette.RGB(100, 100, 100),
		palette.RGB(160, 160, 160), palette.RGB(210, 210, 210), palette.RGB(255, 255, 255),
	},
	// Thermal
	{
		palette.RGB(0, 0, 40), palette.RGB(0, 0, 150), palette.RGB(0, 180, 180),
		palette.RGB(0, 255, 0), palette.RGB(255, 255, 0), palette.RGB(255, 0, 0),
	},
}

// Ramps exposes the shared continuous display ramps; the Lenia visuals use
// the same set.
func Ramps(int) []palette.Palette {
	out := make([]palette.Palette, len(rampKeys))
	for i, keys := range rampKeys {
		out[i] = palette.Palette(keys)
	}
	return out
}

func fAxis(fam Family, def float64, key string, eng *Sim) lab.Axis {
	return lab.Axis{
		ParameterControl: core.ParameterControl{
			Key: "f", Label: "Feed rate", Type: core.ParamTypeFloat,
			Step: 0.001, Min: fam.FMin, Max: fam.FMax,
		},
		Default:     def,
		SettingsKey: key,
		Format: func(float64) string {
			return fmt.Sprintf("f=%.3f", eng.F())
		},
	}
}

func init() {
	// Full explorer: feed rate and pattern family are both live.
	lab.Register("grayscottlab", func(store settings.Store, seed int64) *lab.Lab {
		eng := New(DefaultConfig())
		fam := Family{FMin: 0.020, FMax: 0.086} // union of all family bands
		return lab.New(lab.Config{
			Name:   "grayscottlab",
			Engine: eng,
			AxisX:  fAxis(fam, Families[0].FCenter, "gs_lab_f", eng),
			AxisY: lab.Axis{
				ParameterControl: core.ParameterControl{
					Key: "family", Label: "Family", Type: core.ParamTypeInt,
					Step: 1, Min: 0, Max: float64(len(Families) - 1),
				},
				Default:     0,
				SettingsKey: "gs_lab_family",
				Format: func(float64) string {
					return fmt.Sprintf("k=%.3f", eng.K())
				},
			},
			Classify: func(_, _ float64) string {
				return eng.FamilyName()
			},
			Palettes:   Ramps,
			Store:      store,
			PaletteKey: "gs_lab_palette",
			PersistExtra: func(store settings.Store) {
				// The committed pair must be the values the solver actually
				// ran, not the raw axis position.
				store.Set("gs_lab_f", eng.F())
				store.Set("gs_lab_k", eng.K())
			},
			Seed: seed,
		})
	})

	// Auto-play: runs the committed (f, k) pair with no live axes.
	lab.Register("grayscott", func(store settings.Store, seed int64) *lab.Lab {
		cfg := DefaultConfig()
		paletteIdx := 0
		if store != nil {
			cfg.F = store.Get("gs_lab_f", cfg.F)
			cfg.K = store.Get("gs_lab_k", cfg.K)
			paletteIdx = int(store.Get("gs_lab_palette", 0))
		}
		eng := New(cfg)
		return lab.New(lab.Config{
			Name:         "grayscott",
			Engine:       eng,
			Palettes:     Ramps,
			PaletteIndex: paletteIdx,
			Seed:         seed,
		})
	})

	// Fixed-family presentation variants: f is editable inside the band but
	// never persisted.
	variants := []struct {
		name   string
		family int
	}{
		{"turingspots", 0},
		{"turinglines", 1},
		{"turingcoral", 2},
		{"turingworms", 3},
	}
	for _, v := range variants {
		v := v
		lab.Register(v.name, func(_ settings.Store, seed int64) *lab.Lab {
			fam := Families[v.family]
			eng := New(Config{Size: 64, Family: v.family, F: fam.FCenter, K: fam.KFor(fam.FCenter)})
			return lab.New(lab.Config{
				Name:     v.name,
				Engine:   eng,
				AxisX:    fAxis(fam, fam.FCenter, "", eng),
				Palettes: Ramps,
				Seed:     seed,
			})
		})
	}
}
