// Package lab implements the shared parameter-exploration controller every
// lab visual instantiates around one rule or field engine: live tuning of one
// or two parameters, palette cycling, named-region labels, and the two-stage
// hold-then-release commit of tuned values to the settings store.
package lab

import (
	"image/color"
	"math"

	"ca-lab/internal/core"
	"ca-lab/internal/input"
	"ca-lab/internal/palette"
	"ca-lab/internal/region"
	"ca-lab/internal/render"
	"ca-lab/internal/settings"
)

// State identifies the controller's interaction phase.
type State int

const (
	// Browsing is the default phase: parameters editable, palette cyclable.
	Browsing State = iota
	// ConfirmPending is the 3-second window opened by releasing both held
	// action buttons, during which one press commits and the other cancels.
	ConfirmPending
	// Saved is the 1.5-second display phase after a successful commit.
	Saved
)

const (
	overlayShow   = 2.0
	confirmWindow = 3.0
	savedShow     = 1.5
	fadeTail      = 0.5
)

// Axis binds one tunable engine parameter to a directional input pair.
type Axis struct {
	core.ParameterControl

	// Default is the value used when the settings store has no entry.
	Default float64
	// SettingsKey is the full persisted key, e.g. "cyclic_lab_states".
	// Empty disables persistence for this axis.
	SettingsKey string
	// Format renders the overlay line for the current value.
	Format func(v float64) string
}

func (a Axis) used() bool { return a.Key != "" }

// Config wires a Lab around an engine.
type Config struct {
	// Name is the registry/display name of the lab visual.
	Name   string
	Engine core.Engine

	// AxisX is edited by left/right presses, AxisY by down/up. A zero-value
	// axis is unused.
	AxisX Axis
	AxisY Axis

	// Regions names areas of the (x, y) parameter plane. Classify, when set,
	// overrides the table lookup (for engines with fallback labels).
	Regions  region.Table
	Classify func(x, y float64) string

	// Palettes builds the palette set for the engine's current state count.
	// It is re-invoked whenever a parameter edit changes the state count.
	Palettes func(states int) []palette.Palette

	// Store receives committed parameters. A nil store disables the commit
	// protocol entirely (used by the fixed-parameter presentation variants).
	Store      settings.Store
	PaletteKey string

	// PaletteIndex is the starting palette when the store has no entry.
	PaletteIndex int

	// PersistExtra writes derived values (e.g. the co-varying Gray-Scott k)
	// on commit.
	PersistExtra func(store settings.Store)

	// StepInterval is the seconds between engine generations; zero steps the
	// engine every update with blend pinned to 1.
	StepInterval float64
	Seed         int64
}

// Lab is the shared live-tuning state machine. It owns exactly one engine
// and one active palette; parameters and palette index are its only state
// that ever reaches the settings store.
type Lab struct {
	cfg    Config
	engine core.Engine
	cells  core.CellEngine
	field  core.FieldEngine

	intSet   core.IntParameterSetter
	floatSet core.FloatParameterSetter

	clock      *core.StepClock
	palettes   []palette.Palette
	paletteIdx int
	states     int

	x, y  float64
	blend float64

	overlayTimer float64
	confirmTimer float64
	savedTimer   float64
	bothHeldPrev bool

	seed int64
}

// New builds a Lab from the config, loading persisted parameters (clamped to
// the current axis ranges) and seeding the engine.
func New(cfg Config) *Lab {
	l := &Lab{cfg: cfg, engine: cfg.Engine, seed: cfg.Seed}
	l.cells, _ = cfg.Engine.(core.CellEngine)
	l.field, _ = cfg.Engine.(core.FieldEngine)
	l.intSet, _ = cfg.Engine.(core.IntParameterSetter)
	l.floatSet, _ = cfg.Engine.(core.FloatParameterSetter)
	l.clock = core.NewStepClock(cfg.StepInterval)

	l.x = l.loadAxis(cfg.AxisX)
	l.y = l.loadAxis(cfg.AxisY)
	// The Y axis lands first: a mode-style Y axis (a pattern family, say)
	// constrains the range the engine accepts for X, so X must follow it.
	l.applyAxis(cfg.AxisY, l.y)
	l.applyAxis(cfg.AxisX, l.x)

	l.paletteIdx = cfg.PaletteIndex
	if cfg.Store != nil && cfg.PaletteKey != "" {
		l.paletteIdx = int(cfg.Store.Get(cfg.PaletteKey, float64(cfg.PaletteIndex)))
	}
	l.rebuildPalettes()

	l.engine.Reset(l.seed)
	l.overlayTimer = overlayShow
	return l
}

// Name returns the lab's registry name.
func (l *Lab) Name() string { return l.cfg.Name }

// Engine exposes the wrapped engine.
func (l *Lab) Engine() core.Engine { return l.engine }

// State reports the current interaction phase.
func (l *Lab) State() State {
	if l.savedTimer > 0 {
		return Saved
	}
	if l.confirmTimer > 0 {
		return ConfirmPending
	}
	return Browsing
}

// X returns the current value of the first parameter axis.
func (l *Lab) X() float64 { return l.x }

// Y returns the current value of the second parameter axis.
func (l *Lab) Y() float64 { return l.y }

// PaletteIndex returns the active palette index.
func (l *Lab) PaletteIndex() int { return l.paletteIdx }

func (l *Lab) loadAxis(a Axis) float64 {
	if !a.used() {
		return 0
	}
	v := a.Default
	if l.cfg.Store != nil && a.SettingsKey != "" {
		v = l.cfg.Store.Get(a.SettingsKey, a.Default)
	}
	// Stale saves from before a range change clamp instead of erroring.
	return a.Clamp(v)
}

func (l *Lab) applyAxis(a Axis, v float64) {
	if !a.used() {
		return
	}
	if a.Type == core.ParamTypeInt {
		if l.intSet != nil {
			l.intSet.SetIntParameter(a.Key, int(math.Round(v)))
		}
		return
	}
	if l.floatSet != nil {
		l.floatSet.SetFloatParameter(a.Key, v)
	}
}

func (l *Lab) rebuildPalettes() {
	states := 256
	if l.cells != nil {
		states = l.cells.States()
	}
	l.states = states
	if l.cfg.Palettes != nil {
		l.palettes = l.cfg.Palettes(states)
	}
	if len(l.palettes) == 0 {
		l.palettes = []palette.Palette{palette.Gradient([]color.RGBA{
			palette.RGB(0, 0, 0), palette.RGB(255, 255, 255)}, states)}
	}
	l.paletteIdx = ((l.paletteIdx % len(l.palettes)) + len(l.palettes)) % len(l.palettes)
}

func (l *Lab) adjust(a Axis, current float64, dir float64) float64 {
	if !a.used() {
		return current
	}
	v := a.Clamp(current + dir*a.Step)
	if v != current {
		l.applyAxis(a, v)
	}
	l.overlayTimer = overlayShow
	return v
}

func (l *Lab) checkStates() {
	if l.cells == nil {
		return
	}
	if l.cells.States() != l.states {
		l.rebuildPalettes()
	}
}

func (l *Lab) cyclePalette() {
	l.paletteIdx = (l.paletteIdx + 1) % len(l.palettes)
	l.seed++
	l.engine.Reset(l.seed)
}

func (l *Lab) commit() {
	store := l.cfg.Store
	if store == nil {
		return
	}
	if l.cfg.AxisX.used() && l.cfg.AxisX.SettingsKey != "" {
		store.Set(l.cfg.AxisX.SettingsKey, l.x)
	}
	if l.cfg.AxisY.used() && l.cfg.AxisY.SettingsKey != "" {
		store.Set(l.cfg.AxisY.SettingsKey, l.y)
	}
	if l.cfg.PaletteKey != "" {
		store.Set(l.cfg.PaletteKey, float64(l.paletteIdx))
	}
	if l.cfg.PersistExtra != nil {
		l.cfg.PersistExtra(store)
	}
	l.savedTimer = savedShow
	l.confirmTimer = 0
}

// HandleInput applies one frame of decoded input and reports whether any of
// it was consumed. Parameter edits happen once per press edge, not per frame.
// The saved display phase consumes nothing; it only times out.
func (l *Lab) HandleInput(in input.State) bool {
	if l.savedTimer > 0 {
		l.bothHeldPrev = in.ActionLHeld && in.ActionRHeld
		return false
	}
	consumed := false
	if in.LeftPressed {
		l.x = l.adjust(l.cfg.AxisX, l.x, -1)
		consumed = l.cfg.AxisX.used()
	}
	if in.RightPressed {
		l.x = l.adjust(l.cfg.AxisX, l.x, 1)
		consumed = consumed || l.cfg.AxisX.used()
	}
	if in.UpPressed {
		l.y = l.adjust(l.cfg.AxisY, l.y, 1)
		consumed = consumed || l.cfg.AxisY.used()
	}
	if in.DownPressed {
		l.y = l.adjust(l.cfg.AxisY, l.y, -1)
		consumed = consumed || l.cfg.AxisY.used()
	}
	l.checkStates()

	bothHeld := in.ActionLHeld && in.ActionRHeld
	bothReleased := l.bothHeldPrev && !bothHeld
	switch {
	case bothReleased && l.cfg.Store != nil:
		// The deliberate hold-then-release gesture opens the confirm window;
		// acting on the release edge filters out accidental double taps.
		l.confirmTimer = confirmWindow
		consumed = true
	case l.confirmTimer > 0 && !bothHeld:
		if in.ActionR {
			l.commit()
			consumed = true
		} else if in.ActionL {
			l.confirmTimer = 0
			consumed = true
		}
	case !bothHeld:
		if in.ActionL || in.ActionR {
			l.cyclePalette()
			consumed = true
		}
	}
	l.bothHeldPrev = bothHeld
	return consumed
}

// Update advances timers and, when the step clock fires, the engine.
func (l *Lab) Update(dt float64) {
	if l.clock.Advance(dt) {
		l.engine.Step()
	}
	l.blend = l.clock.Blend()

	l.overlayTimer = math.Max(0, l.overlayTimer-dt)
	l.savedTimer = math.Max(0, l.savedTimer-dt)
	l.confirmTimer = math.Max(0, l.confirmTimer-dt)
}

// Blend returns the inter-step blend fraction used by the last Draw.
func (l *Lab) Blend() float64 { return l.blend }

// Draw renders the engine state through the active palette into the frame,
// cross-blending discrete cells toward the previous generation's colors.
func (l *Lab) Draw(f *render.Frame) {
	pal := l.palettes[l.paletteIdx]
	if l.cells != nil {
		cells := l.cells.Cells()
		prev := l.cells.Prev()
		if len(f.Pix) != len(cells) {
			return
		}
		n := l.cells.States()
		b := l.blend
		for i, c := range cells {
			cc := pal.Entry(int(c), n)
			if b < 1 && prev[i] != c {
				cc = palette.Lerp(pal.Entry(int(prev[i]), n), cc, b)
			}
			f.Pix[i] = cc
		}
		return
	}
	if l.field != nil {
		vals := l.field.Field()
		if len(f.Pix) != len(vals) {
			return
		}
		for i, v := range vals {
			f.Pix[i] = pal.Sample(v)
		}
	}
}

// TextLine is one transient overlay string, positioned in canvas pixels.
// The text renderer itself is an external collaborator.
type TextLine struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: 255,
	}
}

func (l *Lab) classify() string {
	if l.cfg.Classify != nil {
		return l.cfg.Classify(l.x, l.y)
	}
	return l.cfg.Regions.Classify(l.x, l.y)
}

// Overlay returns the transient text to draw over the frame this update:
// the parameter readout (with region label when one matches) and the
// SAVE?/SAVED prompts of the commit protocol.
func (l *Lab) Overlay() []TextLine {
	var lines []TextLine
	y := 2
	maxLines := 0
	if l.cfg.AxisX.used() {
		maxLines++
	}
	if l.cfg.AxisY.used() {
		maxLines++
	}
	if len(l.cfg.Regions) > 0 || l.cfg.Classify != nil {
		maxLines++
	}

	if l.overlayTimer > 0 && maxLines > 0 {
		alpha := math.Min(1, l.overlayTimer/fadeTail)
		white := fade(palette.RGB(255, 255, 255), alpha)
		if name := l.classify(); name != "" {
			lines = append(lines, TextLine{X: 2, Y: y, Text: name, Color: white})
			y += 6
		}
		if a := l.cfg.AxisX; a.used() && a.Format != nil {
			lines = append(lines, TextLine{X: 2, Y: y, Text: a.Format(l.x), Color: white})
			y += 6
		}
		if a := l.cfg.AxisY; a.used() && a.Format != nil {
			lines = append(lines, TextLine{X: 2, Y: y, Text: a.Format(l.y), Color: white})
			y += 6
		}
	}

	promptY := 2 + 6*maxLines
	if l.confirmTimer > 0 && l.savedTimer <= 0 {
		alpha := math.Min(1, l.confirmTimer/fadeTail)
		lines = append(lines, TextLine{X: 2, Y: promptY, Text: "SAVE?", Color: fade(palette.RGB(255, 220, 80), alpha)})
	}
	if l.savedTimer > 0 {
		alpha := math.Min(1, l.savedTimer/fadeTail)
		lines = append(lines, TextLine{X: 2, Y: promptY, Text: "SAVED", Color: fade(palette.RGB(80, 255, 80), alpha)})
	}
	return lines
}
