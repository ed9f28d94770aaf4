package lab

import (
	"fmt"
	"testing"

	"ca-lab/internal/core"
	"ca-lab/internal/input"
	"ca-lab/internal/palette"
	"ca-lab/internal/region"
	"ca-lab/internal/settings"
)

// stubEngine is a minimal discrete engine for controller tests.
type stubEngine struct {
	states    int
	threshold int
	resets    int
	steps     int
	cells     []uint8
	prev      []uint8
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		states: 12, threshold: 2,
		cells: make([]uint8, 16),
		prev:  make([]uint8, 16),
	}
}

func (e *stubEngine) Name() string     { return "stub" }
func (e *stubEngine) Size() core.Size  { return core.Size{W: 4, H: 4} }
func (e *stubEngine) Reset(seed int64) { e.resets++ }
func (e *stubEngine) Step()            { e.steps++ }
func (e *stubEngine) Cells() []uint8   { return e.cells }
func (e *stubEngine) Prev() []uint8    { return e.prev }
func (e *stubEngine) States() int      { return e.states }

func (e *stubEngine) SetIntParameter(key string, v int) bool {
	switch key {
	case "states":
		e.states = v
	case "threshold":
		e.threshold = v
	default:
		return false
	}
	return true
}

func stubConfig(store settings.Store) Config {
	return Config{
		Name:   "stublab",
		Engine: newStubEngine(),
		AxisX: Axis{
			ParameterControl: core.ParameterControl{
				Key: "states", Type: core.ParamTypeInt, Step: 1, Min: 3, Max: 28,
			},
			Default:     12,
			SettingsKey: "stub_lab_states",
			Format:      func(v float64) string { return fmt.Sprintf("states=%d", int(v)) },
		},
		AxisY: Axis{
			ParameterControl: core.ParameterControl{
				Key: "threshold", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 5,
			},
			Default:     2,
			SettingsKey: "stub_lab_threshold",
			Format:      func(v float64) string { return fmt.Sprintf("thresh=%d", int(v)) },
		},
		Regions: region.Table{
			{Name: "LOW", Lo1: 3, Hi1: 10, Lo2: 1, Hi2: 5},
			{Name: "HIGH", Lo1: 11, Hi1: 28, Lo2: 1, Hi2: 5},
		},
		Palettes: func(states int) []palette.Palette {
			return []palette.Palette{
				palette.BandedRainbow(1, states),
				palette.MonoBands(palette.RGB(255, 80, 0), 2, states),
			}
		},
		Store:      store,
		PaletteKey: "stub_lab_palette",
		Seed:       7,
	}
}

func holdBoth(l *Lab) {
	l.HandleInput(input.State{ActionLHeld: true, ActionRHeld: true})
}

func releaseBoth(l *Lab) {
	l.HandleInput(input.State{})
}

func TestCommitPersistsTunedValues(t *testing.T) {
	store := settings.NewMemStore()
	l := New(stubConfig(store))

	l.HandleInput(input.State{RightPressed: true})
	l.HandleInput(input.State{RightPressed: true})
	l.HandleInput(input.State{UpPressed: true})
	if l.X() != 14 || l.Y() != 3 {
		t.Fatalf("after edits got x=%v y=%v, want 14, 3", l.X(), l.Y())
	}

	holdBoth(l)
	releaseBoth(l)
	if l.State() != ConfirmPending {
		t.Fatalf("after hold-release state = %v, want ConfirmPending", l.State())
	}

	l.HandleInput(input.State{ActionR: true})
	if l.State() != Saved {
		t.Fatalf("after confirm state = %v, want Saved", l.State())
	}
	if got := store.Get("stub_lab_states", -1); got != 14 {
		t.Fatalf("persisted states = %v, want 14", got)
	}
	if got := store.Get("stub_lab_threshold", -1); got != 3 {
		t.Fatalf("persisted threshold = %v, want 3", got)
	}
	if got := store.Get("stub_lab_palette", -1); got != 0 {
		t.Fatalf("persisted palette = %v, want 0", got)
	}
}

func TestConfirmWindowExpiresWithoutWriting(t *testing.T) {
	store := settings.NewMemStore()
	l := New(stubConfig(store))

	holdBoth(l)
	releaseBoth(l)
	l.Update(3.1)
	if l.State() != Browsing {
		t.Fatalf("after expiry state = %v, want Browsing", l.State())
	}
	if got := store.Get("stub_lab_states", -1); got != -1 {
		t.Fatalf("expiry wrote states=%v, want untouched store", got)
	}
}

func TestCancelDiscardsConfirmWindow(t *testing.T) {
	store := settings.NewMemStore()
	l := New(stubConfig(store))

	holdBoth(l)
	releaseBoth(l)
	l.HandleInput(input.State{ActionL: true})
	if l.State() != Browsing {
		t.Fatalf("after cancel state = %v, want Browsing", l.State())
	}
	if got := store.Get("stub_lab_threshold", -1); got != -1 {
		t.Fatalf("cancel wrote threshold=%v, want untouched store", got)
	}
}

func TestSinglePressCyclesPaletteAndReseeds(t *testing.T) {
	l := New(stubConfig(settings.NewMemStore()))
	eng := l.Engine().(*stubEngine)
	resets := eng.resets

	l.HandleInput(input.State{ActionR: true})
	if l.PaletteIndex() != 1 {
		t.Fatalf("palette index = %d, want 1", l.PaletteIndex())
	}
	if eng.resets != resets+1 {
		t.Fatalf("resets = %d, want %d", eng.resets, resets+1)
	}

	l.HandleInput(input.State{ActionL: true})
	if l.PaletteIndex() != 0 {
		t.Fatalf("palette index after wrap = %d, want 0", l.PaletteIndex())
	}
}

func TestEditsClampToAxisRange(t *testing.T) {
	l := New(stubConfig(settings.NewMemStore()))
	for i := 0; i < 30; i++ {
		l.HandleInput(input.State{RightPressed: true})
	}
	if l.X() != 28 {
		t.Fatalf("x = %v, want clamped to 28", l.X())
	}
	for i := 0; i < 30; i++ {
		l.HandleInput(input.State{DownPressed: true})
	}
	if l.Y() != 1 {
		t.Fatalf("y = %v, want clamped to 1", l.Y())
	}
}

// modeStubEngine clamps its level into a per-mode ceiling, making the load
// order of the two axes observable.
type modeStubEngine struct {
	stubEngine
	mode  int
	level int
}

func (e *modeStubEngine) ceiling() int { return (e.mode + 1) * 10 }

func (e *modeStubEngine) SetIntParameter(key string, v int) bool {
	switch key {
	case "mode":
		e.mode = v
	case "level":
		e.level = v
	default:
		return false
	}
	if e.level > e.ceiling() {
		e.level = e.ceiling()
	}
	return true
}

func TestModeAxisLoadsBeforeItsDependentValue(t *testing.T) {
	store := settings.NewMemStore()
	store.Set("mode_lab_level", 25)
	store.Set("mode_lab_mode", 2) // ceiling 30; the default mode's is 10
	eng := &modeStubEngine{stubEngine: *newStubEngine()}
	l := New(Config{
		Name:   "modelab",
		Engine: eng,
		AxisX: Axis{
			ParameterControl: core.ParameterControl{
				Key: "level", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 30,
			},
			Default:     5,
			SettingsKey: "mode_lab_level",
		},
		AxisY: Axis{
			ParameterControl: core.ParameterControl{
				Key: "mode", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 3,
			},
			Default:     0,
			SettingsKey: "mode_lab_mode",
		},
		Store: store,
		Seed:  1,
	})

	if l.X() != 25 {
		t.Fatalf("x = %v, want 25", l.X())
	}
	// Loading level before mode would clamp it to the default mode's ceiling.
	if eng.level != 25 {
		t.Fatalf("engine level = %d, want 25 to match the axis", eng.level)
	}
	if eng.mode != 2 {
		t.Fatalf("engine mode = %d, want 2", eng.mode)
	}
}

func TestStalePersistedValuesClampOnLoad(t *testing.T) {
	store := settings.NewMemStore()
	store.Set("stub_lab_states", 999)
	store.Set("stub_lab_threshold", -4)
	l := New(stubConfig(store))
	if l.X() != 28 || l.Y() != 1 {
		t.Fatalf("loaded x=%v y=%v, want 28, 1", l.X(), l.Y())
	}
	eng := l.Engine().(*stubEngine)
	if eng.states != 28 || eng.threshold != 1 {
		t.Fatalf("engine states=%d threshold=%d, want 28, 1", eng.states, eng.threshold)
	}
}

func TestNilStoreNeverOpensConfirmWindow(t *testing.T) {
	cfg := stubConfig(nil)
	cfg.Store = nil
	l := New(cfg)
	eng := l.Engine().(*stubEngine)
	resets := eng.resets

	holdBoth(l)
	releaseBoth(l)
	if l.State() != Browsing {
		t.Fatalf("storeless lab state = %v, want Browsing", l.State())
	}

	// Action presses still cycle palette and reseed.
	l.HandleInput(input.State{ActionR: true})
	if eng.resets != resets+1 {
		t.Fatalf("resets = %d, want %d", eng.resets, resets+1)
	}
}

func TestOverlayFadesAndNamesRegion(t *testing.T) {
	l := New(stubConfig(settings.NewMemStore()))
	l.HandleInput(input.State{RightPressed: true}) // x=13 -> HIGH

	lines := l.Overlay()
	if len(lines) != 3 {
		t.Fatalf("overlay lines = %d, want 3", len(lines))
	}
	if lines[0].Text != "HIGH" {
		t.Fatalf("region line = %q, want HIGH", lines[0].Text)
	}
	if lines[1].Text != "states=13" {
		t.Fatalf("param line = %q, want states=13", lines[1].Text)
	}
	if lines[0].Color.R != 255 {
		t.Fatalf("fresh overlay R = %d, want full brightness", lines[0].Color.R)
	}

	l.Update(1.75) // 0.25s left, halfway through the fade tail
	lines = l.Overlay()
	if len(lines) != 3 {
		t.Fatalf("fading overlay lines = %d, want 3", len(lines))
	}
	if r := lines[0].Color.R; r < 120 || r > 135 {
		t.Fatalf("fading overlay R = %d, want about 127", r)
	}

	l.Update(0.3)
	if lines = l.Overlay(); len(lines) != 0 {
		t.Fatalf("expired overlay lines = %d, want 0", len(lines))
	}
}

func TestSavedPhaseIgnoresInput(t *testing.T) {
	l := New(stubConfig(settings.NewMemStore()))
	eng := l.Engine().(*stubEngine)

	holdBoth(l)
	releaseBoth(l)
	l.HandleInput(input.State{ActionR: true})
	if l.State() != Saved {
		t.Fatalf("state = %v, want Saved", l.State())
	}

	x := l.X()
	resets := eng.resets
	l.HandleInput(input.State{RightPressed: true, ActionL: true})
	if l.X() != x {
		t.Fatalf("x = %v, want %v: edits during the saved phase", l.X(), x)
	}
	if eng.resets != resets {
		t.Fatal("palette cycle consumed during the saved phase")
	}

	l.Update(1.6)
	if l.State() != Browsing {
		t.Fatalf("state after timeout = %v, want Browsing", l.State())
	}
}

func TestSavedPromptReplacesSaveQuery(t *testing.T) {
	l := New(stubConfig(settings.NewMemStore()))
	l.Update(2.5) // expire the initial overlay

	holdBoth(l)
	releaseBoth(l)
	lines := l.Overlay()
	if len(lines) != 1 || lines[0].Text != "SAVE?" {
		t.Fatalf("confirm overlay = %+v, want single SAVE? line", lines)
	}

	l.HandleInput(input.State{ActionR: true})
	lines = l.Overlay()
	if len(lines) != 1 || lines[0].Text != "SAVED" {
		t.Fatalf("saved overlay = %+v, want single SAVED line", lines)
	}
}
