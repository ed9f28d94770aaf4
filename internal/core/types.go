package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Engine defines the minimal contract a lab simulation must implement.
// Reset reseeds the simulation state; Step advances it by one generation
// (continuous engines run their fixed sub-step count inside one Step).
type Engine interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// CellEngine is implemented by discrete rule engines. Cells and Prev expose
// the current and previous generations for palette lookup and inter-step
// blending; all values are in [0, States).
type CellEngine interface {
	Engine
	Cells() []uint8
	Prev() []uint8
	States() int
}

// FieldEngine is implemented by continuous field engines. Field exposes a
// display-resolution scalar field with values clamped to [0, 1].
type FieldEngine interface {
	Engine
	Field() []float64
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}
