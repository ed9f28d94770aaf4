package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by an engine.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterSnapshot captures the current set of tunables exposed by an engine.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterSnapshotProvider is implemented by engines that can report their
// tunables for telemetry output.
type ParameterSnapshotProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes one adjustable parameter axis. Step is the
// increment applied per discrete input press; Min and Max are the closed
// bounds the value is clamped to.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64
	Min  float64
	Max  float64
}

// Clamp forces v into the control's closed range.
func (c ParameterControl) Clamp(v float64) float64 {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

// IntParameterSetter allows the lab controller to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows the lab controller to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
