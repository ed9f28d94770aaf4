// Package region labels points in a 2D parameter space with human-readable
// descriptions of the qualitative behavior found there.
package region

// Region is an axis-aligned rectangle in parameter space with a display name.
// Both bounds of both axes are inclusive.
type Region struct {
	Name string
	Lo1  float64
	Hi1  float64
	Lo2  float64
	Hi2  float64
}

// Table is an ordered list of regions. Earlier entries win on overlap.
type Table []Region

// Classify returns the name of the first region containing (p1, p2), or the
// empty string when no region matches. It is stateless and side-effect free.
func (t Table) Classify(p1, p2 float64) string {
	for _, r := range t {
		if p1 >= r.Lo1 && p1 <= r.Hi1 && p2 >= r.Lo2 && p2 <= r.Hi2 {
			return r.Name
		}
	}
	return ""
}
