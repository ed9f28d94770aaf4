package lab

import "ca-lab/internal/settings"

// Factory constructs a lab visual bound to the provided settings store.
type Factory func(store settings.Store, seed int64) *Lab

var labs = map[string]Factory{}

// Register adds a lab factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	labs[name] = f
}

// Labs exposes the registry of available lab factories.
func Labs() map[string]Factory {
	return labs
}
