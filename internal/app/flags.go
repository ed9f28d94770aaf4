package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Lab      string
	Scale    int
	TPS      int
	Seed     int64
	Settings string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Lab: "cycliclab", Scale: 8, TPS: 60, Seed: 42, Settings: "ca-lab.json"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Lab, "lab", c.Lab, "lab visual to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for engine reset")
	fs.StringVar(&c.Settings, "settings", c.Settings, "path of the persisted settings file")
}
