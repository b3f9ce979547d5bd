package config

import (
	"fmt"
	"sort"
)

type Preset struct {
	Description string
	apply       func(c *Config)
}

var Presets = map[string]Preset{
	"classic": {
		Description: "six rounds against ten targets",
		apply:       func(c *Config) {},
	},
	"rapid": {
		Description: "twelve fast rounds against quick targets",
		apply: func(c *Config) {
			c.Projectile.Capacity = 12
			c.Projectile.Speed = 30
			c.Projectile.TTL = 3
			c.Target.Speed = 8
		},
	},
	"marksman": {
		Description: "three rounds against a wide back row",
		apply: func(c *Config) {
			c.Projectile.Capacity = 3
			c.Target.Speed = 7
			c.Target.BackSpacing = 20
			c.Emitter.AimStep = 0.25
		},
	},
	"sandbox": {
		Description: "a deep magazine of rounds that fly flat at slow targets",
		apply: func(c *Config) {
			c.Projectile.Capacity = 20
			c.Projectile.Gravity = 0
			c.Projectile.TTL = 10
			c.Target.Speed = 2
			c.Sim.Duration = 120
		},
	},
}

// GetPreset returns a fresh config with the named preset applied over the
// defaults.
func GetPreset(name string) (*Config, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	p.apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
