package qgl

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config of a Binding, usually read from a qgl.toml file.
//
//	library = "libGL.so.1"
//	cooldown_msec = 500
//	debug = true
type Config struct {
	Library      string `toml:"library"`       // driver library name or path
	CoolDownMsec int    `toml:"cooldown_msec"` // pause before close, 0 for the default, negative disables
	Debug        bool   `toml:"debug"`
}

// DefaultConfig returns the config for the platform default driver library.
func DefaultConfig() Config {
	return Config{
		Library:      DefaultLibrary,
		CoolDownMsec: int(DefaultCoolDown / time.Millisecond),
	}
}

// LoadConfig reads a TOML config file, values absent from the file keep the defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err = toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if conf.Library == "" {
		conf.Library = DefaultLibrary
	}
	return conf, nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CoolDown converts CoolDownMsec to a duration.
func (c Config) CoolDown() time.Duration {
	switch {
	case c.CoolDownMsec == 0:
		return DefaultCoolDown
	case c.CoolDownMsec < 0:
		return 0
	}
	return time.Duration(c.CoolDownMsec) * time.Millisecond
}

// NewBinding create a Binding configured by c.
func (c Config) NewBinding(l Loader, p Printer) *Binding {
	b := NewBinding(l, p, c.Debug)
	b.SetCoolDown(c.CoolDown())
	return b
}
