// Package config loads engine settings from flags and SPITEWELL_ prefixed
// environment variables, backed by viper.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spitewell/spitewell/board"
)

// Keys for the recognized settings.
const (
	WellWidth  = "well-width"
	WellDepth  = "well-depth"
	BarRow     = "bar-row"
	PickerName = "picker"
	Seed       = "seed"
	Debug      = "debug"
	CPUProfile = "cpu-profile"
	MemProfile = "mem-profile"
)

type Config struct {
	v *viper.Viper
}

// DefaultConfig returns a config with every setting at its default. Loading
// an empty argument list can only fail if the flag definitions themselves
// are broken, so that is a panic, not an error.
func DefaultConfig() *Config {
	c := &Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

// Load parses the given argument list. It can be called with nil to get
// defaults.
func (c *Config) Load(args []string) error {
	c.v = viper.New()
	fs := pflag.NewFlagSet("spitewell", pflag.ContinueOnError)
	fs.Int(WellWidth, 10, "well width in columns")
	fs.Int(WellDepth, 20, "well depth in rows")
	fs.Int(BarRow, 4, "bar row; lines above it neither clear nor score")
	fs.String(PickerName, "spite", "piece picker: spite, lookahead, uniform")
	fs.Uint64(Seed, 0, "seed for the uniform picker; 0 means nondeterministic")
	fs.Bool(Debug, false, "debug logging")
	fs.String(CPUProfile, "", "write a CPU profile to this path")
	fs.String(MemProfile, "", "write a memory profile on exit to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("spitewell")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return nil
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetUint64(key string) uint64 { return c.v.GetUint64(key) }

// Dims assembles the well geometry from the loaded settings; validation
// happens when the game is created.
func (c *Config) Dims() board.Dims {
	return board.Dims{
		Width: c.GetInt(WellWidth),
		Depth: c.GetInt(WellDepth),
		Bar:   c.GetInt(BarRow),
	}
}

// AllSettings is used for logging the loaded configuration.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
