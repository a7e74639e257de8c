// Package config loads the program configuration from a TOML file. A missing
// file is created with the default values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/leterax/go-duck/pkg/controls"
	"github.com/leterax/go-duck/pkg/duck"
	"github.com/leterax/go-duck/pkg/input"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Config is the root of the configuration file.
type Config struct {
	Window   Window   `toml:"window"`
	Duck     Duck     `toml:"duck"`
	Controls Controls `toml:"controls"`
	Log      Log      `toml:"log"`
	Debug    Debug    `toml:"debug"`
}

// Window configures the game window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Duck holds the character tunables.
type Duck struct {
	Speed       float64 `toml:"speed"`
	Gravity     float64 `toml:"gravity"`
	Sensitivity float64 `toml:"sensitivity"`
}

// Controls holds key names for every action.
type Controls struct {
	CameraToggle string `toml:"camera_toggle"`
	Terminate    string `toml:"terminate"`
	FPSToggle    string `toml:"fps_toggle"`
	Forward      string `toml:"forward"`
	Backward     string `toml:"backward"`
	Left         string `toml:"left"`
	Right        string `toml:"right"`
}

// Log configures the logger.
type Log struct {
	Level string `toml:"level"`
}

// Debug configures optional diagnostics.
type Debug struct {
	StatsView     bool   `toml:"stats_view"`
	StatsViewAddr string `toml:"stats_view_addr"`
	SentryDSN     string `toml:"sentry_dsn"`
}

// Default returns the built-in configuration.
func Default() Config {
	b := controls.DefaultBindings()
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Duck Walk",
			VSync:  true,
		},
		Duck: Duck{
			Speed:       5,
			Gravity:     -9.81,
			Sensitivity: 3,
		},
		Controls: Controls{
			CameraToggle: b.CameraToggle.String(),
			Terminate:    b.Terminate.String(),
			FPSToggle:    b.FPSToggle.String(),
			Forward:      b.Forward.String(),
			Backward:     b.Backward.String(),
			Left:         b.Left.String(),
			Right:        b.Right.String(),
		},
		Log: Log{Level: logrus.InfoLevel.String()},
		Debug: Debug{
			StatsViewAddr: "localhost:18066",
		},
	}
}

// Load reads the configuration at path. Values missing from the file keep
// their defaults. If the file does not exist it is written with the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Write(path, c); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	c, err = Parse(data)
	if err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// floatKeys are the float fields that may be written as TOML integers.
var floatKeys = []string{"duck.speed", "duck.gravity", "duck.sensitivity"}

// Parse decodes TOML data on top of the defaults and validates the result.
// Keys that do not exist in the configuration are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	known, err := defaultTree()
	if err != nil {
		return c, err
	}
	if unknown := unknownKeys(tree, known, ""); len(unknown) > 0 {
		sort.Strings(unknown)
		return c, fmt.Errorf("unknown config keys: %s", strings.Join(unknown, ", "))
	}
	for _, key := range floatKeys {
		if v, ok := tree.Get(key).(int64); ok {
			tree.Set(key, float64(v))
		}
	}
	if err := tree.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// defaultTree returns the default configuration as a TOML tree.
func defaultTree() (*toml.Tree, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("encode default config: %w", err)
	}
	return toml.LoadBytes(data)
}

// unknownKeys lists the dotted paths in t that have no counterpart in known.
func unknownKeys(t, known *toml.Tree, prefix string) []string {
	var out []string
	for _, key := range t.Keys() {
		path := []string{key}
		if !known.HasPath(path) {
			out = append(out, prefix+key)
			continue
		}
		sub, isTable := t.GetPath(path).(*toml.Tree)
		knownSub, knownTable := known.GetPath(path).(*toml.Tree)
		switch {
		case isTable && knownTable:
			out = append(out, unknownKeys(sub, knownSub, prefix+key+".")...)
		case isTable != knownTable:
			out = append(out, prefix+key)
		}
	}
	return out
}

// Write encodes c as TOML to path.
func Write(path string, c Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks every value that could not be rejected while decoding.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	for name, v := range map[string]float64{
		"duck.speed":       c.Duck.Speed,
		"duck.gravity":     c.Duck.Gravity,
		"duck.sensitivity": c.Duck.Sensitivity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite", name)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// Bindings resolves the configured key names.
func (c Config) Bindings() (controls.Bindings, error) {
	var b controls.Bindings
	fields := []struct {
		name string
		key  string
		dst  *input.Key
	}{
		{"camera_toggle", c.Controls.CameraToggle, &b.CameraToggle},
		{"terminate", c.Controls.Terminate, &b.Terminate},
		{"fps_toggle", c.Controls.FPSToggle, &b.FPSToggle},
		{"forward", c.Controls.Forward, &b.Forward},
		{"backward", c.Controls.Backward, &b.Backward},
		{"left", c.Controls.Left, &b.Left},
		{"right", c.Controls.Right, &b.Right},
	}
	for _, f := range fields {
		k, err := input.ParseKey(f.key)
		if err != nil {
			return b, fmt.Errorf("controls.%s: %w", f.name, err)
		}
		*f.dst = k
	}
	return b, nil
}

// DuckTunables returns a duck carrying the configured tunables.
func (c Config) DuckTunables() duck.Duck {
	d := duck.Default()
	d.Speed = float32(c.Duck.Speed)
	d.Gravity = float32(c.Duck.Gravity)
	d.Sensitivity = float32(c.Duck.Sensitivity)
	return d
}
