// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors/cam/hct"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultSource is the default source color of a [Config].
const DefaultSource = "#4285f4"

// Config is a request for a [Scheme] that can be saved to and
// loaded from a file. Use [Config.Defaults] to initialize it.
type Config struct {

	// Source is the source color, as a hex color (#rgb or #rrggbb)
	// or a CSS color name.
	Source string

	// Variant is the strategy used to derive the palettes.
	Variant Variants

	// Dark is whether to use dark mode.
	Dark bool

	// Contrast is the contrast level, from -1 (reduced) to 1 (high),
	// with 0 being normal.
	Contrast float32
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Source = DefaultSource
	c.Variant = TonalSpot
	c.Dark = false
	c.Contrast = 0
}

// Open returns a new [Config] loaded from the given file, starting
// from the default values. The format is determined by the extension
// of the file: .toml, .yaml, .yml, or .json.
func Open(filename string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	if err := c.Open(filename); err != nil {
		return nil, err
	}
	return c, nil
}

// Open loads the config from the given file on top of its current
// values. The format is determined by the extension of the file:
// .toml, .yaml, .yml, or .json.
func (c *Config) Open(filename string) error {
	var unmarshal func(data []byte, v any) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".json":
		unmarshal = json.Unmarshal
	default:
		return fmt.Errorf("dynamic.Config.Open: unsupported file extension %q for %q", ext, filename)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("dynamic.Config.Open: %w", err)
	}
	slog.Debug("opening dynamic color config", "file", filename)
	if err := unmarshal(b, c); err != nil {
		return fmt.Errorf("dynamic.Config.Open: decoding %q: %w", filename, err)
	}
	return nil
}

// SourceColor returns the source color of the config,
// parsed from [Config.Source].
func (c *Config) SourceColor() (hct.HCT, error) {
	src := strings.TrimSpace(c.Source)
	if strings.HasPrefix(src, "#") {
		cl, err := colorful.Hex(src)
		if err != nil {
			return hct.HCT{}, fmt.Errorf("dynamic.Config.SourceColor: invalid hex color %q: %w", c.Source, err)
		}
		return hct.FromColor(cl), nil
	}
	slog.Debug("dynamic color config source is not hex; using color name", "source", src)
	nc, ok := colornames.Map[strings.ToLower(src)]
	if !ok {
		return hct.HCT{}, fmt.Errorf("dynamic.Config.SourceColor: unknown color %q", c.Source)
	}
	return hct.FromColor(nc), nil
}

// Scheme returns the [Scheme] requested by the config.
func (c *Config) Scheme() (*Scheme, error) {
	src, err := c.SourceColor()
	if err != nil {
		return nil, err
	}
	return NewContrast(src, c.Variant, c.Dark, c.Contrast), nil
}

// SchemeOrDefault is like [Config.Scheme], except that it logs any
// error and falls back on the default source color, keeping the
// other settings of the config.
func (c *Config) SchemeOrDefault() *Scheme {
	s, err := c.Scheme()
	if errors.Log(err) == nil {
		return s
	}
	d := *c
	d.Source = DefaultSource
	return errors.Log1(d.Scheme())
}
