// Package config loads the panel wiring and demo settings shared by the
// example commands.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"periph.io/x/devices/v3/gc9a01a"
	"periph.io/x/devices/v3/gc9a01a/image565"
)

// PinsConfig names the GPIO lines as known to gpioreg.
type PinsConfig struct {
	DC string `yaml:"dc"`
	// CS is empty when the SPI port drives chip select.
	CS string `yaml:"cs,omitempty"`
	// RST is empty to use a software reset.
	RST string `yaml:"rst,omitempty"`
	// Backlight is driven high once the panel is initialized, if set.
	Backlight string `yaml:"backlight,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	// SPI is the port name for spireg.Open; empty selects the first port.
	SPI string `yaml:"spi"`

	// Speed is the SPI clock, e.g. "40MHz".
	Speed string `yaml:"speed"`

	Pins PinsConfig `yaml:"pins"`

	// Panel geometry.
	Width       int                 `yaml:"width"`
	Height      int                 `yaml:"height"`
	OffsetX     int                 `yaml:"offset_x"`
	OffsetY     int                 `yaml:"offset_y"`
	Orientation gc9a01a.Orientation `yaml:"orientation"`

	// Order is "rgb" or "bgr".
	Order string `yaml:"order"`

	// ChunkSize is the number of pixels per SPI transfer.
	ChunkSize int `yaml:"chunk_size"`

	// Tick is the cron schedule driving animations, seconds field optional
	// (e.g. "@every 1s" or "*/5 * * * * *").
	Tick string `yaml:"tick"`

	// LogLevel is one of debug, info, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the wiring of a GC9A01A breakout on a Raspberry Pi.
func DefaultConfig() *Config {
	return &Config{
		SPI:   "",
		Speed: "40MHz",
		Pins: PinsConfig{
			DC:        "GPIO25",
			RST:       "GPIO27",
			Backlight: "GPIO18",
		},
		Width:       240,
		Height:      240,
		Orientation: gc9a01a.Portrait,
		Order:       "rgb",
		ChunkSize:   2048,
		Tick:        "@every 1s",
		LogLevel:    "info",
	}
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Speed == "" {
		c.Speed = d.Speed
	}
	if c.Pins.DC == "" {
		c.Pins.DC = d.Pins.DC
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = d.Width, d.Height
	}
	c.Order = strings.ToLower(c.Order)
	if c.Order == "" {
		c.Order = d.Order
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = d.ChunkSize
	}
	if c.Tick == "" {
		c.Tick = d.Tick
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate reports values that Normalize cannot repair.
func (c *Config) Validate() error {
	if _, err := c.Frequency(); err != nil {
		return err
	}
	if _, err := c.ColorOrder(); err != nil {
		return err
	}
	if _, err := c.Schedule(); err != nil {
		return err
	}
	return nil
}

// Frequency parses Speed.
func (c *Config) Frequency() (physic.Frequency, error) {
	var f physic.Frequency
	if err := f.Set(c.Speed); err != nil {
		return 0, fmt.Errorf("config: invalid speed %q: %w", c.Speed, err)
	}
	return f, nil
}

// ColorOrder parses Order.
func (c *Config) ColorOrder() (image565.Order, error) {
	switch c.Order {
	case "rgb":
		return image565.RGB, nil
	case "bgr":
		return image565.BGR, nil
	}
	return 0, fmt.Errorf("config: invalid color order %q", c.Order)
}

// Parser is the cron parser accepting Tick.
var Parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Schedule parses Tick.
func (c *Config) Schedule() (cron.Schedule, error) {
	s, err := Parser.Parse(c.Tick)
	if err != nil {
		return nil, fmt.Errorf("config: invalid tick %q: %w", c.Tick, err)
	}
	return s, nil
}

// Opts returns the driver options for this configuration. Control lines are
// left for the caller to resolve.
func (c *Config) Opts() (*gc9a01a.Opts, error) {
	order, err := c.ColorOrder()
	if err != nil {
		return nil, err
	}
	return &gc9a01a.Opts{
		W:           c.Width,
		H:           c.Height,
		Order:       order,
		Orientation: c.Orientation,
		OffsetX:     c.OffsetX,
		OffsetY:     c.OffsetY,
		ChunkSize:   c.ChunkSize,
	}, nil
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there with 0600
// permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			// Even if save fails, return cfg with error so caller can decide.
			return cfg, Save(path, cfg)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename, creating the
// parent directory (0700) if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config: path is empty")
	}
	if cfg == nil {
		return errors.New("config: config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".gc9a01a-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
