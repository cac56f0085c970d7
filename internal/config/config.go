package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/palette"
	"github.com/san-kum/pointmorph/internal/timeline"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCount  = 1000
	DefaultFPS    = 60
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTheme  = "cyberpunk"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Count           int            `yaml:"count"`
	NumSteps        int            `yaml:"num_steps"`
	TransitionShare float64        `yaml:"transition_share"`
	FPS             int            `yaml:"fps"`
	Rotation        []string       `yaml:"rotation"`
	Colormap        string         `yaml:"colormap"`
	Easing          string         `yaml:"easing"`
	Theme           string         `yaml:"theme"`
	Viewport        ViewportConfig `yaml:"viewport"`
}

// ViewportConfig is the pixel size used by the image exporters.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Count:           DefaultCount,
		NumSteps:        timeline.DefaultSteps,
		TransitionShare: timeline.DefaultShare,
		FPS:             DefaultFPS,
		Rotation:        timeline.DefaultRotation.Names(),
		Colormap:        palette.Default.Name,
		Easing:          "linear",
		Theme:           DefaultTheme,
		Viewport: ViewportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders the config as yaml.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks ranges and resolves every name.
func (c *Config) Validate() error {
	var errs []error
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be positive, got %d", c.Count))
	}
	if c.NumSteps < 1 {
		errs = append(errs, fmt.Errorf("num_steps must be positive, got %d", c.NumSteps))
	}
	if !(c.TransitionShare > 0 && c.TransitionShare <= 1) {
		errs = append(errs, fmt.Errorf("transition_share must be in (0, 1], got %v", c.TransitionShare))
	}
	if c.FPS < 1 || c.FPS > morph.MaxFPS {
		errs = append(errs, fmt.Errorf("fps must be in [1, %d], got %d", morph.MaxFPS, c.FPS))
	}
	if c.Viewport.Width < 1 || c.Viewport.Height < 1 {
		errs = append(errs, fmt.Errorf("viewport must be at least 1x1, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if _, err := timeline.ParseRotation(c.Rotation); err != nil {
		errs = append(errs, err)
	}
	if _, err := palette.Get(c.Colormap); err != nil {
		errs = append(errs, err)
	}
	if _, err := timeline.ParseEasing(c.Easing); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// EngineOptions validates the config and converts it for morph.New.
func (c *Config) EngineOptions() (morph.Options, error) {
	if err := c.Validate(); err != nil {
		return morph.Options{}, err
	}
	rotation, _ := timeline.ParseRotation(c.Rotation)
	scale, _ := palette.Get(c.Colormap)
	easing, _ := timeline.ParseEasing(c.Easing)

	return morph.Options{
		Count:    c.Count,
		NumSteps: c.NumSteps,
		Share:    c.TransitionShare,
		Rotation: rotation,
		Easing:   easing,
		Scale:    scale,
	}, nil
}

// NewEngine builds an engine from the config.
func (c *Config) NewEngine() (*morph.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	return morph.New(opts)
}
