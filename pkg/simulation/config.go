package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPopulation = 300
	DefaultBackground = "#000000"

	// Canvas used when no window size is configured and no monitor is available (headless runs).
	DefaultCanvasWidth  = 1024
	DefaultCanvasHeight = 768
)

//go:embed config.schema.json
var configSchema string

// ErrInvalidConfig wraps every semantic validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Window Dimensions, 0 means "fit the current monitor"
	WindowWidth  int `json:"windowWidth" yaml:"windowWidth"`
	WindowHeight int `json:"windowHeight" yaml:"windowHeight"`

	Population   int    `json:"population" yaml:"population"`
	BoundaryMode string `json:"boundaryMode" yaml:"boundaryMode"`
	Seed         uint64 `json:"seed" yaml:"seed"` // 0 picks a time based seed

	Background string `json:"background" yaml:"background"`
	ShowStats  bool   `json:"showStats" yaml:"showStats"`

	// Pointer is the repulsor position used by headless runs
	Pointer geometry.Vector2D `json:"pointer" yaml:"pointer"`
}

func DefaultConfig() *Config {
	return &Config{
		Population:   DefaultPopulation,
		BoundaryMode: string(behavior.Wraparound),
		Background:   DefaultBackground,
		Pointer:      geometry.Vector2D{X: -1000, Y: -1000},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, validates it against the
// embedded schema and decodes it over DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	doc, err := toJSON(configFile, raw)
	if err != nil {
		return nil, err
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, keeping defaults for missing keys
	cfg := DefaultConfig()
	if err := json.Unmarshal(doc, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// toJSON converts YAML documents to JSON so one schema serves both formats.
func toJSON(name string, raw []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert config yaml: %w", err)
		}
		return b, nil
	case ".json", "":
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(name))
	}
}

// Validate fails fast on values the simulation cannot run with.
func (c *Config) Validate() error {
	if _, err := behavior.ParseBoundaryMode(c.BoundaryMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Population < 1 {
		return fmt.Errorf("%w: population must be at least 1, got %d", ErrInvalidConfig, c.Population)
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		return fmt.Errorf("%w: window size cannot be negative, got %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background %q: %w", ErrInvalidConfig, c.Background, err)
	}
	return nil
}

// BackgroundColor parses Background, black when it is malformed.
func (c *Config) BackgroundColor() color.RGBA {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// CanvasSize returns the configured window size, the fallback for unset dimensions.
func (c *Config) CanvasSize(fallbackW, fallbackH int) (int, int) {
	w, h := c.WindowWidth, c.WindowHeight
	if w == 0 {
		w = fallbackW
	}
	if h == 0 {
		h = fallbackH
	}
	return w, h
}
