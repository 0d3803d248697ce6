package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the tracing pipeline. Values can come
// from a YAML file via -config; command line flags override the file.
type Config struct {
	// Mode selects how the stroke mask is built: "threshold", "otsu",
	// "color" or "edge".
	Mode string `yaml:"mode"`

	// Threshold is the 8-bit luminance cutoff for threshold mode.
	Threshold int `yaml:"threshold"`

	// Invert marks light pixels instead of dark ones.
	Invert bool `yaml:"invert"`

	// Color is the stroke colour for color mode, as "#rrggbb".
	Color string `yaml:"color"`

	// ColorDistance is the maximum CIE Lab distance for color mode.
	ColorDistance float64 `yaml:"color_distance"`

	// EdgeLow and EdgeHigh are the Canny hysteresis thresholds for edge
	// mode, as 8-bit gradient magnitudes.
	EdgeLow  int `yaml:"edge_low"`
	EdgeHigh int `yaml:"edge_high"`

	// Blur is the Gaussian pre-blur radius in pixels. Zero disables it.
	Blur float64 `yaml:"blur"`

	// MaxDim downscales the input so neither side exceeds this many
	// pixels. Zero disables downscaling.
	MaxDim int `yaml:"max_dim"`

	// MinSectionSize and MaxRecursions are passed to the tracer.
	MinSectionSize int `yaml:"min_section_size"`
	MaxRecursions  int `yaml:"max_recursions"`

	// Simplify is the polyline simplification tolerance in pixels.
	// Zero keeps the raw pixel-level trace.
	Simplify float64 `yaml:"simplify"`

	// Segments adds a RANSAC straight-segment summary per polyline to
	// the JSON output.
	Segments bool `yaml:"segments"`

	// SegmentIterations is the RANSAC round count for the summary.
	SegmentIterations int `yaml:"segment_iterations"`

	// OCR attaches nearby text labels to strokes. Requires a cgo build
	// with Tesseract installed.
	OCR         bool    `yaml:"ocr"`
	OCRLanguage string  `yaml:"ocr_language"`
	OCRDistance float64 `yaml:"ocr_distance"`
}

// DefaultConfig returns the configuration used when no file or flags are
// given: Otsu thresholding, full-resolution input, raw polylines.
func DefaultConfig() *Config {
	return &Config{
		Mode:              "otsu",
		Threshold:         128,
		Color:             "#000000",
		ColorDistance:     0.15,
		EdgeLow:           50,
		EdgeHigh:          150,
		MinSectionSize:    3,
		SegmentIterations: 25,
		OCRLanguage:       "eng",
		OCRDistance:       40,
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating or truncating path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	switch c.Mode {
	case "threshold", "otsu", "color", "edge":
	default:
		return fmt.Errorf("unknown mode %q (want threshold, otsu, color or edge)", c.Mode)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold %d outside 0-255", c.Threshold)
	}
	if c.EdgeLow < 0 || c.EdgeHigh > 255 || c.EdgeLow > c.EdgeHigh {
		return fmt.Errorf("edge thresholds %d-%d invalid", c.EdgeLow, c.EdgeHigh)
	}
	if c.ColorDistance < 0 {
		return fmt.Errorf("color distance %v negative", c.ColorDistance)
	}
	return nil
}
