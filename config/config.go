// Package config loads a run configuration from a JSON5 document, the
// same way jsonProcessing.go in the original diffraction tool walked a
// generic map[string]interface{} rather than unmarshalling straight into
// a struct, so that every field can carry its own "missing means default"
// behavior and its own type-mismatch error message.
package config

import (
	"fmt"
	"math"

	json "github.com/KevinWang15/go-json5"
)

// RunConfig is the full set of parameters needed to build a metric, a
// disk, a camera, and a tracer and then render one image.
type RunConfig struct {
	SolarMass         float64 // black hole mass, solar masses
	EddingtonFraction float64 // accretion rate as a fraction of Eddington
	Width             int     // image width, pixels
	Height            int     // image height, pixels
	ObserverRadiusRs  float64 // observer distance, multiples of r_s
	InclinationDeg    float64 // observer inclination, degrees
	FovDeg            float64 // horizontal field of view, degrees
	Threads           int     // render worker count

	ShowInput bool   // echo the raw file contents to stdout before rendering
	OutputPPM string // output PPM path; empty means stdout
	OutputCSV string // optional second output, written alongside the PPM
}

// Default returns the §6 default run configuration.
func Default() RunConfig {
	return RunConfig{
		SolarMass:         10,
		EddingtonFraction: 0.1,
		Width:             800,
		Height:            600,
		ObserverRadiusRs:  100,
		InclinationDeg:    75,
		FovDeg:            45,
		Threads:           4,
	}
}

func getLeafValue(table map[string]interface{}, path ...string) (interface{}, bool) {
	var cur interface{} = table
	for _, p := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Load parses the JSON5 document in data into a RunConfig,
// starting from Default and overriding each field present in the file.
// It does not call Validate; callers should do that separately so load
// errors and validation errors stay distinguishable.
func Load(data []byte) (RunConfig, error) {
	cfg := Default()

	var table map[string]interface{}
	if err := json.Unmarshal(data, &table); err != nil {
		return cfg, fmt.Errorf("parsing run configuration: %w", err)
	}

	if v, ok := getLeafValue(table, "solar_mass"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("solar_mass: is not a number")
		}
		cfg.SolarMass = f
	}

	if v, ok := getLeafValue(table, "eddington_fraction"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("eddington_fraction: is not a number")
		}
		cfg.EddingtonFraction = f
	}

	if v, ok := getLeafValue(table, "width"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("width: is not a number")
		}
		cfg.Width = int(f)
	}

	if v, ok := getLeafValue(table, "height"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("height: is not a number")
		}
		cfg.Height = int(f)
	}

	if v, ok := getLeafValue(table, "observer_radius"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("observer_radius: is not a number")
		}
		cfg.ObserverRadiusRs = f
	}

	if v, ok := getLeafValue(table, "inclination"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("inclination: is not a number")
		}
		cfg.InclinationDeg = f
	}

	if v, ok := getLeafValue(table, "fov"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("fov: is not a number")
		}
		cfg.FovDeg = f
	}

	if v, ok := getLeafValue(table, "threads"); ok {
		f, ok := v.(float64)
		if !ok {
			return cfg, fmt.Errorf("threads: is not a number")
		}
		cfg.Threads = int(f)
	}

	if v, ok := getLeafValue(table, "show_input"); ok {
		b, ok := v.(bool)
		if !ok {
			return cfg, fmt.Errorf("show_input: is not a bool")
		}
		cfg.ShowInput = b
	}

	if v, ok := getLeafValue(table, "output_ppm"); ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("output_ppm: is not a string")
		}
		cfg.OutputPPM = s
	}

	if v, ok := getLeafValue(table, "output_csv"); ok {
		s, ok := v.(string)
		if !ok {
			return cfg, fmt.Errorf("output_csv: is not a string")
		}
		cfg.OutputCSV = s
	}

	return cfg, nil
}

// Validate enforces the §7 boundary checks: strictly positive image
// dimensions and thread count, a finite positive mass, a positive
// Eddington fraction, an observer radius strictly greater than 1 (outside
// the horizon), an inclination within [0, 90], and a positive field of
// view.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	if !(c.SolarMass > 0) || math.IsInf(c.SolarMass, 1) {
		return fmt.Errorf("solar_mass must be positive and finite, got %v", c.SolarMass)
	}
	if !(c.EddingtonFraction > 0) {
		return fmt.Errorf("eddington_fraction must be positive, got %v", c.EddingtonFraction)
	}
	if !(c.ObserverRadiusRs > 1) {
		return fmt.Errorf("observer_radius must exceed 1 Schwarzschild radius, got %v", c.ObserverRadiusRs)
	}
	if c.InclinationDeg < 0 || c.InclinationDeg > 90 {
		return fmt.Errorf("inclination must be in [0, 90] degrees, got %v", c.InclinationDeg)
	}
	if !(c.FovDeg > 0) {
		return fmt.Errorf("fov must be positive, got %v", c.FovDeg)
	}
	return nil
}
