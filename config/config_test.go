package config

import "testing"

func TestLoadAppliesDefaultsWhenFieldsMissing(t *testing.T) {
	cfg, err := Load([]byte(`{}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("Load({}) = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesGivenFields(t *testing.T) {
	cfg, err := Load([]byte(`{
		solar_mass: 4.3e6,
		inclination: 30,
		threads: 8,
		show_input: true,
		output_ppm: "out.ppm",
	}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SolarMass != 4.3e6 {
		t.Errorf("SolarMass = %v, want 4.3e6", cfg.SolarMass)
	}
	if cfg.InclinationDeg != 30 {
		t.Errorf("InclinationDeg = %v, want 30", cfg.InclinationDeg)
	}
	if cfg.Threads != 8 {
		t.Errorf("Threads = %v, want 8", cfg.Threads)
	}
	if !cfg.ShowInput {
		t.Errorf("ShowInput = false, want true")
	}
	if cfg.OutputPPM != "out.ppm" {
		t.Errorf("OutputPPM = %q, want out.ppm", cfg.OutputPPM)
	}
	// Fields not present in the document keep their defaults.
	if cfg.Width != Default().Width {
		t.Errorf("Width = %v, want default %v", cfg.Width, Default().Width)
	}
}

func TestLoadRejectsWrongType(t *testing.T) {
	_, err := Load([]byte(`{width: "not a number"}`))
	if err == nil {
		t.Fatalf("expected error for non-numeric width, got nil")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{not valid`))
	if err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero width")
	}
	cfg = Default()
	cfg.Height = -5
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for negative height")
	}
}

func TestValidateRejectsNonPositiveMass(t *testing.T) {
	cfg := Default()
	cfg.SolarMass = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero solar_mass")
	}
}

func TestValidateRejectsOutOfRangeEddingtonFraction(t *testing.T) {
	cfg := Default()
	cfg.EddingtonFraction = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero eddington_fraction")
	}
	cfg = Default()
	cfg.EddingtonFraction = 1.5
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error for super-Eddington eddington_fraction 1.5: %v", err)
	}
}

func TestValidateRejectsObserverInsideHorizon(t *testing.T) {
	cfg := Default()
	cfg.ObserverRadiusRs = 1
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for observer_radius = 1")
	}
}

func TestValidateRejectsOutOfRangeInclination(t *testing.T) {
	cfg := Default()
	cfg.InclinationDeg = -1
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for negative inclination")
	}
	cfg = Default()
	cfg.InclinationDeg = 91
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for inclination > 90")
	}
}

func TestValidateRejectsOutOfRangeFov(t *testing.T) {
	cfg := Default()
	cfg.FovDeg = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected error for zero fov")
	}
	cfg = Default()
	cfg.FovDeg = 180
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error for fov = 180: %v", err)
	}
}
