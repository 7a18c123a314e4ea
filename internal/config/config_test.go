package config

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Title != "Lista zadań" {
		t.Errorf("Title = %q", cfg.UI.Title)
	}
	if cfg.UI.Placeholder != "Wprowadź zadanie" {
		t.Errorf("Placeholder = %q", cfg.UI.Placeholder)
	}
	if cfg.Labels.Star != "Ważne" || cfg.Labels.Unstar != "Odważnik" {
		t.Errorf("star labels = %q/%q", cfg.Labels.Star, cfg.Labels.Unstar)
	}
	if cfg.Labels.Add != "Add" || cfg.Labels.Delete != "Delete" {
		t.Errorf("labels = %+v", cfg.Labels)
	}
	if cfg.Theme.Starred != "#FFD700" {
		t.Errorf("Starred = %q", cfg.Theme.Starred)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_SetGet(t *testing.T) {
	tests := []struct {
		path  string
		value string
		want  string
	}{
		{"ui.title", "Zakupy", "Zakupy"},
		{"ui.mouse", "off", "false"},
		{"ui.showHelp", "YES", "true"},
		{"theme.inputBackground", "#000", "#000"},
		{"logging.level", "debug", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			cfg := Default()
			if err := cfg.Set(tt.path, tt.value); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := cfg.Get(tt.path)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestConfig_SetErrors(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("ui.nope", "x"); !errors.Is(err, ErrSettingNotFound) {
		t.Errorf("unknown path error = %v, want ErrSettingNotFound", err)
	}

	err := cfg.Set("ui.mouse", "maybe")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Error("ValidationError should unwrap to ErrInvalidValue")
	}
	if !cfg.UI.Mouse {
		t.Error("failed Set should leave value unchanged")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	cfg.Theme.Starred = "gold"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-hex color")
	} else {
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Path != "theme.starred" {
			t.Errorf("error = %v, want theme.starred ValidationError", err)
		}
	}

	cfg = Default()
	cfg.Labels.Delete = "  "
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	var multi *MultiError
	if !errors.As(err, &multi) {
		t.Fatalf("expected *MultiError, got %T (%v)", err, err)
	}
	if len(multi.Errors) != 2 {
		t.Errorf("got %d errors, want 2", len(multi.Errors))
	}
	if !errors.Is(err, ErrInvalidValue) {
		t.Error("MultiError should match ErrInvalidValue")
	}
}

func TestConfig_SelectionOptional(t *testing.T) {
	cfg := Default()
	cfg.Theme.Selection = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty selection should be valid: %v", err)
	}
	cfg.Theme.Selection = "#12345"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for malformed selection color")
	}
}

func TestPaths(t *testing.T) {
	paths := Paths()
	if len(paths) == 0 {
		t.Fatal("no paths")
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Fatalf("paths not sorted at %d: %q >= %q", i, paths[i-1], paths[i])
		}
	}
	cfg := Default()
	for _, p := range paths {
		if _, err := cfg.Get(p); err != nil {
			t.Errorf("Get(%q): %v", p, err)
		}
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.Warnings = []string{"a"}
	c := cfg.Clone()
	c.UI.Title = "x"
	c.Warnings[0] = "b"
	if cfg.UI.Title == "x" || cfg.Warnings[0] != "a" {
		t.Error("Clone shares state with original")
	}
}
