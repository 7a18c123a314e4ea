package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/todolist/internal/logging"
	"github.com/dshills/todolist/internal/renderer/core"
)

// Config holds every setting of the application.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Labels  LabelConfig   `toml:"labels"`
	Theme   ThemeConfig   `toml:"theme"`
	Logging LoggingConfig `toml:"logging"`
	Plugins PluginConfig  `toml:"plugins"`

	// Path is the file the configuration was loaded from, if any.
	Path string `toml:"-"`

	// Warnings lists non-fatal problems found while loading, such as
	// unknown keys.
	Warnings []string `toml:"-"`
}

// UIConfig holds screen-level settings.
type UIConfig struct {
	Title       string `toml:"title"`
	Placeholder string `toml:"placeholder"`
	ShowHelp    bool   `toml:"showHelp"`
	Mouse       bool   `toml:"mouse"`
	LiveReload  bool   `toml:"liveReload"`
}

// LabelConfig holds button captions.
type LabelConfig struct {
	Add    string `toml:"add"`
	Star   string `toml:"star"`
	Unstar string `toml:"unstar"`
	Delete string `toml:"delete"`
}

// ThemeConfig holds colors as hex strings.
type ThemeConfig struct {
	Background      string `toml:"background"`
	Header          string `toml:"header"`
	Text            string `toml:"text"`
	Starred         string `toml:"starred"`
	Placeholder     string `toml:"placeholder"`
	InputBackground string `toml:"inputBackground"`
	Button          string `toml:"button"`
	ButtonText      string `toml:"buttonText"`
	// Selection is optional; empty means a blend of background and text.
	Selection string `toml:"selection"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PluginConfig holds the hook script location.
type PluginConfig struct {
	Script string `toml:"script"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Title:       "Lista zadań",
			Placeholder: "Wprowadź zadanie",
			ShowHelp:    true,
			Mouse:       true,
			LiveReload:  true,
		},
		Labels: LabelConfig{
			Add:    "Add",
			Star:   "Ważne",
			Unstar: "Odważnik",
			Delete: "Delete",
		},
		Theme: ThemeConfig{
			Background:      "#333333",
			Header:          "#808080",
			Text:            "#FFFFFF",
			Starred:         "#FFD700",
			Placeholder:     "#CAC4D0",
			InputBackground: "#292929",
			Button:          "#6650A4",
			ButtonText:      "#FFFFFF",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todolist", "config.toml")
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Warnings = append([]string(nil), c.Warnings...)
	return &out
}

// setting describes one addressable field.
type setting struct {
	str *string
	b   *bool
}

func (c *Config) settings() map[string]setting {
	return map[string]setting{
		"ui.title":              {str: &c.UI.Title},
		"ui.placeholder":        {str: &c.UI.Placeholder},
		"ui.showHelp":           {b: &c.UI.ShowHelp},
		"ui.mouse":              {b: &c.UI.Mouse},
		"ui.liveReload":         {b: &c.UI.LiveReload},
		"labels.add":            {str: &c.Labels.Add},
		"labels.star":           {str: &c.Labels.Star},
		"labels.unstar":         {str: &c.Labels.Unstar},
		"labels.delete":         {str: &c.Labels.Delete},
		"theme.background":      {str: &c.Theme.Background},
		"theme.header":          {str: &c.Theme.Header},
		"theme.text":            {str: &c.Theme.Text},
		"theme.starred":         {str: &c.Theme.Starred},
		"theme.placeholder":     {str: &c.Theme.Placeholder},
		"theme.inputBackground": {str: &c.Theme.InputBackground},
		"theme.button":          {str: &c.Theme.Button},
		"theme.buttonText":      {str: &c.Theme.ButtonText},
		"theme.selection":       {str: &c.Theme.Selection},
		"logging.level":         {str: &c.Logging.Level},
		"logging.file":          {str: &c.Logging.File},
		"plugins.script":        {str: &c.Plugins.Script},
	}
}

// Paths returns every known setting path, sorted.
func Paths() []string {
	var c Config
	paths := make([]string, 0, 32)
	for p := range c.settings() {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Set assigns a setting from its string form. Booleans accept
// true/false, yes/no, on/off and 1/0.
func (c *Config) Set(path, value string) error {
	s, ok := c.settings()[path]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrSettingNotFound)
	}
	if s.str != nil {
		*s.str = value
		return nil
	}

	b, err := parseBool(value)
	if err != nil {
		return &ValidationError{Path: path, Value: value, Message: "not a boolean"}
	}
	*s.b = b
	return nil
}

// Get returns the string form of a setting.
func (c *Config) Get(path string) (string, error) {
	s, ok := c.settings()[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrSettingNotFound)
	}
	if s.str != nil {
		return *s.str, nil
	}
	return strconv.FormatBool(*s.b), nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// Validate checks colors, labels and the log level. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	colors := []struct {
		path     string
		value    string
		optional bool
	}{
		{"theme.background", c.Theme.Background, false},
		{"theme.header", c.Theme.Header, false},
		{"theme.text", c.Theme.Text, false},
		{"theme.starred", c.Theme.Starred, false},
		{"theme.placeholder", c.Theme.Placeholder, false},
		{"theme.inputBackground", c.Theme.InputBackground, false},
		{"theme.button", c.Theme.Button, false},
		{"theme.buttonText", c.Theme.ButtonText, false},
		{"theme.selection", c.Theme.Selection, true},
	}
	for _, col := range colors {
		if col.optional && col.value == "" {
			continue
		}
		if _, err := core.ColorFromHex(col.value); err != nil {
			errs = append(errs, &ValidationError{Path: col.path, Value: col.value, Message: "not a hex color"})
		}
	}

	labels := []struct{ path, value string }{
		{"labels.add", c.Labels.Add},
		{"labels.star", c.Labels.Star},
		{"labels.unstar", c.Labels.Unstar},
		{"labels.delete", c.Labels.Delete},
	}
	for _, l := range labels {
		if strings.TrimSpace(l.value) == "" {
			errs = append(errs, &ValidationError{Path: l.path, Value: l.value, Message: "must not be blank"})
		}
	}

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: "must be debug, info, warn or error"})
	}

	return joinErrors(errs)
}

// joinErrors keeps a single error unwrapped so errors.As finds it directly.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &MultiError{Errors: errs}
	}
}

// MultiError collects several validation errors.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
