package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// EnvPrefix is the prefix of every environment variable the loader reads.
const EnvPrefix = "TODOLIST_"

// EnvConfigPath names the variable holding the config file location. It is
// read by the command, not mapped to a setting.
const EnvConfigPath = EnvPrefix + "CONFIG"

// defaultEnvMapping returns the well-known environment variables.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"TODOLIST_LOG_LEVEL":   "logging.level",
		"TODOLIST_LOG_FILE":    "logging.file",
		"TODOLIST_TITLE":       "ui.title",
		"TODOLIST_PLACEHOLDER": "ui.placeholder",
		"TODOLIST_PLUGIN":      "plugins.script",
		"TODOLIST_MOUSE":       "ui.mouse",
	}
}

// Loader builds a Config from defaults, a TOML file and the environment.
type Loader struct {
	fs      FileSystem
	prefix  string
	mapping map[string]string
	environ func() []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithEnviron replaces os.Environ as the source of environment variables.
func WithEnviron(environ func() []string) LoaderOption {
	return func(l *Loader) {
		l.environ = environ
	}
}

// NewLoader creates a loader reading the OS file system and environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:      OSFS{},
		prefix:  EnvPrefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the merged configuration. A missing file is not an error;
// an empty path skips the file layer entirely. The result is validated.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()
	cfg.Path = path

	if path != "" {
		data, err := l.fs.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(cfg, path, data); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist):
			cfg.Path = ""
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadBytes decodes a TOML document over the defaults without consulting
// the environment.
func LoadBytes(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(cfg, source, data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals data over cfg. Unknown keys become warnings.
func decode(cfg *Config, source string, data []byte) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return newParseError(source, err)
	}

	var scratch Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(&scratch)

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		for _, e := range strict.Errors {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("%s: unknown setting %q", source, strings.Join(e.Key(), ".")))
		}
	}
	return nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		pe.Message = derr.Error()
	}
	return pe
}

// applyEnv overlays environment variables. Mapped names are applied first,
// then any other prefixed variable by its derived path.
func (l *Loader) applyEnv(cfg *Config) {
	env := make(map[string]string)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) || name == EnvConfigPath {
			continue
		}
		env[name] = value
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if err := cfg.Set(path, env[name]); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: %v", name, err))
		}
	}
}

// envToPath converts TODOLIST_THEME_INPUT_BACKGROUND to theme.inputBackground.
func (l *Loader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)

	parts := strings.Split(name, "_")
	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return section + "." + setting
}
