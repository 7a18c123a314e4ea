package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/todolist/internal/config"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		check    func(t *testing.T, opts cliOptions)
	}{
		{
			name:     "no flags",
			args:     nil,
			wantCode: exitShowInfo,
		},
		{
			name:     "short config",
			args:     []string{"-c", "/tmp/x.toml"},
			wantCode: exitShowInfo,
			check: func(t *testing.T, opts cliOptions) {
				if opts.configPath != "/tmp/x.toml" {
					t.Errorf("configPath = %q", opts.configPath)
				}
			},
		},
		{
			name:     "long flags",
			args:     []string{"-config", "a.toml", "-log-file", "t.log", "-log-level", "warn", "-no-mouse"},
			wantCode: exitShowInfo,
			check: func(t *testing.T, opts cliOptions) {
				if opts.configPath != "a.toml" || opts.logFile != "t.log" || opts.logLevel != "warn" || !opts.noMouse {
					t.Errorf("opts = %+v", opts)
				}
			},
		},
		{
			name:     "debug",
			args:     []string{"-d"},
			wantCode: exitShowInfo,
			check: func(t *testing.T, opts cliOptions) {
				if !opts.debug {
					t.Error("debug not set")
				}
			},
		},
		{name: "version", args: []string{"-v"}, wantCode: exitOK},
		{name: "help", args: []string{"-help"}, wantCode: exitOK},
		{name: "unknown flag", args: []string{"-bogus"}, wantCode: exitError},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantCode: exitError},
		{name: "stray argument", args: []string{"extra"}, wantCode: exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			opts, code := parseFlags(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if tt.check != nil {
				tt.check(t, opts)
			}
		})
	}
}

func TestParseFlags_VersionOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	parseFlags([]string{"-version"}, &stdout, &stderr)
	if !strings.HasPrefix(stdout.String(), "todolist "+version) {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestParseFlags_HelpMentionsEnvironment(t *testing.T) {
	var stdout, stderr bytes.Buffer
	parseFlags([]string{"-h"}, &stdout, &stderr)
	if !strings.Contains(stderr.String(), config.EnvConfigPath) {
		t.Errorf("usage does not mention %s: %q", config.EnvConfigPath, stderr.String())
	}
}

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name         string
		flagPath     string
		envPath      string
		want         string
		wantExplicit bool
	}{
		{"flag wins", "flag.toml", "env.toml", "flag.toml", true},
		{"env", "", "env.toml", "env.toml", true},
		{"default", "", "", config.DefaultPath(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, explicit := resolveConfigPath(tt.flagPath, tt.envPath)
			if got != tt.want || explicit != tt.wantExplicit {
				t.Errorf("resolveConfigPath() = %q, %v; want %q, %v", got, explicit, tt.want, tt.wantExplicit)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, cliOptions{logLevel: "warn", logFile: "x.log", noMouse: true})
	if cfg.Logging.Level != "warn" || cfg.Logging.File != "x.log" || cfg.UI.Mouse {
		t.Errorf("cfg = %+v", cfg)
	}

	cfg = config.Default()
	applyFlags(cfg, cliOptions{logLevel: "error", debug: true})
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug should override log-level, got %q", cfg.Logging.Level)
	}
}
