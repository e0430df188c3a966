package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selb.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Indent != "  " {
		t.Errorf("Default indent = %q, want two spaces", cfg.Output.Indent)
	}
	if !cfg.Output.LintIdentifiers {
		t.Error("Expected identifier lint to be enabled by default")
	}
	if cfg.Output.SortRules {
		t.Error("Expected rules to keep recipe order by default")
	}
	// template switches console off under go test
	if cfg.Logging.ConsoleLogger.Level != "none" {
		t.Errorf("Console level = %q, want none", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
output:
  indent: "    "
  sort_rules: true
  header: ""
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(dir, "logs", "selb.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Indent != "    " {
		t.Errorf("Indent = %q, want four spaces", cfg.Output.Indent)
	}
	if !cfg.Output.SortRules {
		t.Error("Expected SortRules to be true")
	}
	if cfg.Output.Header != "" {
		t.Errorf("Header = %q, want empty", cfg.Output.Header)
	}
	// not mentioned in file - default is kept
	if !cfg.Output.LintIdentifiers {
		t.Error("Expected LintIdentifiers default to survive")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer makes sure log directory exists
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("Expected log directory to be created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\noutput:\n  indent: \"x\"\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"bad log mode", "version: 1\nlogging:\n  file:\n    level: debug\n    mode: rotate\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/selb.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	if _, err := LoadConfiguration("", option); err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if strings.Contains(string(data), "{{") {
		t.Error("Prepare() left template actions unexpanded")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Header = "custom"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output.Header != "custom" {
		t.Errorf("Header after dump/load = %q, want custom", cfg2.Output.Header)
	}
}
