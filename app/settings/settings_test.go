package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Givikap120/beatmap-difficulty/app/beatmap/difficulty"
	"github.com/Givikap120/beatmap-difficulty/app/rulesets/catch"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Workers < 1 || cfg.CheckInterval != 64 || cfg.Output != OutputTable {
		t.Errorf("Load(\"\") = %+v, want workers >= 1, check interval 64, table output", cfg)
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"config.toml", "workers = 3\ncheck_interval = 16\noutput = \"json\"\n\n[catch.snap.dash]\nnormal = 200.0\n"},
		{"config.yaml", "workers: 3\ncheckInterval: 16\noutput: json\ncatch:\n  snap:\n    dash:\n      normal: 200\n"},
	}

	for _, tt := range tests {
		cfg, err := Load(writeConfig(t, tt.name, tt.content))
		if err != nil {
			t.Errorf("Load(%s) error: %v", tt.name, err)
			continue
		}

		if cfg.Workers != 3 || cfg.CheckInterval != 16 || cfg.Output != OutputJSON {
			t.Errorf("Load(%s) = %+v, want 3 workers, interval 16, json", tt.name, cfg)
		}

		table, err := cfg.SnapTable()
		if err != nil {
			t.Fatalf("SnapTable error: %v", err)
		}

		if got := table[catch.Dash][difficulty.Normal]; got != 200 {
			t.Errorf("Load(%s) dash normal snap = %v, want 200", tt.name, got)
		}

		if got := table[catch.Hyperdash][difficulty.Insane]; got != 125 {
			t.Errorf("Load(%s) hyperdash insane snap = %v, want default 125", tt.name, got)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BEATMAPDIFF_WORKERS", "7")
	t.Setenv("BEATMAPDIFF_OUTPUT", "json")

	cfg, err := Load(writeConfig(t, "config.toml", "workers = 2\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Workers != 7 || cfg.Output != OutputJSON {
		t.Errorf("Load = %d workers, %q, want 7, json", cfg.Workers, cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"config.ini", "workers=1", "unknown config format"},
		{"config.toml", "workers = \"many\"", "parse config"},
		{"config.toml", "output = \"xml\"", "output must be"},
		{"config.toml", "workers = 0", "workers must be"},
		{"config.yaml", "catch:\n  snap:\n    run:\n      hard: 100\n", "unknown movement type"},
		{"config.yaml", "catch:\n  snap:\n    dash:\n      extreme: 100\n", "unknown difficulty tier"},
		{"config.yaml", "catch:\n  snap:\n    dash:\n      hard: -1\n", "must be positive"},
	}

	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.name, tt.content))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%s %q) error = %v, want %q", tt.name, tt.content, err, tt.want)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want an error")
	}
}
