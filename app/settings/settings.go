package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shirou/gopsutil/v3/cpu"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

type Config struct {
	// Workers is how many beatmaps are rated at once
	Workers int `toml:"workers" yaml:"workers"`

	// CheckInterval is how many objects the engine processes between cancellation checks
	CheckInterval int `toml:"check_interval" yaml:"checkInterval"`

	// Output is "table" or "json"
	Output string `toml:"output" yaml:"output"`

	Catch Catch `toml:"catch" yaml:"catch"`
}

type Catch struct {
	// Snap overrides the basic snap table, movement name to tier name to ms, e.g. dash.normal = 250
	Snap map[string]map[string]float64 `toml:"snap" yaml:"snap"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:       defaultWorkers(),
		CheckInterval: 64,
		Output:        OutputTable,
	}
}

// defaultWorkers is the number of physical cores, logical ones when that can't be read.
func defaultWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// Load reads path as TOML or YAML depending on its extension, then applies environment overrides.
// An empty path gives the defaults with environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			err = toml.Unmarshal(data, &cfg)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &cfg)
		default:
			err = fmt.Errorf("unknown config format %q", filepath.Ext(path))
		}

		if err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Workers = getEnvInt("BEATMAPDIFF_WORKERS", cfg.Workers)
	cfg.Output = getEnv("BEATMAPDIFF_OUTPUT", cfg.Output)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if c.CheckInterval < 1 {
		return fmt.Errorf("check interval must be at least 1, got %d", c.CheckInterval)
	}

	if c.Output != OutputTable && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputTable, OutputJSON, c.Output)
	}

	if _, err := c.SnapTable(); err != nil {
		return err
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}

	return fallback
}
