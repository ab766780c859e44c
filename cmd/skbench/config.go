package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type workloadSpec struct {
	Name      string `yaml:"name"`
	Dist      string `yaml:"dist"` // uniform | zipf | ascending
	InsertPct int    `yaml:"insert_pct"`
	DeletePct int    `yaml:"delete_pct"`
}

type benchConfig struct {
	KeyRange int   `yaml:"key_range"`
	Ops      int   `yaml:"ops"`
	Seed     int64 `yaml:"seed"`
	// Height fixes the set's level count; zero selects an auto-sized set.
	Height    int            `yaml:"height"`
	ZipfS     float64        `yaml:"zipf_s"`
	ZipfV     float64        `yaml:"zipf_v"`
	Workloads []workloadSpec `yaml:"workloads"`
}

func defaultConfig() benchConfig {
	return benchConfig{
		KeyRange: 1 << 16,
		Ops:      1_000_000,
		Seed:     42,
		ZipfS:    1.07,
		ZipfV:    1.0,
		Workloads: []workloadSpec{
			{Name: "read-mostly", Dist: "uniform", InsertPct: 5, DeletePct: 0},
			{Name: "mixed", Dist: "uniform", InsertPct: 40, DeletePct: 10},
			{Name: "write-heavy", Dist: "uniform", InsertPct: 70, DeletePct: 20},
			{Name: "hot-keys", Dist: "zipf", InsertPct: 40, DeletePct: 10},
			{Name: "ascending", Dist: "ascending", InsertPct: 50, DeletePct: 0},
		},
	}
}

// loadConfig reads path over the defaults; an empty path keeps the defaults.
func loadConfig(path string) (benchConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.KeyRange < 1 || cfg.Ops < 1 || len(cfg.Workloads) == 0 {
		return cfg, fmt.Errorf("config %s: key_range, ops and workloads must be set", path)
	}
	return cfg, nil
}
