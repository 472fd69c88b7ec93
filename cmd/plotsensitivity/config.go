package main

import (
	"flag"
	"fmt"

	"github.com/icbo-research/schedplot/internal/plotspec"
	"github.com/icbo-research/schedplot/pkg/config/env"
)

type cliConfig struct {
	File       string
	DataDir    string
	OutDir     string
	Lang       string
	ConfigPath string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.File, "file", "", "Explicit sensitivity results CSV (default: newest in data dir)")
	flag.StringVar(&cfg.DataDir, "data-dir", "", "Directory holding sensitivity_results_*.csv")
	flag.StringVar(&cfg.OutDir, "out-dir", "", "Directory for figures and the report")
	flag.StringVar(&cfg.Lang, "lang", "", "Label language for the standalone heatmap: en or zh")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to plot spec YAML")

	flag.Parse()
	return cfg
}

func (c cliConfig) resolve() (*plotspec.Spec, error) {
	spec := plotspec.Default()
	if c.ConfigPath != "" {
		loaded, err := plotspec.LoadFromFile(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		spec = loaded
	}

	spec.DataDir = env.DataDir(spec.DataDir)
	spec.OutDir = env.OutDir(spec.OutDir)
	if c.DataDir != "" {
		spec.DataDir = c.DataDir
	}
	if c.OutDir != "" {
		spec.OutDir = c.OutDir
	}
	if c.Lang != "" {
		if c.Lang != "en" && c.Lang != "zh" {
			return nil, fmt.Errorf("unsupported -lang %q (want en or zh)", c.Lang)
		}
		spec.Language = c.Lang
	}
	return spec, nil
}
