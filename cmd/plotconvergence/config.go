package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/icbo-research/schedplot/internal/plotspec"
	"github.com/icbo-research/schedplot/pkg/config/env"
	"github.com/icbo-research/schedplot/pkg/utils"
)

type cliConfig struct {
	DataDir    string
	OutDir     string
	Scale      string
	Algos      string
	ConfigPath string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.DataDir, "data-dir", "", "Directory holding convergence_*.csv trace files")
	flag.StringVar(&cfg.OutDir, "out-dir", "", "Directory for figures and the report")
	flag.StringVar(&cfg.Scale, "scale", "", "Problem scale identifier in file names, e.g. M100")
	flag.StringVar(&cfg.Algos, "algos", "", "Algorithms to plot, comma-separated (default: all configured)")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to plot spec YAML")

	flag.Parse()
	return cfg
}

// resolve layers flag > env > YAML spec > defaults into one Spec.
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
	if c.Scale != "" {
		spec.Scale = c.Scale
	}

	if c.Algos != "" {
		names := strings.Split(c.Algos, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		names = utils.RemoveEmptyStrings(names)
		if len(names) == 0 {
			return nil, fmt.Errorf("no algorithm names in -algos %q", c.Algos)
		}

		picked := make([]plotspec.Algorithm, len(names))
		for i, name := range names {
			picked[i] = spec.Lookup(name)
		}
		spec.Algorithms = picked
	}
	return spec, nil
}
