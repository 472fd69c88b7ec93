package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/icbo-research/schedplot/internal/figures"
	"github.com/icbo-research/schedplot/pkg/config/env"
	"github.com/icbo-research/schedplot/pkg/logging"
)

func main() {
	logging.Setup(slog.LevelInfo)
	env.LoadDotEnv(".env")

	outDir := flag.String("out-dir", "", "Directory for the paper figures")
	flag.Parse()

	dir := *outDir
	if dir == "" {
		dir = env.OutDir("results")
	}

	if err := run(dir); err != nil {
		slog.Error("Figure generation failed", "error", err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renders := []struct {
		name   string
		file   string
		render func(string) error
	}{
		{"algorithm ranking comparison", "algorithm_ranking_comparison.png", figures.RankingComparison},
		{"M=2000 performance bars", "M2000_bar_chart.png", figures.M2000Bars},
		{"ICBO improvement rate", "icbo_improvement_rate.png", figures.ImprovementRate},
		{"heterogeneity impact", "heterogeneity_impact.png", figures.HeterogeneityImpact},
	}
	for _, r := range renders {
		path := filepath.Join(outDir, r.file)
		if err := r.render(path); err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}
		slog.Info("Figure written", "figure", r.name, "path", path)
	}
	return nil
}
