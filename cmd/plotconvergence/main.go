package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/icbo-research/schedplot/internal/convergence"
	"github.com/icbo-research/schedplot/internal/markdown"
	"github.com/icbo-research/schedplot/internal/plotspec"
	"github.com/icbo-research/schedplot/pkg/config/env"
	"github.com/icbo-research/schedplot/pkg/logging"
)

func main() {
	logging.Setup(slog.LevelInfo)
	env.LoadDotEnv(".env")

	cfg := parseFlags()
	spec, err := cfg.resolve()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(2)
	}

	if err := run(spec); err != nil {
		slog.Error("Convergence plotting failed", "error", err)
		os.Exit(1)
	}
}

func run(spec *plotspec.Spec) error {
	if err := os.MkdirAll(spec.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	loader := convergence.NewLoader(spec.DataDir)

	var entries []convergence.ComparisonEntry
	var summaries []convergence.Summary
	iterations := 0

	for _, algo := range spec.Algorithms {
		table, err := loader.Load(algo.Name, spec.Scale)
		if errors.Is(err, convergence.ErrNoData) {
			slog.Warn("No convergence data, skipping", "algorithm", algo.Name, "scale", spec.Scale)
			continue
		}
		if err != nil {
			return err
		}

		outPath := filepath.Join(spec.OutDir,
			fmt.Sprintf("convergence_individual_%s_%s.png", algo.Name, spec.Scale))
		if err := convergence.PlotIndividual(table, algo, outPath); err != nil {
			return err
		}
		slog.Info("Individual plot written", "algorithm", algo.Name, "seeds", len(table.Seeds), "path", outPath)

		profile := table.Profile()
		if len(profile) > iterations {
			iterations = len(profile)
		}

		summary, err := convergence.Summarize(algo.Name, profile)
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
		entries = append(entries, convergence.ComparisonEntry{Style: algo, Profile: profile})
	}

	if len(entries) == 0 {
		return fmt.Errorf("no convergence data for any algorithm in %s (scale %s)", spec.DataDir, spec.Scale)
	}

	cmpPath := filepath.Join(spec.OutDir, fmt.Sprintf("convergence_comparison_%s.png", spec.Scale))
	if err := convergence.PlotComparison(entries, spec.Scale, cmpPath); err != nil {
		return err
	}
	slog.Info("Comparison plot written", "algorithms", len(entries), "path", cmpPath)

	reportPath := filepath.Join(spec.OutDir, fmt.Sprintf("convergence_report_%s.md", spec.Scale))
	meta := markdown.NewMeta(spec.DataDir)
	if err := convergence.WriteReport(reportPath, spec.Scale, summaries, iterations, meta); err != nil {
		return err
	}
	slog.Info("Report written", "path", reportPath)
	return nil
}
