package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/icbo-research/schedplot/internal/markdown"
	"github.com/icbo-research/schedplot/internal/plotspec"
	"github.com/icbo-research/schedplot/internal/sensitivity"
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

	if err := run(cfg, spec); err != nil {
		slog.Error("Sensitivity analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, spec *plotspec.Spec) error {
	path := cfg.File
	if path == "" {
		discovered, err := sensitivity.Discover(spec.DataDir)
		if err != nil {
			return err
		}
		path = discovered
	}
	slog.Info("Loading sensitivity sweep", "file", path)

	table, err := sensitivity.Load(path)
	if err != nil {
		return err
	}
	slog.Info("Sweep loaded", "configurations", len(table.Rows),
		"ks", table.Ks(), "lambdas", table.Lambdas())

	if err := os.MkdirAll(spec.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	heatmaps := []struct {
		metric sensitivity.Metric
		file   string
	}{
		{sensitivity.MetricMean, "sensitivity_heatmap_mean.png"},
		{sensitivity.MetricStd, "sensitivity_heatmap_std.png"},
		{sensitivity.MetricCV, "sensitivity_heatmap_cv.png"},
	}
	for _, h := range heatmaps {
		grid, err := table.Pivot(h.metric)
		if err != nil {
			return err
		}
		outPath := filepath.Join(spec.OutDir, h.file)
		if err := sensitivity.Heatmap(grid, sensitivity.MetricLabels(h.metric), outPath); err != nil {
			return err
		}
		slog.Info("Heatmap written", "metric", h.metric, "path", outPath)
	}

	meanGrid, err := table.Pivot(sensitivity.MetricMean)
	if err != nil {
		return err
	}
	localizedPath := filepath.Join(spec.OutDir,
		fmt.Sprintf("parameter_sensitivity_heatmap_%s.png", spec.Language))
	if err := sensitivity.Heatmap(meanGrid, sensitivity.LocalizedLabels(spec.Language), localizedPath); err != nil {
		return err
	}
	slog.Info("Localized heatmap written", "lang", spec.Language, "path", localizedPath)

	trendsPath := filepath.Join(spec.OutDir, "sensitivity_trends.png")
	if err := sensitivity.Trends(table, trendsPath); err != nil {
		return err
	}
	slog.Info("Trend panels written", "path", trendsPath)

	analysis, err := sensitivity.Analyze(table)
	if err != nil {
		return err
	}
	reportPath := filepath.Join(spec.OutDir, "sensitivity_analysis_report.md")
	meta := markdown.NewMeta(path)
	if err := sensitivity.WriteReport(reportPath, table, analysis, meta); err != nil {
		return err
	}
	slog.Info("Report written", "path", reportPath,
		"best_k", analysis.Best.K, "best_lambda", analysis.Best.Lambda)
	return nil
}
