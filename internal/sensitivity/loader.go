// Package sensitivity analyzes the ICBO-Enhanced parameter sweep: a CSV
// grid of (k, λ) configurations with makespan statistics, rendered as
// annotated heatmaps, trend panels and a Markdown report.
package sensitivity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Metric selects which statistic a heatmap plots.
type Metric string

const (
	MetricMean Metric = "MeanMakespan"
	MetricStd  Metric = "StdMakespan"
	MetricCV   Metric = "CV"
)

// Row is one (k, λ) configuration of the sweep.
type Row struct {
	K            int
	Lambda       float64
	MeanMakespan float64
	StdMakespan  float64
	CV           float64
	MinMakespan  float64
	MaxMakespan  float64
}

// Value returns the statistic selected by m.
func (r Row) Value(m Metric) float64 {
	switch m {
	case MetricStd:
		return r.StdMakespan
	case MetricCV:
		return r.CV
	default:
		return r.MeanMakespan
	}
}

// Table is one loaded sweep file.
type Table struct {
	Path string
	Rows []Row
}

// Discover returns the newest sensitivity_results_*.csv in dir, by
// modification time. The harness timestamps file names, but mtime is
// what the filesystem can actually promise.
func Discover(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "sensitivity_results_*.csv"))
	if err != nil {
		return "", fmt.Errorf("glob sensitivity results: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf(
			"no sensitivity_results_*.csv in %s (run the parameter sensitivity harness first): %w",
			dir, os.ErrNotExist,
		)
	}

	newest := matches[0]
	newestInfo, err := os.Stat(newest)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", newest, err)
	}
	for _, m := range matches[1:] {
		info, err := os.Stat(m)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", m, err)
		}
		if info.ModTime().After(newestInfo.ModTime()) {
			newest, newestInfo = m, info
		}
	}
	return newest, nil
}

// Load reads a sweep CSV. Columns are matched by header name, so the
// harness is free to reorder them.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, want := range []string{"k", "lambda", "MeanMakespan", "StdMakespan", "CV", "MinMakespan", "MaxMakespan"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("%s: missing column %q (got %v)", path, want, header)
		}
	}

	t := &Table{Path: path}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return t, nil
}

func parseRow(rec []string, cols map[string]int) (Row, error) {
	field := func(name string) string { return strings.TrimSpace(rec[cols[name]]) }

	k, err := strconv.Atoi(field("k"))
	if err != nil {
		return Row{}, fmt.Errorf("bad k %q: %w", field("k"), err)
	}

	row := Row{K: k}
	for name, dst := range map[string]*float64{
		"lambda":       &row.Lambda,
		"MeanMakespan": &row.MeanMakespan,
		"StdMakespan":  &row.StdMakespan,
		"CV":           &row.CV,
		"MinMakespan":  &row.MinMakespan,
		"MaxMakespan":  &row.MaxMakespan,
	} {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil {
			return Row{}, fmt.Errorf("bad %s %q: %w", name, field(name), err)
		}
		*dst = v
	}
	return row, nil
}

// Ks returns the sorted distinct k values of the sweep.
func (t *Table) Ks() []int {
	seen := make(map[int]bool)
	var ks []int
	for _, r := range t.Rows {
		if !seen[r.K] {
			seen[r.K] = true
			ks = append(ks, r.K)
		}
	}
	sort.Ints(ks)
	return ks
}

// Lambdas returns the sorted distinct λ values of the sweep.
func (t *Table) Lambdas() []float64 {
	seen := make(map[float64]bool)
	var ls []float64
	for _, r := range t.Rows {
		if !seen[r.Lambda] {
			seen[r.Lambda] = true
			ls = append(ls, r.Lambda)
		}
	}
	sort.Float64s(ls)
	return ls
}
