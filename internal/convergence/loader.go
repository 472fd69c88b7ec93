// Package convergence loads per-seed convergence traces written by the
// experiment harness and turns them into overlay plots, comparison
// plots and a Markdown report.
//
// Input files follow the harness naming convention
// convergence_<Algorithm>_<Scale>_seed<N>.csv with columns
// Iteration,BestFitness; the seed is carried only in the file name.
package convergence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoData marks the skippable condition of an (algorithm, scale) pair
// with no trace files on disk. Callers continue with other algorithms.
var ErrNoData = errors.New("no convergence files found")

// Row is one iteration of one seeded run.
type Row struct {
	Iteration   int
	BestFitness float64
	Seed        int
}

// Table is the concatenation of every seed file for one
// (algorithm, scale) pair.
type Table struct {
	Algorithm string
	Scale     string
	Rows      []Row
	Seeds     []int
}

// Loader discovers and reads convergence traces under one directory.
type Loader struct {
	dataDir string
}

func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Load globs the seed files for the pair, parses each seed number from
// its file name and concatenates the rows. Returns ErrNoData (wrapped)
// when nothing matches.
func (l *Loader) Load(algorithm, scale string) (*Table, error) {
	pattern := fmt.Sprintf("convergence_%s_%s_seed*.csv", algorithm, scale)
	files, err := filepath.Glob(filepath.Join(l.dataDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s-%s: %w", algorithm, scale, ErrNoData)
	}
	sort.Strings(files)

	t := &Table{Algorithm: algorithm, Scale: scale}
	for _, file := range files {
		seed, err := seedFromName(file)
		if err != nil {
			return nil, err
		}
		rows, err := readTrace(file, seed)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, rows...)
		t.Seeds = append(t.Seeds, seed)
	}
	sort.Ints(t.Seeds)
	return t, nil
}

// seedFromName extracts N from .../convergence_..._seed<N>.csv.
func seedFromName(path string) (int, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idx := strings.LastIndex(stem, "seed")
	if idx < 0 {
		return 0, fmt.Errorf("file %s has no seed suffix", path)
	}
	seed, err := strconv.Atoi(stem[idx+len("seed"):])
	if err != nil {
		return 0, fmt.Errorf("file %s has invalid seed suffix: %w", path, err)
	}
	return seed, nil
}

func readTrace(path string, seed int) ([]Row, error) {
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
	iterCol, fitCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Iteration":
			iterCol = i
		case "BestFitness":
			fitCol = i
		}
	}
	if iterCol < 0 || fitCol < 0 {
		return nil, fmt.Errorf("%s: missing Iteration/BestFitness columns (got %v)", path, header)
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		iter, err := strconv.Atoi(strings.TrimSpace(rec[iterCol]))
		if err != nil {
			return nil, fmt.Errorf("%s: bad iteration %q: %w", path, rec[iterCol], err)
		}
		fit, err := strconv.ParseFloat(strings.TrimSpace(rec[fitCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad fitness %q: %w", path, rec[fitCol], err)
		}
		rows = append(rows, Row{Iteration: iter, BestFitness: fit, Seed: seed})
	}
	return rows, nil
}
