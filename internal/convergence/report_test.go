package convergence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icbo-research/schedplot/internal/markdown"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "convergence_report_M100.md")

	summaries := []Summary{
		{Algorithm: "CBO", Initial: 971.98, Final: 880.10, Improvement: 9.45, Speed: 62.30},
		{Algorithm: "ICBO-Enhanced", Initial: 950.00, Final: 803.44, Improvement: 15.43, Speed: 71.00},
	}
	meta := markdown.NewMeta("/data")

	require.NoError(t, WriteReport(path, "M100", summaries, 200, meta))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(raw)

	assert.Contains(t, report, "# Convergence Analysis Report - M100")
	assert.Contains(t, report, "Run ID: "+meta.RunID.String())
	assert.Contains(t, report, "| Algorithm | Initial Makespan | Final Makespan | Total Improvement | Convergence Speed (50%) |")
	assert.Contains(t, report, "| CBO | 971.98 | 880.10 | 9.45% | 62.30% |")
	assert.Contains(t, report, "| ICBO-Enhanced | 950.00 | 803.44 | 15.43% | 71.00% |")
	assert.Contains(t, report, "Iterations per run: 200")
}
