package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoc_Table(t *testing.T) {
	d := NewDoc()
	d.Table(
		[]string{"Algorithm", "Makespan"},
		[][]string{
			{"CBO", "971.98"},
			{"ICBO-Enhanced", "803.44"},
		},
	)

	lines := strings.Split(strings.TrimRight(d.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| Algorithm | Makespan |", lines[0])
	assert.Equal(t, "|---|---|", lines[1])
	assert.Equal(t, "| CBO | 971.98 |", lines[2])
	assert.Equal(t, "| ICBO-Enhanced | 803.44 |", lines[3])
}

func TestDoc_Heading(t *testing.T) {
	d := NewDoc()
	d.Heading(2, "Results")
	assert.Equal(t, "## Results\n\n", d.String())
}

func TestDoc_WriteFile(t *testing.T) {
	d := NewDoc()
	d.Heading(1, "Report")
	d.Bullet("first: %d", 1)

	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, d.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n\n- first: 1\n", string(raw))
}

func TestMeta_Write(t *testing.T) {
	m := NewMeta("sweep.csv")
	d := NewDoc()
	m.Write(d)

	out := d.String()
	assert.Contains(t, out, "Generated: ")
	assert.Contains(t, out, "Run ID: "+m.RunID.String())
	assert.Contains(t, out, "Data file: sweep.csv")
}

func TestMeta_WriteWithoutSource(t *testing.T) {
	d := NewDoc()
	Meta{}.Write(d)
	assert.NotContains(t, d.String(), "Data file:")
}
