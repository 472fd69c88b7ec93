package figures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarX(t *testing.T) {
	n := len(impactAlgorithms)

	t.Run("one unit slot per bar", func(t *testing.T) {
		assert.Equal(t, 0.0, barX(0, 0, n))
		assert.Equal(t, float64(n-1), barX(0, n-1, n))
	})

	t.Run("gap slot between groups", func(t *testing.T) {
		assert.Equal(t, barX(0, n-1, n)+2, barX(1, 0, n))
	})

	t.Run("group center is midway over its bars", func(t *testing.T) {
		assert.Equal(t, (barX(0, 0, n)+barX(0, n-1, n))/2, groupCenter(0, n))
		assert.Equal(t, (barX(1, 0, n)+barX(1, n-1, n))/2, groupCenter(1, n))
	})
}
