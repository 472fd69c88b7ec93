package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.InDelta(t, 20.0, Percent(20, 100), 1e-9)
	assert.InDelta(t, 50.0, Percent(1, 2), 1e-9)
	assert.Zero(t, Percent(5, 0))
}
