package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormationLayout_Place(t *testing.T) {
	layout := NewFormationLayout(DefaultLanes, DefaultRowY)

	x, y := layout.Place(0)
	assert.InDelta(t, 7.142857142857143, x, 1e-12)
	assert.Equal(t, 10.0, y)

	x, _ = layout.Place(6)
	assert.InDelta(t, 50.0, x, 1e-12)

	x, y = NewFormationLayout(0, 25).Place(1)
	assert.InDelta(t, 100.0/7, x, 1e-12)
	assert.Equal(t, 25.0, y)
}
