package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelMeterColor(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantZero bool // true if expecting black (unfilled)
	}{
		{"Negative progress", -0.1, true},
		{"Zero progress", 0.0, true},
		{"First segment", 0.1, false},
		{"Midpoint", 0.5, false},
		{"Last segment", 0.9, false},
		{"Full", 1.0, false},
		{"Over full", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := LevelMeterColor(tt.progress).RGB()
			if tt.wantZero {
				assert.Equal(t, [3]int32{0, 0, 0}, [3]int32{r, g, b})
			} else {
				assert.NotEqual(t, [3]int32{0, 0, 0}, [3]int32{r, g, b})
			}
		})
	}
}

func TestLevelMeterColorGradient(t *testing.T) {
	// Red rises to full, then green falls off
	var prevR int32
	for i := 1; i <= 10; i++ {
		r, _, _ := LevelMeterColor(float64(i) / 10).RGB()
		assert.GreaterOrEqual(t, r, prevR, "red at step %d", i)
		prevR = r
	}

	_, gMid, _ := LevelMeterColor(0.5).RGB()
	_, gEnd, _ := LevelMeterColor(1.0).RGB()
	assert.Greater(t, gMid, gEnd)

	assert.Equal(t, LevelMeterColor(1.0), LevelMeterColor(2.0))
}
