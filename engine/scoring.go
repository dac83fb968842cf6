package engine

import (
	"time"

	"github.com/lixenwraith/term-tetris/constant"
)

// LineClearScore returns the points for clearing n lines at the given level
// n outside [0, MaxLinesPerLock] scores nothing
func LineClearScore(n int, level uint32) uint32 {
	if n < 0 || n > constant.MaxLinesPerLock {
		return 0
	}
	return constant.LineClearBase[n] * (level + 1)
}

// FallInterval returns the gravity interval for a level, floored at MinFallInterval
func FallInterval(level uint32) time.Duration {
	step := time.Duration(level) * constant.FallIntervalStep
	if step >= constant.BaseFallInterval-constant.MinFallInterval {
		return constant.MinFallInterval
	}
	return constant.BaseFallInterval - step
}
