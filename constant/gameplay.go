package constant

import "time"

// Playfield
const (
	// BoardWidth is the number of columns in the playfield
	BoardWidth = 10

	// BoardHeight is the number of rows in the playfield
	BoardHeight = 20

	// SpawnColumn horizontally centers the 4x4 piece frame
	SpawnColumn = BoardWidth/2 - 2

	// SpawnRow is the row of the piece frame origin on spawn
	SpawnRow = 0
)

// Pieces
const (
	// KindCount is the number of tetromino kinds in the catalog
	KindCount = 7

	// OrientationCount is the number of precomputed orientations per kind
	OrientationCount = 4

	// PieceCells is the number of cells in every orientation of every kind
	PieceCells = 4

	// PreviewDepth is the minimum number of upcoming kinds kept in the lookahead queue
	PreviewDepth = 3
)

// Gravity
const (
	// BaseFallInterval is the gravity interval at level 0
	BaseFallInterval = 500 * time.Millisecond

	// FallIntervalStep is subtracted from the base interval per level
	FallIntervalStep = 40 * time.Millisecond

	// MinFallInterval floors the gravity interval at high levels
	MinFallInterval = 100 * time.Millisecond
)

// Scoring
const (
	// LinesPerLevel is the number of cleared lines needed to advance one level
	LinesPerLevel = 10

	// MaxLinesPerLock is the most rows a single piece can complete
	MaxLinesPerLock = 4
)

// LineClearBase is the base score indexed by number of lines cleared in one lock
var LineClearBase = [MaxLinesPerLock + 1]uint32{0, 40, 100, 300, 1200}
