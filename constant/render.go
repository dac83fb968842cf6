package constant

// Playfield glyphs
const (
	// CellWidth is the number of terminal columns drawn per board cell (square-ish aspect)
	CellWidth = 2

	GlyphBlock = '█'
	GlyphEmpty = '·'

	GlyphBorderVertical    = '│'
	GlyphBorderHorizontal  = '─'
	GlyphBorderTopLeft     = '┌'
	GlyphBorderTopRight    = '┐'
	GlyphBorderBottomLeft  = '└'
	GlyphBorderBottomRight = '┘'
)

// Side panel layout
const (
	// PanelGap is the number of columns between the playfield border and the side panel
	PanelGap = 3

	// PanelWidth is the minimum width reserved for the side panel text
	PanelWidth = 16
)

// Panel text
const (
	TextHold     = "Hold: "
	TextNext     = "Next: "
	TextScore    = "Score: "
	TextLevel    = "Level: "
	TextLines    = "Lines: "
	TextNone     = "none"
	TextGameOver = "GAME OVER"
	TextPaused   = "PAUSED"
	TextMuted    = "muted"
	TextHelp     = "r: restart  q: quit"
)

// Theme names
const (
	ThemeClassic = "classic"
	ThemeMono    = "mono"
)
