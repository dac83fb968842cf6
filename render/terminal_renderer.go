package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/engine"
)

// Panel row offsets from the top of the playfield border
const (
	rowHold = iota + 1
	rowNext
	_
	rowScore
	rowLevel
	rowLines
	rowMeter
	_
	rowStatus
	rowMuted
	rowHelp
)

// Frame dimensions in screen columns/rows, borders included
const (
	fieldWidth  = constant.BoardWidth*constant.CellWidth + 2
	fieldHeight = constant.BoardHeight + 2
	frameWidth  = fieldWidth + constant.PanelGap + constant.PanelWidth
	frameHeight = fieldHeight
)

// TerminalRenderer draws game snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	theme  Theme
	width  int
	height int
	// Top-left of the playfield border
	originX int
	originY int
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, theme Theme) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		theme:  theme,
	}
	r.Resize()
	return r
}

// SetTheme swaps the palette; takes effect on the next frame
func (r *TerminalRenderer) SetTheme(theme Theme) {
	r.theme = theme
}

func (r *TerminalRenderer) Theme() Theme {
	return r.theme
}

// Resize re-reads the screen size and recenters the frame
// Frames larger than the screen are anchored at the top-left and clipped
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.originX = max(0, (r.width-frameWidth)/2)
	r.originY = max(0, (r.height-frameHeight)/2)
}

// Origin returns the screen position of the playfield's top-left border corner
func (r *TerminalRenderer) Origin() (int, int) {
	return r.originX, r.originY
}

// RenderFrame draws the full frame and shows it
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	defaultStyle := r.theme.Style()
	r.screen.Fill(' ', defaultStyle)

	r.drawBorder(defaultStyle.Foreground(r.theme.Border))
	r.drawBoard(snap, defaultStyle)
	r.drawPiece(snap, defaultStyle)
	r.drawPanel(snap, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(style tcell.Style) {
	left, top := r.originX, r.originY
	right, bottom := left+fieldWidth-1, top+fieldHeight-1

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constant.GlyphBorderHorizontal, nil, style)
		r.screen.SetContent(x, bottom, constant.GlyphBorderHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constant.GlyphBorderVertical, nil, style)
		r.screen.SetContent(right, y, constant.GlyphBorderVertical, nil, style)
	}
	r.screen.SetContent(left, top, constant.GlyphBorderTopLeft, nil, style)
	r.screen.SetContent(right, top, constant.GlyphBorderTopRight, nil, style)
	r.screen.SetContent(left, bottom, constant.GlyphBorderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, constant.GlyphBorderBottomRight, nil, style)
}

func (r *TerminalRenderer) drawBoard(snap *engine.Snapshot, style tcell.Style) {
	emptyStyle := style.Foreground(r.theme.Empty)

	for y := 0; y < constant.BoardHeight; y++ {
		for x := 0; x < constant.BoardWidth; x++ {
			cell := snap.Board.At(x, y)
			if cell.Filled {
				r.drawBlock(x, y, style.Foreground(r.theme.PieceColor(cell.Color)))
				continue
			}
			sx, sy := r.cellToScreen(x, y)
			r.screen.SetContent(sx, sy, constant.GlyphEmpty, nil, emptyStyle)
		}
	}
}

// drawPiece overlays the active piece; cells above the top row are not drawn
func (r *TerminalRenderer) drawPiece(snap *engine.Snapshot, style tcell.Style) {
	if snap.GameOver {
		return
	}
	pieceStyle := style.Foreground(r.theme.PieceColor(snap.Piece.Color()))
	for _, c := range snap.PieceCells {
		if c.X < 0 || c.X >= constant.BoardWidth || c.Y < 0 || c.Y >= constant.BoardHeight {
			continue
		}
		r.drawBlock(c.X, c.Y, pieceStyle)
	}
}

func (r *TerminalRenderer) drawBlock(x, y int, style tcell.Style) {
	sx, sy := r.cellToScreen(x, y)
	for i := 0; i < constant.CellWidth; i++ {
		r.screen.SetContent(sx+i, sy, constant.GlyphBlock, nil, style)
	}
}

func (r *TerminalRenderer) drawPanel(snap *engine.Snapshot, style tcell.Style) {
	x := r.originX + fieldWidth + constant.PanelGap
	y := r.originY
	textStyle := style.Foreground(r.theme.Text)

	r.drawText(x, y+rowHold, constant.TextHold+snap.HeldName(), textStyle)
	r.drawText(x, y+rowNext, constant.TextNext+strings.Join(snap.NextNames(), " "), textStyle)
	r.drawText(x, y+rowScore, fmt.Sprintf("%s%d", constant.TextScore, snap.Score), textStyle)
	r.drawText(x, y+rowLevel, fmt.Sprintf("%s%d", constant.TextLevel, snap.Level), textStyle)
	r.drawText(x, y+rowLines, fmt.Sprintf("%s%d", constant.TextLines, snap.Lines), textStyle)
	r.drawLevelMeter(x, y+rowMeter, snap.Lines, style)

	switch {
	case snap.GameOver:
		r.drawText(x, y+rowStatus, constant.TextGameOver, style.Foreground(r.theme.Alert).Bold(true))
		r.drawText(x, y+rowHelp, constant.TextHelp, textStyle)
	case snap.Paused:
		r.drawText(x, y+rowStatus, constant.TextPaused, style.Foreground(r.theme.Notice).Bold(true))
	}
	if snap.Muted {
		r.drawText(x, y+rowMuted, constant.TextMuted, textStyle.Dim(true))
	}
}

// drawLevelMeter shows lines cleared toward the next level, one column per line
func (r *TerminalRenderer) drawLevelMeter(x, y int, lines uint32, style tcell.Style) {
	if !r.theme.Meter {
		return
	}
	filled := int(lines % constant.LinesPerLevel)
	for i := 0; i < constant.LinesPerLevel; i++ {
		if i < filled {
			progress := float64(i+1) / float64(constant.LinesPerLevel)
			r.screen.SetContent(x+i, y, constant.GlyphBlock, nil, style.Foreground(LevelMeterColor(progress)))
		} else {
			r.screen.SetContent(x+i, y, constant.GlyphEmpty, nil, style.Foreground(r.theme.Empty))
		}
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// cellToScreen maps a board cell to the screen column of its left half
func (r *TerminalRenderer) cellToScreen(x, y int) (int, int) {
	return r.originX + 1 + x*constant.CellWidth, r.originY + 1 + y
}
