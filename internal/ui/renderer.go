package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/tinyboard/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare     color.RGBA
	DarkSquare      color.RGBA
	LegalMoveColor  color.RGBA
	KingInReach     color.RGBA
	HoverFill       color.RGBA
	HoverBorder     color.RGBA
	SelectionBorder color.RGBA
	Background      color.RGBA
	TextColor       color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:     color.RGBA{220, 220, 220, 255},
		DarkSquare:      color.RGBA{35, 35, 35, 255},
		LegalMoveColor:  color.RGBA{0, 255, 0, 100},
		KingInReach:     color.RGBA{255, 60, 60, 140},
		HoverFill:       color.RGBA{0, 0, 0, 100},
		HoverBorder:     color.RGBA{255, 0, 0, 255},
		SelectionBorder: color.RGBA{0, 121, 241, 255},
		Background:      color.RGBA{40, 44, 52, 255},
		TextColor:       color.RGBA{220, 220, 220, 255},
	}
}

// Renderer draws a board. It only reads board state.
type Renderer struct {
	assets   *AssetTable
	fonts    *Fonts
	theme    *Theme
	cellSize int
}

// NewRenderer creates a renderer for cells of the given size in pixels.
// fonts may be nil, in which case no text is drawn.
func NewRenderer(cellSize int, fonts *Fonts) *Renderer {
	return &Renderer{
		assets:   NewAssetTable(cellSize),
		fonts:    fonts,
		theme:    DefaultTheme(),
		cellSize: cellSize,
	}
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.cellSize * board.Size
}

// CellSize returns the size of one square in pixels.
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// SquareToScreen converts a board square to the pixel position of its top-left corner.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return sq.X * r.cellSize, sq.Y * r.cellSize
}

// DrawBoard draws the checkered grid and, optionally, file and rank labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image, coords bool) {
	cs := float32(r.cellSize)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			c := r.theme.LightSquare
			if (x+y)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, c, false)
		}
	}

	if coords {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates labels files along the bottom row and ranks along the left column.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	if r.fonts == nil {
		return
	}
	face := r.fonts.Coord
	for i := 0; i < board.Size; i++ {
		// Label colour contrasts with the square it sits on.
		file := board.Sq(i, board.Size-1)
		r.drawLabel(screen, file.String()[:1], face,
			float64((i+1)*r.cellSize)-coordFontSize, float64(board.Size*r.cellSize)-coordFontSize-4,
			r.labelColor(file))

		rank := board.Sq(0, i)
		r.drawLabel(screen, rank.String()[1:], face,
			3, float64(i*r.cellSize)+2,
			r.labelColor(rank))
	}
}

func (r *Renderer) labelColor(sq board.Square) color.RGBA {
	if (sq.X+sq.Y)%2 == 1 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawPieces draws every piece on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board) {
	for i := 0; i < board.Size*board.Size; i++ {
		sq := board.SquareFromIndex(i)
		p := b.Get(sq)
		if p.IsEmpty() {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.assets.DrawPieceAt(screen, p, x, y)
	}
}

// DrawHighlights tints every legal destination. When kingInReach is set,
// destinations holding a king are tinted red instead.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, b *board.Board, kingInReach bool) {
	for _, sq := range b.Highlights() {
		c := r.theme.LegalMoveColor
		if kingInReach && b.Get(sq).Type == board.King {
			c = r.theme.KingInReach
		}
		r.fillSquare(screen, sq, c)
	}
}

// DrawHover shades the square under the pointer and outlines it.
func (r *Renderer) DrawHover(screen *ebiten.Image, sq board.Square) {
	if !sq.IsValid() {
		return
	}
	r.fillSquare(screen, sq, r.theme.HoverFill)
	r.strokeSquare(screen, sq, r.theme.HoverBorder)
}

// DrawSelection outlines the selected square.
func (r *Renderer) DrawSelection(screen *ebiten.Image, sq board.Square) {
	if !sq.IsValid() {
		return
	}
	r.strokeSquare(screen, sq, r.theme.SelectionBorder)
}

// StatusText returns the status bar line.
func StatusText(turn board.Team, moves int, muted bool) string {
	s := fmt.Sprintf("%s to move  |  move %d", turn, moves+1)
	if muted {
		s += "  |  muted"
	}
	return s
}

// DrawStatus draws the status bar below the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	top := float32(r.BoardSize())
	vector.DrawFilledRect(screen, 0, top, float32(r.BoardSize()), StatusHeight, r.theme.Background, false)
	if r.fonts == nil {
		return
	}
	_, h := MeasureText(status, r.fonts.Status)
	r.drawLabel(screen, status, r.fonts.Status, 10, float64(top)+(StatusHeight-h)/2, r.theme.TextColor)
}

func (r *Renderer) fillSquare(screen *ebiten.Image, sq board.Square, c color.Color) {
	x, y := r.SquareToScreen(sq)
	cs := float32(r.cellSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), cs, cs, c, false)
}

func (r *Renderer) strokeSquare(screen *ebiten.Image, sq board.Square, c color.Color) {
	x, y := r.SquareToScreen(sq)
	cs := float32(r.cellSize)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, cs-2, cs-2, 2, c, false)
}
