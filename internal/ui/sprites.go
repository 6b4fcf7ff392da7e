package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/tinyboard/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// AssetKey identifies a sprite by team and piece type name,
// e.g. {"white", "pawn"}.
type AssetKey struct {
	Team string
	Kind string
}

// KeyFor returns the asset key of a piece.
func KeyFor(p board.Piece) AssetKey {
	team, kind := p.AssetName()
	return AssetKey{Team: team, Kind: kind}
}

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// pieceFiles maps asset keys to their embedded SVG files.
var pieceFiles = map[AssetKey]string{
	{"white", "pawn"}:   "assets/pieces/wP.svg",
	{"white", "knight"}: "assets/pieces/wN.svg",
	{"white", "bishop"}: "assets/pieces/wB.svg",
	{"white", "rook"}:   "assets/pieces/wR.svg",
	{"white", "queen"}:  "assets/pieces/wQ.svg",
	{"white", "king"}:   "assets/pieces/wK.svg",
	{"black", "pawn"}:   "assets/pieces/bP.svg",
	{"black", "knight"}: "assets/pieces/bN.svg",
	{"black", "bishop"}: "assets/pieces/bB.svg",
	{"black", "rook"}:   "assets/pieces/bR.svg",
	{"black", "queen"}:  "assets/pieces/bQ.svg",
	{"black", "king"}:   "assets/pieces/bK.svg",
}

// pieceSVG returns the SVG document of a sprite.
func pieceSVG(key AssetKey) ([]byte, error) {
	path, ok := pieceFiles[key]
	if !ok {
		return nil, fmt.Errorf("no sprite for %s %s", key.Team, key.Kind)
	}
	return pieceAssets.ReadFile(path)
}

// rasterize renders an SVG document into a size x size RGBA image.
func rasterize(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// AssetTable owns the piece sprites. It is created by the renderer and
// passed to drawing calls; nothing else holds sprite images.
type AssetTable struct {
	sprites     map[AssetKey]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewAssetTable rasterises every (team, type) sprite at the given display size.
func NewAssetTable(size int) *AssetTable {
	at := &AssetTable{
		sprites:     make(map[AssetKey]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	at.load()
	return at
}

func (at *AssetTable) load() {
	renderSize := int(float64(at.size) * at.renderScale)

	for _, team := range []board.Team{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			key := KeyFor(board.NewPiece(team, pt))

			data, err := pieceSVG(key)
			if err != nil {
				log.Printf("Failed to build sprite %v: %v", key, err)
				continue
			}
			rgba, err := rasterize(data, renderSize)
			if err != nil {
				log.Printf("Failed to rasterize sprite %v: %v", key, err)
				continue
			}
			at.sprites[key] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// Lookup returns the sprite of a piece, or nil.
func (at *AssetTable) Lookup(p board.Piece) *ebiten.Image {
	if p.IsEmpty() {
		return nil
	}
	return at.sprites[KeyFor(p)]
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel coordinates.
func (at *AssetTable) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := at.Lookup(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / at.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of sprites.
func (at *AssetTable) Size() int {
	return at.size
}
