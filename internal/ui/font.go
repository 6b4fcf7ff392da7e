package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	statusFontSize = 15.0
	coordFontSize  = 11.0
)

// Fonts holds the font faces used by the renderer.
type Fonts struct {
	Status *text.GoTextFace // status bar, bold
	Coord  *text.GoTextFace // board coordinates
	Toast  *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	return &Fonts{
		Status: &text.GoTextFace{Source: bold, Size: statusFontSize},
		Coord:  &text.GoTextFace{Source: regular, Size: coordFontSize},
		Toast:  &text.GoTextFace{Source: regular, Size: statusFontSize},
	}, nil
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
