package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
)

const toastDuration = 1500 * time.Millisecond

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	now      func() time.Time
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxStack: 3,
		now:      time.Now,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: tm.now(),
		Duration:  toastDuration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := tm.now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Active returns the messages currently on screen, oldest first.
func (tm *ToastManager) Active() []string {
	out := make([]string, 0, len(tm.toasts))
	for _, t := range tm.toasts {
		out = append(out, t.Message)
	}
	return out
}

// alpha returns the fade factor of a toast at the given time, in [0, 1].
func (t *Toast) alpha(now time.Time) float64 {
	const fade = 0.2
	elapsed := now.Sub(t.StartTime).Seconds()
	duration := t.Duration.Seconds()

	a := 1.0
	switch {
	case elapsed < fade:
		a = elapsed / fade
	case elapsed > duration-fade:
		a = (duration - elapsed) / fade
	}
	return max(0, min(a, 1))
}

// Draw renders all active toasts centred over a board of the given width.
func (tm *ToastManager) Draw(screen *ebiten.Image, face *text.GoTextFace, boardWidth int) {
	if face == nil {
		return
	}

	now := tm.now()
	y := 16.0
	for _, t := range tm.toasts {
		a := t.alpha(now)
		bg := color.RGBA{50, 100, 150, uint8(220 * a)}
		if t.Type == ToastWarning {
			bg = color.RGBA{180, 50, 50, uint8(220 * a)}
		}
		fg := color.RGBA{255, 255, 255, uint8(255 * a)}

		w, h := MeasureText(t.Message, face)
		padding := 10.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(boardWidth)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}
