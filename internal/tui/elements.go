package tui

import (
	"fmt"
	"math"

	"drift/internal/widget"
)

// surface is the boxed interior of the screen. Its rect is recomputed from
// the screen size on every call so resizes are picked up mid-drag.
type surface struct {
	size     func() (int, int)
	captured map[int]bool
}

func (s *surface) Rect() widget.Rect {
	w, h := s.size()
	return widget.Rect{
		Left:   float64(surfaceLeft),
		Top:    float64(surfaceTop),
		Width:  float64(w - 2*surfaceLeft - 1),
		Height: float64(h - surfaceTop - footerRows - 2),
	}
}

// contains reports whether the cell lies inside the box, border excluded.
func (s *surface) contains(x, y int) bool {
	r := s.Rect()
	return float64(x) >= r.Left && float64(x) <= r.Left+r.Width &&
		float64(y) >= r.Top && float64(y) <= r.Top+r.Height
}

func (s *surface) SetPointerCapture(pointerID int) error {
	s.captured[pointerID] = true
	return nil
}

func (s *surface) ReleasePointerCapture(pointerID int) error {
	if !s.captured[pointerID] {
		return fmt.Errorf("pointer %d is not captured", pointerID)
	}
	delete(s.captured, pointerID)
	return nil
}

type dot struct {
	leftPct, topPct float64
	dragging        bool
	visible         bool
}

func (d *dot) SetPosition(leftPct, topPct float64) {
	d.leftPct, d.topPct = leftPct, topPct
}

func (d *dot) SetDragging(dragging bool) {
	d.dragging = dragging
}

func (d *dot) SetVisible(visible bool) {
	d.visible = visible
}

// cell maps the dot's percentage position onto a screen cell of r.
func (d *dot) cell(r widget.Rect) (int, int) {
	x := r.Left + math.Round(d.leftPct/100*r.Width)
	y := r.Top + math.Round(d.topPct/100*r.Height)
	return int(x), int(y)
}

type label struct {
	text string
}

func (l *label) SetText(text string) {
	l.text = text
}
