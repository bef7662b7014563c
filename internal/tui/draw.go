package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const hint = "drag to set today's mood · ○ yesterday · q to quit"

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	r := a.surface.Rect()
	if r.Width < 1 || r.Height < 1 {
		drawText(a.screen, 0, 0, styleHint, "terminal too small")
		a.screen.Show()
		return
	}

	drawText(a.screen, 1, 0, styleHeader, a.dateLabel.text)
	drawText(a.screen, 1+runewidth.StringWidth(a.dateLabel.text)+3, 0, styleMood, a.moodLabel.text)

	right, bottom := w-1, h-footerRows-1
	drawBox(a.screen, 0, surfaceTop-1, right, bottom)
	drawAxes(a.screen, r.Left, r.Top, r.Width, r.Height)

	if a.yesterday.visible {
		x, y := a.yesterday.cell(r)
		a.screen.SetContent(x, y, '○', nil, styleYesterday)
	}
	x, y := a.today.cell(r)
	glyph := '●'
	if a.today.dragging {
		glyph = '◉'
	}
	a.screen.SetContent(x, y, glyph, nil, styleToday)

	drawText(a.screen, 1, h-1, styleHint, hint)
	a.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func drawBox(s tcell.Screen, left, top, right, bottom int) {
	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, '─', nil, styleFrame)
		s.SetContent(x, bottom, '─', nil, styleFrame)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, '│', nil, styleFrame)
		s.SetContent(right, y, '│', nil, styleFrame)
	}
	s.SetContent(left, top, '┌', nil, styleFrame)
	s.SetContent(right, top, '┐', nil, styleFrame)
	s.SetContent(left, bottom, '└', nil, styleFrame)
	s.SetContent(right, bottom, '┘', nil, styleFrame)
}

// drawAxes marks the label boundaries: the energy split at x=0.6 and the
// weight splits at y=0.35 and y=0.7.
func drawAxes(s tcell.Screen, left, top, width, height float64) {
	col := int(left + 0.6*width + 0.5)
	for y := int(top); y <= int(top+height); y++ {
		s.SetContent(col, y, '┆', nil, styleAxis)
	}
	for _, frac := range []float64{0.35, 0.7} {
		row := int(top + frac*height + 0.5)
		for x := int(left); x <= int(left+width); x++ {
			s.SetContent(x, row, '┄', nil, styleAxis)
		}
	}
}
