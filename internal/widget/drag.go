package widget

import (
	"context"

	"go.uber.org/zap"

	"drift/internal/mood"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
	PointerCancel
	LostPointerCapture
)

// PointerEvent is a pointer sample in the same coordinate space as
// Surface.Rect. Target is the identifier of the element the pointer was
// over when the event was produced.
type PointerEvent struct {
	Type      EventType
	PointerID int
	X, Y      float64
	Target    string
}

// Dispatch routes ev the way the host's listeners are wired: a down on
// today's indicator reaches the indicator first and then the surface,
// which ignores it; everything else is handled on the surface.
func (w *Widget) Dispatch(ctx context.Context, ev PointerEvent) {
	switch ev.Type {
	case PointerDown:
		if ev.Target == TodayID {
			w.IndicatorPointerDown(ev)
		}
		w.SurfacePointerDown(ev)
	case PointerMove:
		w.PointerMove(ev)
	case PointerUp:
		w.PointerUp(ctx, ev)
	case PointerCancel:
		w.PointerCancel(ctx, ev)
	case LostPointerCapture:
		w.LostPointerCapture(ctx, ev)
	}
}

func (w *Widget) IndicatorPointerDown(ev PointerEvent) {
	w.beginDrag(ev)
}

// SurfacePointerDown ignores events targeting today's indicator; its own
// handler has already begun the drag.
func (w *Widget) SurfacePointerDown(ev PointerEvent) {
	if ev.Target == TodayID {
		return
	}
	w.beginDrag(ev)
}

func (w *Widget) PointerMove(ev PointerEvent) {
	if w.state != Dragging {
		return
	}
	w.moveTo(ev)
}

func (w *Widget) PointerUp(ctx context.Context, ev PointerEvent) {
	w.endDrag(ctx, ev)
}

func (w *Widget) PointerCancel(ctx context.Context, ev PointerEvent) {
	w.endDrag(ctx, ev)
}

func (w *Widget) LostPointerCapture(ctx context.Context, ev PointerEvent) {
	w.endDrag(ctx, ev)
}

func (w *Widget) beginDrag(ev PointerEvent) {
	w.state = Dragging
	w.today.SetDragging(true)
	if err := w.surface.SetPointerCapture(ev.PointerID); err != nil {
		w.logger.Debug("pointer capture failed", zap.Int("pointer", ev.PointerID), zap.Error(err))
	}
	w.moveTo(ev)
}

func (w *Widget) endDrag(ctx context.Context, ev PointerEvent) {
	if w.state != Dragging {
		return
	}
	w.state = Idle
	w.today.SetDragging(false)
	// Capture may already be gone; that is the lost-capture path.
	_ = w.surface.ReleasePointerCapture(ev.PointerID)
	w.store.Save(ctx, mood.TodayKey(w.prefix, w.clock), w.coords)
}

func (w *Widget) moveTo(ev PointerEvent) {
	w.coords = coordsFromPointer(w.surface.Rect(), ev.X, ev.Y)
	w.render()
}

func coordsFromPointer(r Rect, px, py float64) mood.Coords {
	return mood.Coords{
		X: mood.Clamp01((px - r.Left) / r.Width),
		Y: mood.Clamp01((py - r.Top) / r.Height),
	}
}
