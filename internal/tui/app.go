// Package tui hosts the mood picker on a terminal screen. The mouse is the
// pointer: pressing the left button inside the box begins a drag, moving
// with it held drags, and releasing it records the mood.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"drift/internal/persist"
	"drift/internal/widget"
)

const (
	surfaceLeft = 1
	surfaceTop  = 2
	footerRows  = 1

	mousePointer = 1
)

var (
	styleFrame     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeader    = tcell.StyleDefault.Bold(true)
	styleMood      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleToday     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleYesterday = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleAxis      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// App is a widget.Host backed by a tcell screen.
type App struct {
	screen tcell.Screen
	logger *zap.Logger
	widget *widget.Widget

	surface   *surface
	today     *dot
	yesterday *dot
	dateLabel *label
	moodLabel *label

	// held tracks the left button; pressed is set only when the press began
	// inside the surface and so started a drag.
	held    bool
	pressed bool
}

// New initializes screen for mouse input and builds the widget on it. The
// caller owns screen and must call Close.
func New(ctx context.Context, screen tcell.Screen, store *persist.Adapter, logger *zap.Logger, opts ...widget.Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	a := &App{
		screen:    screen,
		logger:    logger.Named("tui"),
		surface:   &surface{size: screen.Size, captured: make(map[int]bool)},
		today:     &dot{},
		yesterday: &dot{},
		dateLabel: &label{},
		moodLabel: &label{},
	}

	opts = append([]widget.Option{widget.WithLogger(logger)}, opts...)
	w, err := widget.New(ctx, a, store, opts...)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	a.widget = w
	return a, nil
}

func (a *App) Surface(id string) widget.Surface {
	if id != widget.SurfaceID {
		return nil
	}
	return a.surface
}

func (a *App) Indicator(id string) widget.Indicator {
	switch id {
	case widget.TodayID:
		return a.today
	case widget.YesterdayID:
		return a.yesterday
	}
	return nil
}

func (a *App) Text(id string) widget.Text {
	switch id {
	case widget.DateLabelID:
		return a.dateLabel
	case widget.MoodLabelID:
		return a.moodLabel
	}
	return nil
}

func (a *App) Widget() *widget.Widget {
	return a.widget
}

// Run draws and dispatches events until the user quits or ctx is done. An
// in-progress drag is cancelled, and so recorded, before Run returns.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handle(ctx, ev) {
			return nil
		}
	}
}

func (a *App) Close() {
	a.screen.Fini()
}

// handle translates one tcell event into widget pointer events. It reports
// whether the app should quit.
func (a *App) handle(ctx context.Context, ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		x, y := e.Position()
		held := e.Buttons()&tcell.Button1 != 0
		wasHeld := a.held
		a.held = held
		switch {
		case held && !wasHeld:
			if !a.surface.contains(x, y) {
				return false
			}
			a.pressed = true
			a.widget.Dispatch(ctx, a.pointer(widget.PointerDown, x, y, a.targetAt(x, y)))
		case held && a.pressed:
			a.widget.Dispatch(ctx, a.pointer(widget.PointerMove, x, y, widget.SurfaceID))
		case !held && a.pressed:
			a.pressed = false
			a.widget.Dispatch(ctx, a.pointer(widget.PointerUp, x, y, widget.SurfaceID))
		}

	case *tcell.EventFocus:
		if e.Focused {
			return false
		}
		a.held = false
		if a.pressed {
			a.pressed = false
			a.widget.Dispatch(ctx, widget.PointerEvent{Type: widget.LostPointerCapture, PointerID: mousePointer})
		}

	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || (e.Key() == tcell.KeyRune && e.Rune() == 'q') {
			a.quit(ctx)
			return true
		}

	case *tcell.EventInterrupt:
		a.quit(ctx)
		return true
	}
	return false
}

func (a *App) quit(ctx context.Context) {
	a.held, a.pressed = false, false
	// Persistence is best effort, so an expired ctx must not drop the drag.
	a.widget.Dispatch(context.WithoutCancel(ctx), widget.PointerEvent{Type: widget.PointerCancel, PointerID: mousePointer})
	a.logger.Debug("picker closed", zap.String("mood", a.widget.Label().String()))
}

func (a *App) pointer(t widget.EventType, x, y int, target string) widget.PointerEvent {
	return widget.PointerEvent{
		Type:      t,
		PointerID: mousePointer,
		X:         float64(x),
		Y:         float64(y),
		Target:    target,
	}
}

func (a *App) targetAt(x, y int) string {
	r := a.surface.Rect()
	if tx, ty := a.today.cell(r); tx == x && ty == y {
		return widget.TodayID
	}
	if a.yesterday.visible {
		if yx, yy := a.yesterday.cell(r); yx == x && yy == y {
			return widget.YesterdayID
		}
	}
	return widget.SurfaceID
}
