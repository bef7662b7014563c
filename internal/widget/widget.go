// Package widget implements the mood picker: it positions today's and
// yesterday's indicators over a surface, turns pointer drags into mood
// coordinates and persists today's coordinate when a drag ends.
//
// A Widget is driven by a single event loop and is not safe for concurrent
// use.
package widget

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"drift/internal/mood"
	"drift/internal/persist"
)

var ErrMissingElements = errors.New("drift ui elements missing")

type Widget struct {
	surface   Surface
	today     Indicator
	yesterday Indicator
	dateLabel Text
	moodLabel Text

	store  *persist.Adapter
	clock  mood.Clock
	prefix string
	logger *zap.Logger

	state        State
	coords       mood.Coords
	yesterdayAt  mood.Coords
	hasYesterday bool
}

type Option func(*Widget)

func WithClock(clock mood.Clock) Option {
	return func(w *Widget) { w.clock = clock }
}

func WithPrefix(prefix string) Option {
	return func(w *Widget) { w.prefix = prefix }
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Widget) { w.logger = logger }
}

// New resolves the widget's elements from host, restores today's and
// yesterday's records and renders them. It returns ErrMissingElements,
// after logging a warning, when the host lacks a required element; nothing
// is rendered in that case.
func New(ctx context.Context, host Host, store *persist.Adapter, opts ...Option) (*Widget, error) {
	w := &Widget{
		store:  store,
		prefix: mood.DefaultPrefix,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named("widget")

	w.surface = host.Surface(SurfaceID)
	w.today = host.Indicator(TodayID)
	w.yesterday = host.Indicator(YesterdayID)
	w.dateLabel = host.Text(DateLabelID)
	w.moodLabel = host.Text(MoodLabelID)

	if w.surface == nil || w.today == nil || w.yesterday == nil {
		w.logger.Warn("drift ui elements missing",
			zap.Bool("surface", w.surface != nil),
			zap.Bool("today", w.today != nil),
			zap.Bool("yesterday", w.yesterday != nil))
		return nil, ErrMissingElements
	}
	if w.dateLabel == nil || w.moodLabel == nil {
		w.logger.Warn("drift label elements missing",
			zap.Bool("date_label", w.dateLabel != nil),
			zap.Bool("mood_label", w.moodLabel != nil))
		return nil, ErrMissingElements
	}

	now := w.clock.Now()
	w.dateLabel.SetText(mood.FormatDateLabel(now, now))

	w.coords = mood.Center
	if stored, ok := w.store.Load(ctx, mood.KeyForDate(w.prefix, now)); ok {
		w.coords = stored.Clamp()
	}

	yesterdayKey := mood.KeyForDate(w.prefix, mood.OffsetDate(w.clock, -1))
	if stored, ok := w.store.Load(ctx, yesterdayKey); ok {
		w.hasYesterday = true
		w.yesterdayAt = stored.Clamp()
		w.yesterday.SetVisible(true)
		place(w.yesterday, w.yesterdayAt)
	} else {
		w.yesterday.SetVisible(false)
	}

	w.today.SetVisible(true)
	w.render()
	return w, nil
}

func (w *Widget) State() State {
	return w.state
}

func (w *Widget) Coords() mood.Coords {
	return w.coords
}

func (w *Widget) Label() mood.Label {
	return w.coords.Label()
}

// Yesterday returns the previous day's record, if one was stored.
func (w *Widget) Yesterday() (mood.Coords, bool) {
	return w.yesterdayAt, w.hasYesterday
}

func (w *Widget) render() {
	place(w.today, w.coords)
	w.moodLabel.SetText(w.coords.Label().String())
}

func place(ind Indicator, c mood.Coords) {
	ind.SetPosition(c.X*100, c.Y*100)
}
