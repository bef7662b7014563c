package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift/internal/mood"
	"drift/internal/persist"
	"drift/internal/store"
)

// The fake surface spans x in [100,300] and y in [50,150].
func down(x, y float64, target string) PointerEvent {
	return PointerEvent{Type: PointerDown, PointerID: 1, X: x, Y: y, Target: target}
}

func move(x, y float64) PointerEvent {
	return PointerEvent{Type: PointerMove, PointerID: 1, X: x, Y: y, Target: SurfaceID}
}

func up() PointerEvent {
	return PointerEvent{Type: PointerUp, PointerID: 1, Target: SurfaceID}
}

func TestDrag(t *testing.T) {
	ctx := context.Background()

	t.Run("down at top left", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(100, 50, SurfaceID))

		assert.Equal(t, Dragging, f.widget.State())
		assert.Equal(t, mood.Coords{X: 0, Y: 0}, f.widget.Coords())
		assert.Equal(t, "Soft", f.host.moodLabel.text)
		assert.True(t, f.host.today.dragging)
		assert.True(t, f.host.surface.captured[1])
	})

	t.Run("drag to bottom right and release", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(100, 50, SurfaceID))
		f.widget.Dispatch(ctx, move(200, 100))
		f.widget.Dispatch(ctx, move(300, 150))

		assert.Equal(t, mood.Coords{X: 1, Y: 1}, f.widget.Coords())
		assert.Equal(t, "Restless", f.host.moodLabel.text)
		assert.Equal(t, 100.0, f.host.today.left)
		assert.Equal(t, 100.0, f.host.today.top)

		f.widget.Dispatch(ctx, up())
		assert.Equal(t, Idle, f.widget.State())
		assert.False(t, f.host.today.dragging)
		assert.Empty(t, f.host.surface.captured)

		got, ok := f.stored(t, todayKey)
		require.True(t, ok)
		assert.Equal(t, mood.Coords{X: 1, Y: 1}, got)
	})

	t.Run("release persists the last coordinate", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(120, 60, SurfaceID))
		f.widget.Dispatch(ctx, move(250, 140))
		f.widget.Dispatch(ctx, move(150, 75))
		f.widget.Dispatch(ctx, up())

		got, ok := f.stored(t, todayKey)
		require.True(t, ok)
		assert.Equal(t, mood.Coords{X: 0.25, Y: 0.25}, got)
	})

	t.Run("moves outside the surface are clamped", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(200, 100, SurfaceID))
		f.widget.Dispatch(ctx, move(-500, 900))
		assert.Equal(t, mood.Coords{X: 0, Y: 1}, f.widget.Coords())
		assert.Equal(t, "Heavy", f.host.moodLabel.text)
	})

	t.Run("rect is re-queried on every move", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(200, 100, SurfaceID))
		f.host.surface.rect = Rect{Left: 0, Top: 0, Width: 400, Height: 400}
		f.widget.Dispatch(ctx, move(100, 300))
		assert.Equal(t, mood.Coords{X: 0.25, Y: 0.75}, f.widget.Coords())
	})

	t.Run("move while idle is ignored", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, move(100, 50))
		assert.Equal(t, mood.Center, f.widget.Coords())
		assert.Equal(t, Idle, f.widget.State())
	})

	t.Run("release while idle does not persist", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, up())
		f.widget.Dispatch(ctx, PointerEvent{Type: PointerCancel, PointerID: 1})
		f.widget.Dispatch(ctx, PointerEvent{Type: LostPointerCapture, PointerID: 1})
		assert.Equal(t, 0, f.kv.Len())
		assert.Equal(t, 0, f.host.surface.releases)
	})

	t.Run("cancel ends the drag and persists", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(300, 50, SurfaceID))
		f.widget.Dispatch(ctx, PointerEvent{Type: PointerCancel, PointerID: 1})

		assert.Equal(t, Idle, f.widget.State())
		got, ok := f.stored(t, todayKey)
		require.True(t, ok)
		assert.Equal(t, mood.Coords{X: 1, Y: 0}, got)
	})

	t.Run("lost capture swallows the release error", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(300, 150, SurfaceID))
		delete(f.host.surface.captured, 1)
		f.host.surface.releaseErr = errors.New("already released")

		assert.NotPanics(t, func() {
			f.widget.Dispatch(ctx, PointerEvent{Type: LostPointerCapture, PointerID: 1})
		})
		assert.Equal(t, Idle, f.widget.State())
		assert.Equal(t, 1, f.host.surface.releases)
		_, ok := f.stored(t, todayKey)
		assert.True(t, ok)
	})

	t.Run("down on today's indicator begins one drag", func(t *testing.T) {
		f := newFixture(t, nil)
		f.widget.Dispatch(ctx, down(200, 100, TodayID))
		assert.Equal(t, Dragging, f.widget.State())
		assert.Len(t, f.host.surface.captured, 1)

		f.widget.SurfacePointerDown(down(100, 50, TodayID))
		assert.Equal(t, mood.Center, f.widget.Coords())
	})

	t.Run("down on yesterday's indicator drags today", func(t *testing.T) {
		f := newFixture(t, map[string]string{yesterdayKey: `{"x":0.5,"y":0.5}`})
		f.widget.Dispatch(ctx, down(300, 150, YesterdayID))
		f.widget.Dispatch(ctx, up())

		c, _ := f.widget.Yesterday()
		assert.Equal(t, mood.Center, c)
		assert.Equal(t, 50.0, f.host.yesterday.left)
		assert.Equal(t, mood.Coords{X: 1, Y: 1}, f.widget.Coords())
	})

	t.Run("failed write keeps in-memory state", func(t *testing.T) {
		kv := store.NewMemoryWithQuota(1)
		require.NoError(t, kv.Set(ctx, "drift-mood-2020-01-01", `{"x":0,"y":0}`))
		w, err := New(ctx, newFakeHost(), persist.New(kv, nil), WithClock(testClock()))
		require.NoError(t, err)

		w.Dispatch(ctx, down(300, 50, SurfaceID))
		w.Dispatch(ctx, up())

		assert.Equal(t, Idle, w.State())
		assert.Equal(t, mood.Coords{X: 1, Y: 0}, w.Coords())
		assert.Equal(t, mood.Bright, w.Label())
		_, ok, _ := kv.Get(ctx, todayKey)
		assert.False(t, ok)
	})
}
