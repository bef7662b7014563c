package widget

// Stable identifiers the widget resolves its elements by.
const (
	SurfaceID   = "mood-area"
	TodayID     = "today-dot"
	YesterdayID = "yesterday-dot"
	DateLabelID = "date-label"
	MoodLabelID = "mood-label"
)

// Rect is the surface's current bounding box in the host's pointer
// coordinate space.
type Rect struct {
	Left, Top, Width, Height float64
}

// Surface is the rectangular interaction area pointer events arrive on.
type Surface interface {
	Rect() Rect
	SetPointerCapture(pointerID int) error
	ReleasePointerCapture(pointerID int) error
}

// Indicator is a dot drawn over the surface. Positions are percentages of
// the surface's width and height.
type Indicator interface {
	SetPosition(leftPct, topPct float64)
	SetDragging(dragging bool)
	SetVisible(visible bool)
}

type Text interface {
	SetText(text string)
}

// Host resolves elements by identifier. Each method returns nil when the
// element does not exist.
type Host interface {
	Surface(id string) Surface
	Indicator(id string) Indicator
	Text(id string) Text
}
