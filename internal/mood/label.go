package mood

type Label string

const (
	Soft     Label = "Soft"
	Bright   Label = "Bright"
	Floating Label = "Floating"
	Charged  Label = "Charged"
	Heavy    Label = "Heavy"
	Restless Label = "Restless"
	Drifting Label = "Drifting"
)

const (
	energyBoundary = 0.6
	lightBoundary  = 0.35
	heavyBoundary  = 0.7
)

func (l Label) String() string {
	return string(l)
}

// LabelFromCoords partitions the unit square into six moods. Columns split
// at x > 0.6; rows split at y < 0.35 and y >= 0.7. Inputs no row or column
// claims (NaN) fall back to Drifting.
func LabelFromCoords(x, y float64) Label {
	high := x > energyBoundary
	low := x <= energyBoundary

	switch {
	case y < lightBoundary && high:
		return Bright
	case y < lightBoundary && low:
		return Soft
	case y >= lightBoundary && y < heavyBoundary && high:
		return Charged
	case y >= lightBoundary && y < heavyBoundary && low:
		return Floating
	case y >= heavyBoundary && high:
		return Restless
	case y >= heavyBoundary && low:
		return Heavy
	}
	return Drifting
}
