// Package mood holds the mood record, its qualitative labels and the
// date-derived storage keys records are filed under.
package mood

import "math"

// Coords is a normalized position on the mood surface. X runs from low
// energy (0, left) to high energy (1, right); Y from light (0, top) to
// heavy (1, bottom).
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var Center = Coords{X: 0.5, Y: 0.5}

func (c Coords) Clamp() Coords {
	return Coords{X: Clamp01(c.X), Y: Clamp01(c.Y)}
}

func (c Coords) Label() Label {
	return LabelFromCoords(c.X, c.Y)
}

// Clamp01 limits v to [0,1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
