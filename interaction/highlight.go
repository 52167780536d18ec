package interaction

// BaseRadius is the radius of the solid core of an active point, in pixels.
const BaseRadius = 4.0

const (
	haloScale   = 2.5 // halo radius relative to the core radius.
	haloOpacity = 0.2
)

// Circle is a filled circle.
type Circle struct {
	X, Y, R float64
	Opacity float64
}

// Highlight is the marker of the active point: a translucent halo around a solid core.
type Highlight struct {
	Halo Circle
	Core Circle
}

// NewHighlight returns the marker of a point at (x, y). A non positive base uses BaseRadius.
func NewHighlight(x, y, base float64) Highlight {
	if base <= 0 {
		base = BaseRadius
	}
	return Highlight{
		Halo: Circle{X: x, Y: y, R: base * haloScale, Opacity: haloOpacity},
		Core: Circle{X: x, Y: y, R: base, Opacity: 1},
	}
}
