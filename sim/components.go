package sim

// Orbit holds the circular-orbit parameters of a body. Angle is unbounded;
// it wraps implicitly through trigonometric periodicity, so no
// normalization happens anywhere.
type Orbit struct {
	Radius       float64 // distance from the center point, pixels
	AngularSpeed float64 // radians added per tick
	Angle        float64 // current angle, radians
}

// Body describes the drawable sprite of a celestial body. Texture names an
// entry in the asset library; the body holds a name, not the image itself.
type Body struct {
	Name    string
	W, H    int
	Texture string
}

// HalfW returns half the sprite width, used to center the sprite on the
// orbit path.
func (b Body) HalfW() int { return b.W / 2 }

// HalfH returns half the sprite height
func (b Body) HalfH() int { return b.H / 2 }

// Position is the top-left corner of the body's sprite on screen.
type Position struct {
	X, Y float64
}

// Center is the fixed orbital center, the middle of the sun sprite.
// Computed once at startup and read-only afterwards.
type Center struct {
	X, Y float64
}
