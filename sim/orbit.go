package sim

import (
	"math"

	"github.com/plus3/orrery/ecs"
)

// OrbitalPosition converts polar orbit coordinates into the sprite's
// top-left corner: center + radius*(cos angle, sin angle), offset by the
// half-extents so the sprite is centered on the orbit path.
func OrbitalPosition(center Center, radius, angle float64, halfW, halfH int) Position {
	return Position{
		X: center.X + radius*math.Cos(angle) - float64(halfW),
		Y: center.Y + radius*math.Sin(angle) - float64(halfH),
	}
}

// OrbitSystem advances every orbiting body by one tick: it places the body
// at its current angle, then increments the angle by the angular speed.
// The advance is a fixed per-tick step, so body positions are a pure
// function of tick count regardless of wall-clock timing.
type OrbitSystem struct{}

func (s *OrbitSystem) Execute(frame *ecs.UpdateFrame) {
	center := ecs.GetSingleton[Center](frame.Storage)
	if center == nil {
		return
	}

	ecs.Each3(frame.Storage, func(_ ecs.EntityId, body *Body, orbit *Orbit, pos *Position) {
		*pos = OrbitalPosition(*center, orbit.Radius, orbit.Angle, body.HalfW(), body.HalfH())
		orbit.Angle += orbit.AngularSpeed
	})
}
