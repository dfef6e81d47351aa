package sim

import "github.com/plus3/orrery/ecs"

// BaseSpeed is Earth's angular speed in radians per tick; the other
// planets' speeds are scaled relative to it.
const BaseSpeed = 0.02

// Planet describes one orbiting body in the demo's fixed lineup.
type Planet struct {
	Name   string
	Size   int     // sprite width and height, pixels
	Radius float64 // orbit radius, pixels
	Speed  float64 // radians per tick
	Angle  float64 // initial angle, radians
}

// Planets returns the eight orbiting bodies, innermost first. The initial
// angles fan the planets out so they do not start in a line.
func Planets() []Planet {
	return []Planet{
		{Name: "mercury", Size: 30, Radius: 80.0, Speed: BaseSpeed * 4.15, Angle: 45.0},
		{Name: "venus", Size: 40, Radius: 125.0, Speed: BaseSpeed * 1.62, Angle: 90.0},
		{Name: "earth", Size: 50, Radius: 175.0, Speed: BaseSpeed, Angle: 135.0},
		{Name: "mars", Size: 40, Radius: 225.0, Speed: BaseSpeed * 0.53, Angle: 180.0},
		{Name: "jupiter", Size: 80, Radius: 290.0, Speed: BaseSpeed * 0.084, Angle: 225.0},
		{Name: "saturn", Size: 70, Radius: 380.0, Speed: BaseSpeed * 0.034, Angle: 270.0},
		{Name: "uranus", Size: 60, Radius: 470.0, Speed: BaseSpeed * 0.012, Angle: 315.0},
		{Name: "neptune", Size: 60, Radius: 550.0, Speed: BaseSpeed * 0.006, Angle: 0.0},
	}
}

// SpawnPlanet creates an entity for the planet with its orbit, body, and
// position components. The position is filled in on the first tick.
func SpawnPlanet(storage *ecs.Storage, p Planet) ecs.EntityId {
	id := storage.Spawn()
	ecs.Attach(storage, id, Body{
		Name:    p.Name,
		W:       p.Size,
		H:       p.Size,
		Texture: p.Name,
	})
	ecs.Attach(storage, id, Orbit{
		Radius:       p.Radius,
		AngularSpeed: p.Speed,
		Angle:        p.Angle,
	})
	ecs.Attach(storage, id, Position{})
	return id
}
