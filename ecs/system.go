package ecs

// System represents a behavior that operates on entities with specific
// components. User-defined systems implement this interface and can keep
// custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame carries the per-tick context passed to every system.
type UpdateFrame struct {
	DeltaTime float64
	Storage   *Storage
}
