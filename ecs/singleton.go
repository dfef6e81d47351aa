package ecs

// PutSingleton stores the single instance of T, replacing any previous one,
// and returns a stable pointer to it. Use this for global state that is not
// associated with any entity (screen handle, frame layout, configuration).
func PutSingleton[T any](s *Storage, value T) *T {
	ptr := new(T)
	*ptr = value
	s.singletons[typeOf[T]()] = ptr
	return ptr
}

// GetSingleton returns the singleton of type T, or nil if none was put.
func GetSingleton[T any](s *Storage) *T {
	if ptr, ok := s.singletons[typeOf[T]()]; ok {
		return ptr.(*T)
	}
	return nil
}
