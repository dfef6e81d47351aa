package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// table is the type-erased view of a component table, used when deleting
// an entity across every table that holds a component for it.
type table interface {
	removeSlot(slot uint32)
}

// componentTable stores one component type densely. rows and owners grow in
// insertion order; index maps an entity slot to its row. Deletion
// swap-removes, so iteration order is stable only while no entity that owns
// this component is deleted.
type componentTable[T any] struct {
	rows   []T
	owners []EntityId
	index  *intmap.Map[uint32, uint32]
}

func newComponentTable[T any]() *componentTable[T] {
	return &componentTable[T]{
		index: intmap.New[uint32, uint32](64),
	}
}

func (t *componentTable[T]) removeSlot(slot uint32) {
	row, ok := t.index.Get(slot)
	if !ok {
		return
	}

	last := uint32(len(t.rows) - 1)
	if row != last {
		t.rows[row] = t.rows[last]
		t.owners[row] = t.owners[last]
		t.index.Put(t.owners[row].Index(), row)
	}

	var zero T
	t.rows[last] = zero
	t.rows = t.rows[:last]
	t.owners = t.owners[:last]
	t.index.Del(slot)
}

// Storage owns all entities, component tables, and singletons.
// It is not safe for concurrent use; all access happens on the loop thread.
type Storage struct {
	generations []uint32
	alive       []bool
	free        []uint32
	aliveCount  int
	tables      map[reflect.Type]table
	singletons  map[reflect.Type]any
}

// NewStorage creates an empty storage
func NewStorage() *Storage {
	return &Storage{
		tables:     make(map[reflect.Type]table),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn allocates a new entity with no components, reusing a free slot if
// one is available.
func (s *Storage) Spawn() EntityId {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[idx] = true
	} else {
		idx = uint32(len(s.generations))
		s.generations = append(s.generations, 0)
		s.alive = append(s.alive, true)
	}
	s.aliveCount++
	return NewEntityId(s.generations[idx], idx)
}

// Alive reports whether id refers to a live entity. Stale ids from deleted
// entities return false even after the slot is reused.
func (s *Storage) Alive(id EntityId) bool {
	idx := id.Index()
	return int(idx) < len(s.generations) &&
		s.alive[idx] &&
		s.generations[idx] == id.Generation()
}

// Delete removes the entity and every component attached to it.
// Returns false if the id is stale or was never spawned.
func (s *Storage) Delete(id EntityId) bool {
	if !s.Alive(id) {
		return false
	}

	idx := id.Index()
	for _, t := range s.tables {
		t.removeSlot(idx)
	}

	s.alive[idx] = false
	s.generations[idx]++
	s.free = append(s.free, idx)
	s.aliveCount--
	return true
}

// Count returns the number of live entities
func (s *Storage) Count() int {
	return s.aliveCount
}

func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func tableFor[T any](s *Storage) *componentTable[T] {
	typ := typeOf[T]()
	if t, ok := s.tables[typ]; ok {
		return t.(*componentTable[T])
	}
	t := newComponentTable[T]()
	s.tables[typ] = t
	return t
}

// Attach adds component T to the entity, overwriting any existing value.
// Panics when the entity is not alive.
func Attach[T any](s *Storage, id EntityId, component T) {
	if !s.Alive(id) {
		panic("ecs: cannot attach component to a dead entity")
	}

	t := tableFor[T](s)
	if row, ok := t.index.Get(id.Index()); ok {
		t.rows[row] = component
		return
	}

	t.index.Put(id.Index(), uint32(len(t.rows)))
	t.rows = append(t.rows, component)
	t.owners = append(t.owners, id)
}

// Get returns a pointer to the entity's T component, or nil if the entity
// is dead or has no T. The pointer is invalidated by any Attach or Delete
// that touches the T table.
func Get[T any](s *Storage, id EntityId) *T {
	if !s.Alive(id) {
		return nil
	}
	t := tableFor[T](s)
	if row, ok := t.index.Get(id.Index()); ok {
		return &t.rows[row]
	}
	return nil
}

// Detach removes component T from the entity. Returns false if the entity
// is dead or has no T.
func Detach[T any](s *Storage, id EntityId) bool {
	if !s.Alive(id) {
		return false
	}
	t := tableFor[T](s)
	if _, ok := t.index.Get(id.Index()); !ok {
		return false
	}
	t.removeSlot(id.Index())
	return true
}

// Each visits every entity holding a T component, in table insertion order.
// The callback must not spawn or delete entities.
func Each[T any](s *Storage, fn func(EntityId, *T)) {
	t := tableFor[T](s)
	for i := range t.rows {
		fn(t.owners[i], &t.rows[i])
	}
}

// Each2 visits every entity holding both A and B, in A's table order
func Each2[A, B any](s *Storage, fn func(EntityId, *A, *B)) {
	ta := tableFor[A](s)
	tb := tableFor[B](s)
	for i := range ta.rows {
		id := ta.owners[i]
		if row, ok := tb.index.Get(id.Index()); ok {
			fn(id, &ta.rows[i], &tb.rows[row])
		}
	}
}

// Each3 visits every entity holding A, B and C, in A's table order
func Each3[A, B, C any](s *Storage, fn func(EntityId, *A, *B, *C)) {
	ta := tableFor[A](s)
	tb := tableFor[B](s)
	tc := tableFor[C](s)
	for i := range ta.rows {
		id := ta.owners[i]
		rowB, okB := tb.index.Get(id.Index())
		if !okB {
			continue
		}
		rowC, okC := tc.index.Get(id.Index())
		if !okC {
			continue
		}
		fn(id, &ta.rows[i], &tb.rows[rowB], &tc.rows[rowC])
	}
}
