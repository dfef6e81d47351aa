package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/orrery/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current, Max int
}

type Name string

// Test EntityId encoding/decoding
func TestEntityIdEncoding(t *testing.T) {
	generation := uint32(12345)
	index := uint32(67890)

	entityId := ecs.NewEntityId(generation, index)

	assert.Equal(t, generation, entityId.Generation())
	assert.Equal(t, index, entityId.Index())
}

func TestEntityIdEdgeCases(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, entityId.Generation())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnAndAttach(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.Count())

	ecs.Attach(storage, id, Position{X: 1.0, Y: 2.0})
	ecs.Attach(storage, id, Name("Test Entity"))

	pos := ecs.Get[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, 1.0, pos.X)
	assert.Equal(t, 2.0, pos.Y)

	name := ecs.Get[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, Name("Test Entity"), *name)

	// Component the entity never had
	assert.Nil(t, ecs.Get[Velocity](storage, id))
}

func TestAttachOverwrites(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	ecs.Attach(storage, id, Health{Current: 50, Max: 100})
	ecs.Attach(storage, id, Health{Current: 75, Max: 100})

	health := ecs.Get[Health](storage, id)
	require.NotNil(t, health)
	assert.Equal(t, 75, health.Current)
}

func TestAttachToDeadEntityPanics(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	storage.Delete(id)

	assert.Panics(t, func() {
		ecs.Attach(storage, id, Position{})
	})
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	ecs.Attach(storage, id, Position{X: 3.0, Y: 4.0})

	assert.True(t, storage.Delete(id))
	assert.False(t, storage.Alive(id))
	assert.Nil(t, ecs.Get[Position](storage, id))
	assert.Equal(t, 0, storage.Count())

	// Deleting twice is a no-op
	assert.False(t, storage.Delete(id))
}

func TestStaleIdAfterSlotReuse(t *testing.T) {
	storage := ecs.NewStorage()

	stale := storage.Spawn()
	ecs.Attach(storage, stale, Position{X: 1})
	storage.Delete(stale)

	// The slot is reused with a bumped generation
	fresh := storage.Spawn()
	ecs.Attach(storage, fresh, Position{X: 2})

	assert.Equal(t, stale.Index(), fresh.Index())
	assert.NotEqual(t, stale.Generation(), fresh.Generation())

	assert.False(t, storage.Alive(stale))
	assert.Nil(t, ecs.Get[Position](storage, stale))

	pos := ecs.Get[Position](storage, fresh)
	require.NotNil(t, pos)
	assert.Equal(t, 2.0, pos.X)
}

func TestDetach(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	ecs.Attach(storage, id, Position{X: 1})
	ecs.Attach(storage, id, Velocity{DX: 1})

	assert.True(t, ecs.Detach[Velocity](storage, id))
	assert.Nil(t, ecs.Get[Velocity](storage, id))
	assert.NotNil(t, ecs.Get[Position](storage, id))

	assert.False(t, ecs.Detach[Velocity](storage, id))
}

func TestEachOrderIsInsertionOrder(t *testing.T) {
	storage := ecs.NewStorage()

	var spawned []ecs.EntityId
	for i := 0; i < 8; i++ {
		id := storage.Spawn()
		ecs.Attach(storage, id, Position{X: float64(i)})
		spawned = append(spawned, id)
	}

	// Order must be identical on every pass
	for pass := 0; pass < 3; pass++ {
		var visited []ecs.EntityId
		ecs.Each(storage, func(id ecs.EntityId, pos *Position) {
			visited = append(visited, id)
		})
		assert.Equal(t, spawned, visited, "pass %d", pass)
	}
}

func TestEach2IntersectsComponents(t *testing.T) {
	storage := ecs.NewStorage()

	both := storage.Spawn()
	ecs.Attach(storage, both, Position{X: 1})
	ecs.Attach(storage, both, Velocity{DX: 2})

	posOnly := storage.Spawn()
	ecs.Attach(storage, posOnly, Position{X: 3})

	velOnly := storage.Spawn()
	ecs.Attach(storage, velOnly, Velocity{DX: 4})

	count := 0
	ecs.Each2(storage, func(id ecs.EntityId, pos *Position, vel *Velocity) {
		count++
		assert.Equal(t, both, id)
		assert.Equal(t, 1.0, pos.X)
		assert.Equal(t, 2.0, vel.DX)
	})
	assert.Equal(t, 1, count)
}

func TestEach3IntersectsComponents(t *testing.T) {
	storage := ecs.NewStorage()

	full := storage.Spawn()
	ecs.Attach(storage, full, Position{X: 1})
	ecs.Attach(storage, full, Velocity{DX: 2})
	ecs.Attach(storage, full, Health{Current: 3})

	partial := storage.Spawn()
	ecs.Attach(storage, partial, Position{X: 9})
	ecs.Attach(storage, partial, Velocity{DX: 9})

	count := 0
	ecs.Each3(storage, func(id ecs.EntityId, pos *Position, vel *Velocity, health *Health) {
		count++
		assert.Equal(t, full, id)
		assert.Equal(t, 3, health.Current)
	})
	assert.Equal(t, 1, count)
}

func TestEachMutatesInPlace(t *testing.T) {
	storage := ecs.NewStorage()

	id := storage.Spawn()
	ecs.Attach(storage, id, Position{X: 1, Y: 1})

	ecs.Each(storage, func(_ ecs.EntityId, pos *Position) {
		pos.X += 10
	})

	pos := ecs.Get[Position](storage, id)
	assert.Equal(t, 11.0, pos.X)
}

func TestSingleton(t *testing.T) {
	storage := ecs.NewStorage()

	assert.Nil(t, ecs.GetSingleton[Health](storage))

	ptr := ecs.PutSingleton(storage, Health{Current: 100, Max: 100})
	got := ecs.GetSingleton[Health](storage)
	require.NotNil(t, got)
	assert.Same(t, ptr, got)

	// Mutations through the pointer are visible to later readers
	got.Current = 42
	assert.Equal(t, 42, ecs.GetSingleton[Health](storage).Current)

	// Put replaces the previous instance
	ecs.PutSingleton(storage, Health{Current: 1, Max: 1})
	assert.Equal(t, 1, ecs.GetSingleton[Health](storage).Current)
}
