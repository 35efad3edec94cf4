package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/arche/ecs"
)

func TestAddAndGet(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 3, Y: 4})

	pos := ecs.Get[Position](w, e)
	require.NotNil(t, pos)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)

	// The reference is mutable in place.
	pos.X = 9
	assert.Equal(t, float32(9), ecs.Get[Position](w, e).X)
}

func TestAddKindExplicit(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)

	e := w.CreateEntity()
	ecs.AddKind(w, e, posKind, Position{X: 1})

	assert.True(t, w.Has(e, posKind))
	assert.Equal(t, float32(1), ecs.GetKind[Position](w, e, posKind).X)
}

func TestReAddOverwritesInPlace(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 1, Y: 1})
	ecs.Add(w, e, Velocity{DX: 5, DY: 5})

	archetypes := len(w.Store().Archetypes())
	ecs.Add(w, e, Position{X: 2, Y: 2})

	// Archetype membership and row count are unchanged.
	assert.Equal(t, archetypes, len(w.Store().Archetypes()))
	assert.Equal(t, Position{X: 2, Y: 2}, *ecs.Get[Position](w, e))
	assert.Equal(t, Velocity{DX: 5, DY: 5}, *ecs.Get[Velocity](w, e))

	set := ecs.NewComponentSet(posKind, kindOf[Velocity](t, w))
	assert.Equal(t, 1, w.Store().Find(set).RowCount())
}

func TestHasIsALookup(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)
	velKind := kindOf[Velocity](t, w)

	e := w.CreateEntity()
	assert.False(t, w.Has(e, posKind), "fresh entity has no components")

	ecs.Add(w, e, Position{})
	assert.True(t, w.Has(e, posKind))
	assert.False(t, w.Has(e, velKind))

	w.Destroy(e)
	assert.False(t, w.Has(e, posKind), "stale handle answers false, not panic")
}

func TestRemoveMigratesToReducedArchetype(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)
	velKind := kindOf[Velocity](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 1})
	ecs.Add(w, e, Velocity{DX: 2})

	w.Remove(e, velKind)

	assert.True(t, w.Has(e, posKind))
	assert.False(t, w.Has(e, velKind))
	assert.Equal(t, float32(1), ecs.Get[Position](w, e).X)

	both := ecs.NewComponentSet(posKind, velKind)
	assert.Equal(t, 0, w.Store().Find(both).RowCount(), "old archetype emptied but retained")
	assert.Equal(t, 1, w.Store().Find(ecs.NewComponentSet(posKind)).RowCount())
}

func TestRemoveAbsentKindIsNoOp(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 1})

	w.Remove(e, kindOf[Velocity](t, w))

	assert.Equal(t, float32(1), ecs.Get[Position](w, e).X)
	assert.Equal(t, 1, len(w.Store().Archetypes()))
}

func TestRemoveLastKindLeavesLiveEmptyEntity(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{})
	w.Remove(e, posKind)

	assert.True(t, w.Registry().Alive(e))
	assert.False(t, w.Has(e, posKind))
	assert.Equal(t, 1, w.EntityCount())

	// The entity can regain components.
	ecs.Add(w, e, Velocity{DX: 7})
	assert.Equal(t, float32(7), ecs.Get[Velocity](w, e).DX)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)
	velKind := kindOf[Velocity](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 1})

	before := w.Store().Find(ecs.NewComponentSet(posKind)).RowCount()

	ecs.Add(w, e, Velocity{})
	w.Remove(e, velKind)

	// Structurally equivalent to the state before the pair.
	assert.Equal(t, before, w.Store().Find(ecs.NewComponentSet(posKind)).RowCount())
	assert.True(t, w.Has(e, posKind))
	assert.False(t, w.Has(e, velKind))
	assert.Equal(t, float32(1), ecs.Get[Position](w, e).X)
}

// The sixth entity leaves the two-kind archetype; the last entity's directory
// entry must be rewritten to the vacated row.
func TestSwapRemoveDirectoryFixUp(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)
	velKind := kindOf[Velocity](t, w)

	entities := make([]ecs.Id, 10)
	for i := range entities {
		entities[i] = w.CreateEntity()
		ecs.Add(w, entities[i], Velocity{})
		ecs.Add(w, entities[i], Position{X: float32(i)})
	}

	w.Remove(entities[5], velKind)

	both := w.Store().Find(ecs.NewComponentSet(posKind, velKind))
	require.NotNil(t, both)
	assert.Equal(t, 9, both.RowCount())

	posOnly := w.Store().Find(ecs.NewComponentSet(posKind))
	require.NotNil(t, posOnly)
	assert.Equal(t, 1, posOnly.RowCount())
	assert.Equal(t, entities[5], posOnly.EntityAt(0))

	// The 10th entity was swapped into row 5.
	assert.Equal(t, entities[9], both.EntityAt(5))

	// Every entity still reads back its own value.
	for i, e := range entities {
		assert.Equal(t, float32(i), ecs.Get[Position](w, e).X, "entity %d", i)
	}
}

func TestStaleHandlePanics(t *testing.T) {
	w := newTestWorld()

	first := w.CreateEntity()
	ecs.Add(w, first, Position{X: 1})

	w.Destroy(first)
	reused := w.CreateEntity()
	assert.Equal(t, first.Index(), reused.Index())

	expectPanicKind(t, ecs.ErrUnknownEntity, func() {
		ecs.Get[Position](w, first)
	})
	expectPanicKind(t, ecs.ErrUnknownEntity, func() {
		ecs.Add(w, first, Position{})
	})
}

func TestWrongHandleKindPanics(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)
	e := w.CreateEntity()

	expectPanicKind(t, ecs.ErrWrongHandleKind, func() {
		ecs.AddKind(w, e, e, Position{}) // entity handle where a kind is required
	})
	expectPanicKind(t, ecs.ErrWrongHandleKind, func() {
		_ = ecs.GetKind[Position](w, posKind, posKind) // kind handle where an entity is required
	})
}

func TestTypeMismatchPanics(t *testing.T) {
	w := newTestWorld()
	velKind := kindOf[Velocity](t, w)
	e := w.CreateEntity()

	expectPanicKind(t, ecs.ErrTypeIdentityMismatch, func() {
		ecs.AddKind(w, e, velKind, Position{}) // Velocity kind paired with a Position value
	})
}

func TestGetMissingComponentPanics(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	ecs.Add(w, e, Position{})

	expectPanicKind(t, ecs.ErrUnregisteredKind, func() {
		ecs.Get[Velocity](w, e)
	})
}

func TestUnregisteredDefaultPanics(t *testing.T) {
	w := ecs.NewWorld(ecs.Options{})
	e := w.CreateEntity()

	expectPanicKind(t, ecs.ErrUnregisteredType, func() {
		ecs.Add(w, e, Position{})
	})
}

func TestDestroyLastEntityInArchetype(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{})
	w.Destroy(e)

	assert.Equal(t, 0, w.EntityCount())
	ar := w.Store().Find(ecs.NewComponentSet(posKind))
	require.NotNil(t, ar, "emptied archetype is retained")
	assert.Equal(t, 0, ar.RowCount())
}

func TestDestroyFixesUpSwappedRow(t *testing.T) {
	w := newTestWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	ecs.Add(w, a, Position{X: 1})
	ecs.Add(w, b, Position{X: 2})
	ecs.Add(w, c, Position{X: 3})

	w.Destroy(a) // c swaps into row 0

	assert.Equal(t, float32(2), ecs.Get[Position](w, b).X)
	assert.Equal(t, float32(3), ecs.Get[Position](w, c).X)
	assert.Equal(t, 2, w.EntityCount())
}

func TestNonTriviallyCopyableComponentsMigrate(t *testing.T) {
	w := newTestWorld()

	e := w.CreateEntity()
	ecs.Add(w, e, Inventory{Items: []string{"sword", "shield"}})
	ecs.Add(w, e, Position{}) // forces a migration of the Inventory column

	inv := ecs.Get[Inventory](w, e)
	require.NotNil(t, inv)
	assert.Equal(t, []string{"sword", "shield"}, inv.Items)
}

func TestSingleKindArchetype(t *testing.T) {
	w := newTestWorld()
	posKind := kindOf[Position](t, w)

	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: 5})

	ar := w.Store().Find(ecs.NewComponentSet(posKind))
	require.NotNil(t, ar)
	assert.Equal(t, 1, ar.RowCount())
	assert.Equal(t, e, ar.EntityAt(0))
	assert.Equal(t, ecs.ComponentSet{posKind}, ar.Set())
}
