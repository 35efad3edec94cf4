package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plus3/arche/ecs"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

// Marker components for set/query tests
type TagA struct{ N int }
type TagB struct{ N int }
type TagC struct{ N int }

// Inventory holds a reference type to exercise value-move of non-trivial
// components.
type Inventory struct {
	Items []string
}

func newTestWorld() *ecs.World {
	w := ecs.NewWorld(ecs.Options{})
	r := w.Registry()
	ecs.RegisterComponent[Position](r, ecs.TypeDefault)
	ecs.RegisterComponent[Velocity](r, ecs.TypeDefault)
	ecs.RegisterComponent[Health](r, ecs.TypeDefault)
	ecs.RegisterComponent[Name](r, ecs.TypeDefault)
	ecs.RegisterComponent[TagA](r, ecs.TypeDefault)
	ecs.RegisterComponent[TagB](r, ecs.TypeDefault)
	ecs.RegisterComponent[TagC](r, ecs.TypeDefault)
	ecs.RegisterComponent[Inventory](r, ecs.TypeDefault)
	return w
}

func kindOf[T any](t *testing.T, w *ecs.World) ecs.Id {
	t.Helper()
	kind, ok := ecs.DefaultKindFor[T](w.Registry())
	require.True(t, ok, "no default kind registered")
	return kind
}

// expectPanicKind asserts that fn panics with an *ecs.Error of the given kind.
func expectPanicKind(t *testing.T, kind ecs.ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(*ecs.Error)
		require.True(t, ok, "panic value %v is not *ecs.Error", r)
		require.Equal(t, kind, err.Kind, "unexpected error kind: %v", err)
	}()
	fn()
}
