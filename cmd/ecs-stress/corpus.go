package main

import (
	"math/rand"

	"github.com/plus3/arche/ecs"
)

// Synthetic component corpus exercised by the stress loop.

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Acceleration struct {
	AX, AY float32
}

type Health struct {
	Current, Max int32
}

type Lifetime struct {
	Remaining float64
}

type Damage struct {
	Amount int32
}

type Faction struct {
	Team uint8
}

type Score struct {
	Points int64
}

const (
	componentCount = 8
	systemCount    = 6
)

// RegisterStressComponents registers the corpus as type defaults and returns
// the kinds in declaration order.
func RegisterStressComponents(w *ecs.World) []ecs.Id {
	r := w.Registry()
	return []ecs.Id{
		ecs.RegisterComponent[Position](r, ecs.TypeDefault),
		ecs.RegisterComponent[Velocity](r, ecs.TypeDefault),
		ecs.RegisterComponent[Acceleration](r, ecs.TypeDefault),
		ecs.RegisterComponent[Health](r, ecs.TypeDefault),
		ecs.RegisterComponent[Lifetime](r, ecs.TypeDefault),
		ecs.RegisterComponent[Damage](r, ecs.TypeDefault),
		ecs.RegisterComponent[Faction](r, ecs.TypeDefault),
		ecs.RegisterComponent[Score](r, ecs.TypeDefault),
	}
}

// RegisterStressSystems spreads the corpus systems across the phases.
func RegisterStressSystems(w *ecs.World) {
	ecs.RegisterSystem2(w, ecs.PreUpdate, nil, nil, func(v *Velocity, a *Acceleration) {
		v.DX += a.AX
		v.DY += a.AY
	})
	ecs.RegisterSystem2(w, ecs.Update, nil, nil, func(p *Position, v *Velocity) {
		p.X += v.DX
		p.Y += v.DY
	})
	ecs.RegisterSystem2(w, ecs.Update, nil, nil, func(h *Health, d *Damage) {
		h.Current -= d.Amount
		if h.Current < 0 {
			h.Current = 0
		}
	})
	ecs.RegisterSystem1(w, ecs.Update, nil, nil, func(l *Lifetime) {
		l.Remaining -= 1.0 / 60.0
	})
	ecs.RegisterSystem1(w, ecs.PreRender, nil, nil, func(p *Position) {
		_ = p.X + p.Y
	})
	ecs.RegisterSystem2(w, ecs.Render, nil, nil, func(s *Score, f *Faction) {
		s.Points += int64(f.Team)
	})
}

// SpawnRandomEntity creates an entity carrying Position plus a random subset
// of the remaining corpus kinds.
func SpawnRandomEntity(w *ecs.World, rng *rand.Rand) {
	e := w.CreateEntity()
	ecs.Add(w, e, Position{X: rng.Float32() * 100, Y: rng.Float32() * 100})
	if rng.Intn(2) == 0 {
		ecs.Add(w, e, Velocity{DX: rng.Float32(), DY: rng.Float32()})
	}
	if rng.Intn(3) == 0 {
		ecs.Add(w, e, Acceleration{AX: rng.Float32() * 0.1, AY: rng.Float32() * 0.1})
	}
	if rng.Intn(2) == 0 {
		ecs.Add(w, e, Health{Current: 100, Max: 100})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(w, e, Damage{Amount: int32(rng.Intn(3))})
	}
	if rng.Intn(4) == 0 {
		ecs.Add(w, e, Lifetime{Remaining: rng.Float64() * 30})
	}
	if rng.Intn(3) == 0 {
		ecs.Add(w, e, Faction{Team: uint8(rng.Intn(4))})
		ecs.Add(w, e, Score{})
	}
}
