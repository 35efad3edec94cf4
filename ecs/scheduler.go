package ecs

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"
)

// Phase names one of the ordered scheduling slots systems are bucketed into.
// Update() drives PreUpdate then Update, Render() drives PreRender then
// Render, UI() drives UI; the split lets the host interleave its own work
// between the groups.
type Phase uint8

const (
	PreUpdate Phase = iota
	Update
	PreRender
	Render
	UI
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PreUpdate:
		return "PreUpdate"
	case Update:
		return "Update"
	case PreRender:
		return "PreRender"
	case Render:
		return "Render"
	case UI:
		return "UI"
	default:
		return "UNKNOWN"
	}
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemRecord struct {
	name     string
	phase    Phase
	required []Id
	prelude  func()
	iterate  func(*Archetype)

	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (rec *systemRecord) note(duration time.Duration) {
	rec.executionCount++
	rec.lastDuration = duration
	rec.totalDuration += duration
	if duration < rec.minDuration {
		rec.minDuration = duration
	}
	if duration > rec.maxDuration {
		rec.maxDuration = duration
	}
}

// Scheduler drives registered systems phase by phase. Within a phase systems
// run in insertion order; no reordering, no priorities. Determinism by
// registration order is the contract.
type Scheduler struct {
	world  *World
	phases [phaseCount][]*systemRecord
}

func newScheduler(world *World) *Scheduler {
	return &Scheduler{world: world}
}

func (s *Scheduler) register(phase Phase, name string, required []Id, prelude func(), iterate func(*Archetype)) {
	if phase >= phaseCount {
		panic("ecs: unknown phase " + phase.String())
	}
	s.phases[phase] = append(s.phases[phase], &systemRecord{
		name:        name,
		phase:       phase,
		required:    required,
		prelude:     prelude,
		iterate:     iterate,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// run executes one phase: per system, the prelude, then a row walk over
// every archetype whose set contains the system's required kinds. Structural
// mutation while the walk is open panics; the store version is additionally
// sampled around the pass as a backstop.
func (s *Scheduler) run(phase Phase) {
	store := s.world.store
	for _, rec := range s.phases[phase] {
		start := time.Now()
		if rec.prelude != nil {
			rec.prelude()
		}
		before := store.Version()
		store.beginIterate()
		for _, ar := range store.Query(rec.required) {
			rec.iterate(ar)
		}
		store.endIterate()
		if store.Version() != before {
			fail(ErrStructuralMutationDuringIteration, "system %s mutated the store mid-walk", rec.name)
		}
		rec.note(time.Since(start))
	}
	s.world.commands.flush(s.world)
}

// Run drives Update, Render and UI repeatedly at the given interval until
// the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.world.Update()
			s.world.Render()
			s.world.UI()
		}
	}
}

// GetStats returns statistics about system execution, in phase order and
// registration order within each phase.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{}

	for phase := PreUpdate; phase < phaseCount; phase++ {
		for _, rec := range s.phases[phase] {
			avg := time.Duration(0)
			if rec.executionCount > 0 {
				avg = rec.totalDuration / time.Duration(rec.executionCount)
			}
			stats.Systems = append(stats.Systems, SystemStats{
				Name:           rec.name,
				Phase:          rec.phase,
				ExecutionCount: rec.executionCount,
				MinDuration:    rec.minDuration,
				MaxDuration:    rec.maxDuration,
				AvgDuration:    avg,
				LastDuration:   rec.lastDuration,
				TotalDuration:  rec.totalDuration,
			})
			stats.TotalExecutions += rec.executionCount
		}
	}
	stats.SystemCount = len(stats.Systems)
	return stats
}

// resolveSystemKinds pairs the declared component kinds with the callback's
// type tokens. Zero kinds are filled from registry defaults when the world
// option allows it; every pair is validated before the system is accepted.
func (w *World) resolveSystemKinds(kinds []Id, tokens []TypeToken) []Id {
	if kinds == nil && w.opts.AutoFillUnspecifiedComponentKinds {
		kinds = make([]Id, len(tokens))
	}
	if len(kinds) != len(tokens) {
		fail(ErrSystemArityMismatch, "system declares %d value types but %d component kinds", len(tokens), len(kinds))
	}
	required := make([]Id, len(tokens))
	for i, kind := range kinds {
		if kind == 0 {
			if !w.opts.AutoFillUnspecifiedComponentKinds {
				fail(ErrUnregisteredKind, "component kind %d is unspecified", i)
			}
			def, ok := w.registry.defaultKind(tokens[i])
			if !ok {
				fail(ErrUnregisteredType, "no default component kind for value type %d", i)
			}
			kind = def
		}
		if !w.registry.Validate(kind, tokens[i]) {
			fail(ErrTypeIdentityMismatch, "required kind %d (%s) does not match the system's value type", i, w.registry.TypeName(kind))
		}
		required[i] = kind
	}
	return required
}

func systemName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
