package ecs

// Options configures a World.
type Options struct {
	// AutoFillUnspecifiedComponentKinds lets system registration omit
	// component kinds (nil list or zero entries); the scheduler fills the
	// gaps from the registry's default kinds.
	AutoFillUnspecifiedComponentKinds bool
}

// World owns the registry, archetype store, entity directory and scheduler.
// It is an explicit value: create as many independent worlds as needed. All
// operations assume a single owning goroutine; the world carries no
// synchronisation.
type World struct {
	opts      Options
	registry  *Registry
	store     *ArchetypeStore
	directory *entityDirectory
	scheduler *Scheduler
	commands  *Commands
}

// NewWorld creates an empty world.
func NewWorld(opts Options) *World {
	w := &World{
		opts:      opts,
		registry:  NewRegistry(),
		store:     newArchetypeStore(),
		directory: newEntityDirectory(),
		commands:  newCommands(),
	}
	w.scheduler = newScheduler(w)
	return w
}

// Registry exposes the world's type registry.
func (w *World) Registry() *Registry {
	return w.registry
}

// Store exposes the archetype store for diagnostics and tests.
func (w *World) Store() *ArchetypeStore {
	return w.store
}

// Scheduler exposes the system scheduler.
func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// Commands returns the deferred-mutation buffer, flushed after each phase.
func (w *World) Commands() *Commands {
	return w.commands
}

// CreateEntity allocates a live entity with no components.
func (w *World) CreateEntity() Id {
	w.store.ensureMutable()
	e := w.registry.CreateEntity()
	w.directory.insert(e, &entityLocation{row: noRow})
	return e
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.directory.len()
}

func (w *World) location(entity Id) *entityLocation {
	if entity.Kind() != KindEntity {
		fail(ErrWrongHandleKind, "%s handle used where an Entity handle is required", entity.Kind())
	}
	loc, ok := w.directory.lookup(entity)
	if !ok || !w.registry.Alive(entity) {
		fail(ErrUnknownEntity, "stale or unknown entity %016x", uint64(entity))
	}
	return loc
}

func (w *World) requireComponentKind(kind Id) {
	if kind.Kind() != KindComponent {
		fail(ErrWrongHandleKind, "%s handle used where a Component handle is required", kind.Kind())
	}
}

// relocate rewrites the directory entry of the entity that was swapped into
// row. O(1) through the archetype's reverse index.
func (w *World) relocate(entity Id, row int) {
	loc, ok := w.directory.lookup(entity)
	if !ok {
		fail(ErrUnknownEntity, "directory missing entity %016x for occupied row", uint64(entity))
	}
	loc.row = row
}

// AddKind attaches value to entity under an explicit component kind,
// migrating the entity's row to the extended archetype. Re-adding a kind the
// entity already carries overwrites the value in place; archetype membership
// is unchanged.
func AddKind[T any](w *World, entity, kind Id, value T) {
	w.store.ensureMutable()
	w.requireComponentKind(kind)
	if !w.registry.Validate(kind, TokenFor[T]()) {
		fail(ErrTypeIdentityMismatch, "kind %#x is not registered for %s", uint64(kind), typeNameFor[T]())
	}
	loc := w.location(entity)

	if loc.set.Contains(kind) {
		*archetypeGet[T](w.store.Find(loc.set), kind, loc.row) = value
		return
	}

	newSet := loc.set.With(kind)
	var src *Archetype
	if loc.row != noRow {
		src = w.store.Find(loc.set)
	}
	target := w.store.Find(newSet)
	if target == nil {
		target = w.store.create(newSet, src, kind, newColumn[T]())
	}

	if src == nil {
		target.pushValue(kind, value)
		loc.set = newSet
		loc.row = target.bindRow(entity)
		w.store.version++
		return
	}

	oldRow := loc.row
	moved := src.migrateRowTo(target, oldRow)
	target.pushValue(kind, value)
	target.assertParity()
	src.assertParity()
	loc.set = newSet
	loc.row = len(target.entities) - 1
	if moved != noRow {
		w.relocate(src.entities[oldRow], oldRow)
	}
	w.store.version++
}

// Add attaches value under the default kind registered for T.
func Add[T any](w *World, entity Id, value T) {
	kind, ok := DefaultKindFor[T](w.registry)
	if !ok {
		fail(ErrUnregisteredType, "no default component kind for %s", typeNameFor[T]())
	}
	AddKind(w, entity, kind, value)
}

// Remove detaches kind from entity, migrating its row to the reduced
// archetype. Removing a kind the entity does not carry is a no-op.
func (w *World) Remove(entity, kind Id) {
	w.store.ensureMutable()
	w.requireComponentKind(kind)
	loc := w.location(entity)
	if !loc.set.Contains(kind) {
		return
	}

	src := w.store.Find(loc.set)
	oldRow := loc.row
	newSet := loc.set.Without(kind)

	if len(newSet) == 0 {
		moved := src.swapRemoveRow(oldRow)
		loc.set = nil
		loc.row = noRow
		if moved != noRow {
			w.relocate(src.entities[oldRow], oldRow)
		}
		w.store.version++
		return
	}

	target := w.store.Find(newSet)
	if target == nil {
		target = w.store.create(newSet, src, 0, nil)
	}
	moved := src.migrateRowTo(target, oldRow)
	target.assertParity()
	src.assertParity()
	loc.set = newSet
	loc.row = len(target.entities) - 1
	if moved != noRow {
		w.relocate(src.entities[oldRow], oldRow)
	}
	w.store.version++
}

// Has reports whether entity carries kind. It is a lookup: stale handles and
// absent kinds answer false instead of failing.
func (w *World) Has(entity, kind Id) bool {
	if entity.Kind() != KindEntity || !w.registry.Alive(entity) {
		return false
	}
	loc, ok := w.directory.lookup(entity)
	return ok && loc.set.Contains(kind)
}

// GetKind returns a mutable reference to entity's value of kind. The
// reference is valid only until the next structural mutation.
func GetKind[T any](w *World, entity, kind Id) *T {
	w.requireComponentKind(kind)
	if !w.registry.Validate(kind, TokenFor[T]()) {
		fail(ErrTypeIdentityMismatch, "kind %#x is not registered for %s", uint64(kind), typeNameFor[T]())
	}
	loc := w.location(entity)
	if !loc.set.Contains(kind) {
		fail(ErrUnregisteredKind, "entity %016x does not carry kind %#x", uint64(entity), uint64(kind))
	}
	return archetypeGet[T](w.store.Find(loc.set), kind, loc.row)
}

// Get returns entity's value under the default kind registered for T.
func Get[T any](w *World, entity Id) *T {
	kind, ok := DefaultKindFor[T](w.registry)
	if !ok {
		fail(ErrUnregisteredType, "no default component kind for %s", typeNameFor[T]())
	}
	return GetKind[T](w, entity, kind)
}

// Destroy removes entity and all its components. The handle goes stale: its
// index is reissued only with a higher generation.
func (w *World) Destroy(entity Id) {
	w.store.ensureMutable()
	loc := w.location(entity)
	if loc.row != noRow {
		src := w.store.Find(loc.set)
		oldRow := loc.row
		moved := src.swapRemoveRow(oldRow)
		if moved != noRow {
			w.relocate(src.entities[oldRow], oldRow)
		}
	}
	w.directory.remove(entity)
	w.registry.destroy(entity)
	w.store.version++
}

// Update runs the PreUpdate and Update phases.
func (w *World) Update() {
	w.scheduler.run(PreUpdate)
	w.scheduler.run(Update)
}

// Render runs the PreRender and Render phases.
func (w *World) Render() {
	w.scheduler.run(PreRender)
	w.scheduler.run(Render)
}

// UI runs the UI phase.
func (w *World) UI() {
	w.scheduler.run(UI)
}
