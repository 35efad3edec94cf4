package ecs

// Commands buffers structural mutations raised while systems iterate; the
// scheduler flushes the buffer once the phase's row walks have finished.
// Direct structural mutation during a row walk panics, so systems that need
// to spawn, destroy or restructure entities queue the work here.
type Commands struct {
	creates  []func(*World)
	destroys []Id
	removes  []removeCommand
	adds     []addCommand
	defers   []func()
}

type removeCommand struct {
	entity Id
	kind   Id
}

type addCommand struct {
	entity Id
	apply  func(*World)
}

func newCommands() *Commands {
	return &Commands{}
}

// CommandAdd queues attaching value to entity under the default kind for T.
func CommandAdd[T any](c *Commands, entity Id, value T) {
	c.adds = append(c.adds, addCommand{
		entity: entity,
		apply:  func(w *World) { Add(w, entity, value) },
	})
}

// CommandAddKind queues attaching value to entity under an explicit kind.
func CommandAddKind[T any](c *Commands, entity, kind Id, value T) {
	c.adds = append(c.adds, addCommand{
		entity: entity,
		apply:  func(w *World) { AddKind(w, entity, kind, value) },
	})
}

// Create queues fn with a freshly created entity once the buffer flushes.
func (c *Commands) Create(fn func(w *World, entity Id)) {
	c.creates = append(c.creates, func(w *World) {
		fn(w, w.CreateEntity())
	})
}

// Remove queues detaching kind from entity.
func (c *Commands) Remove(entity, kind Id) {
	c.removes = append(c.removes, removeCommand{entity: entity, kind: kind})
}

// Destroy queues destroying entity.
func (c *Commands) Destroy(entity Id) {
	c.destroys = append(c.destroys, entity)
}

// Defer queues an arbitrary function, run after all structural commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// flush applies the buffered operations in a fixed order: destroys, removes,
// adds, creates, defers. Commands targeting an entity destroyed in the same
// flush are dropped.
func (c *Commands) flush(w *World) {
	if len(c.creates) == 0 && len(c.destroys) == 0 && len(c.removes) == 0 &&
		len(c.adds) == 0 && len(c.defers) == 0 {
		return
	}

	destroyed := make(map[Id]bool, len(c.destroys))
	for _, entity := range c.destroys {
		w.Destroy(entity)
		destroyed[entity] = true
	}
	for _, cmd := range c.removes {
		if !destroyed[cmd.entity] {
			w.Remove(cmd.entity, cmd.kind)
		}
	}
	for _, cmd := range c.adds {
		if !destroyed[cmd.entity] {
			cmd.apply(w)
		}
	}
	for _, fn := range c.creates {
		fn(w)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.creates = c.creates[:0]
	c.destroys = c.destroys[:0]
	c.removes = c.removes[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
}
