package ecs

import "github.com/kamstrup/intmap"

// entityLocation records where a live entity's row lives. A live entity with
// no components holds the empty set and noRow; the canonical no-component
// archetype is elided.
type entityLocation struct {
	set ComponentSet
	row int
}

// entityDirectory maps each live entity handle to its archetype row. An
// entity exists iff it has an entry here.
type entityDirectory struct {
	entries *intmap.Map[Id, *entityLocation]
}

func newEntityDirectory() *entityDirectory {
	return &entityDirectory{
		entries: intmap.New[Id, *entityLocation](256),
	}
}

func (d *entityDirectory) insert(entity Id, loc *entityLocation) {
	d.entries.Put(entity, loc)
}

func (d *entityDirectory) lookup(entity Id) (*entityLocation, bool) {
	return d.entries.Get(entity)
}

func (d *entityDirectory) remove(entity Id) {
	d.entries.Del(entity)
}

func (d *entityDirectory) len() int {
	return d.entries.Len()
}
