package ecs

import "fmt"

// Archetype stores every entity carrying exactly one set of component kinds.
// Columns are parallel to the sorted set; row r across all columns is the
// entity at row r. The entities slice is the reverse index row -> entity that
// keeps swap-remove fix-up O(1).
type Archetype struct {
	set      ComponentSet
	columns  []column
	entities []Id
}

func newArchetype(set ComponentSet) *Archetype {
	return &Archetype{
		set:     set,
		columns: make([]column, len(set)),
	}
}

// Set returns the component set identifying this archetype.
func (a *Archetype) Set() ComponentSet {
	return a.set
}

// RowCount returns the shared length of every column.
func (a *Archetype) RowCount() int {
	return len(a.entities)
}

// EntityAt returns the entity occupying row.
func (a *Archetype) EntityAt(row int) Id {
	return a.entities[row]
}

func (a *Archetype) hasKind(kind Id) bool {
	return a.set.Contains(kind)
}

func (a *Archetype) columnFor(kind Id) column {
	i := a.set.index(kind)
	if i < 0 {
		fail(ErrUnregisteredKind, "archetype has no column for kind %#x", uint64(kind))
	}
	return a.columns[i]
}

// pushValue appends value to the kind's column and returns the new row. The
// caller restores column parity for the remaining kinds before the operation
// completes.
func (a *Archetype) pushValue(kind Id, value any) int {
	return a.columnFor(kind).push(value)
}

// bindRow records entity as the owner of the freshly appended row.
func (a *Archetype) bindRow(entity Id) int {
	a.entities = append(a.entities, entity)
	a.assertParity()
	return len(a.entities) - 1
}

// migrateRowTo moves row into other: kinds present in both archetypes
// transfer by value-move, kinds absent from other are dropped. The entity
// back-reference moves along. Returns the index of the row swapped into the
// vacated slot, or noRow.
func (a *Archetype) migrateRowTo(other *Archetype, row int) int {
	moved := noRow
	for i, kind := range a.set {
		if j := other.set.index(kind); j >= 0 {
			moved = a.columns[i].moveRowTo(other.columns[j], row)
		} else {
			moved = a.columns[i].swapRemove(row)
		}
	}
	other.entities = append(other.entities, a.entities[row])
	a.unbindRow(row)
	return moved
}

// swapRemoveRow deletes the entire row across all columns. Returns the index
// previously held by the row that replaced it, or noRow.
func (a *Archetype) swapRemoveRow(row int) int {
	moved := noRow
	for _, col := range a.columns {
		moved = col.swapRemove(row)
	}
	a.unbindRow(row)
	a.assertParity()
	return moved
}

func (a *Archetype) unbindRow(row int) {
	last := len(a.entities) - 1
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
}

// assertParity enforces the core invariant: every column has the same length
// as the entity back-index.
func (a *Archetype) assertParity() {
	for i, col := range a.columns {
		if col.len() != len(a.entities) {
			panic(fmt.Sprintf("ecs: column %d of archetype has %d rows, expected %d", i, col.len(), len(a.entities)))
		}
	}
}

// archetypeGet returns a mutable reference to the value at (kind, row). The
// caller must have validated the kind/type pairing through the registry.
func archetypeGet[T any](a *Archetype, kind Id, row int) *T {
	return columnAt[T](a.columnFor(kind), row)
}
