package ecs

// column is the type-erased vector an archetype owns per component kind.
// Structural operations go through this v-table; typed access re-enters via a
// registry-validated downcast performed once at registration time and trusted
// on the hot path.
type column interface {
	// push appends a value. It panics if the value is not the column's
	// element type.
	push(value any) int
	// swapRemove swaps row with the last row and pops. It returns the index
	// previously held by the row that moved into the vacated slot, or noRow
	// if the removed row was the last one.
	swapRemove(row int) int
	// moveRowTo transfers row into peer by value-move. peer must hold the
	// same element type. The return value follows swapRemove.
	moveRowTo(peer column, row int) int
	len() int
	// spawnEmptyPeer creates an empty column of the same element type.
	spawnEmptyPeer() column
	token() TypeToken
}

// noRow marks "no row changed position" after a swap-remove, and doubles as
// the row slot of a live entity that currently has no components.
const noRow = -1
