// Package board turns the states of a coordinate puzzle instance into
// coordinate to label snapshots and draws them as ASCII grids.
//
// A [Puzzle] is plain data: grid bounds, the relation bindings that place
// objects on cells, a fixed overlay of synthetic cells, and one glyph
// callback. [New] resolves every binding once against an instance; afterwards
// [Board.Assemble] builds a fresh [Snapshot] for any State atom and
// [Board.Render] draws it.
//
// Bindings merge in a fixed order, later ones overwriting earlier ones on the
// same cell: fixed overlay, static overlay, state_to_coord, object_to_coord,
// coord_to_object.
package board
