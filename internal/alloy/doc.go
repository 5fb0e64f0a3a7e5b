// Package alloy reads the textual instance dump produced by the Alloy
// analyzer's Txt tab into an in-memory relational model.
//
// The model has three layers:
//
//   - [Atom]: an integer, a plain identifier, or a tagged atom such as Block$2
//   - [Relation]: a curried n-ary relation, either a [Set] (the leaf level) or a
//     [Map] from atom to a relation of arity one less
//   - [Instance]: every relation of one dump, indexed by qualified name
//
// # Example
//
//	inst, _ := alloy.ReadFile("solution.txt")
//	pos, _ := inst.Map("this/State<:pos")
//	for _, s := range pos.Keys() {
//		...
//	}
//
// Instances are built once and never mutated, so they may be shared freely.
package alloy
