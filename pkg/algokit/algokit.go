// Package algokit is the container-accepting algorithm layer.
//
// Every function takes a slice. A slice already is a pair of positions over its backing array,
// so a cursor.Range is passed in through Range.Slice, and any cursor.Sequenceable through cursor.Values.
//
// Functions constrained on cmp.Ordered use the natural order of the element type.
// Their Func variants take a three-way comparator that follows the cmp.Compare convention.
// Functions that only need equality take an eq function instead.
//
// Queries that have no answer return an ordinary value: -1 for a missing index, false for a failed test.
// None of the functions panic on empty input.
package algokit

func equal[E comparable](a, b E) bool {
	return a == b
}
