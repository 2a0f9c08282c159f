// Package gridpath provides a generic breadth-first path search.
//
// It exposes three entry points:
//
//   - BFS: the plain form, taking a start node, an expansion function and a
//     goal predicate, returning the first path found.
//   - Search: run the algorithm to completion over a Graph and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive text
//     traces or debugging tools.
//
// Paths have the fewest possible steps. Edge costs play no part in the
// search; see the board package for the grid model that feeds it.
package gridpath
