// Package asteroidfield models the Asteroid Field sliding-block puzzle as a
// state-space search problem and solves it with three search strategies.
//
// It exposes three main entry points:
//
//   - DepthFirstSearch, BreadthFirstSearch, BestFirstSearch: run a search to
//     completion and get a Result.
//   - Stepper: iterate a search one expansion at a time to drive UIs or
//     debugging tools.
//   - RunAll: run several solvers concurrently over independent copies of the
//     same puzzle.
//
// States are immutable: every legal move produces a fresh State with its own
// grid copy, so searches never share mutable data and independent runs are
// safe to execute in parallel.
package asteroidfield
