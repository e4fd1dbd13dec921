// Package skyline analyzes a single-player tower-building puzzle played on a
// rectangular grid: every cell holds a tower of level 0..L-1, raising a tower
// to level v requires a neighbor at every level below v at the moment of
// construction, and demolition back to level 0 is always allowed.
//
// 🏙 What is skyline?
//
//	A small, deterministic library that decides whether a target grid can be
//	built at all — and proves its answer either way:
//		• city/     — immutable grid descriptor: dimensions, levels, score table, adjacency
//		• layout/   — mutable level grid: placement rules, scoring, partial order
//		• reach/    — the reachability engine: safe reductions, speculative
//		  promotions, move reconstruction, minimal-conflict diagnostics
//		• optimize/ — score optimizers on top of the engine, including a
//		  cutting-plane optimizer backed by a pseudo-Boolean solver
//
// ✨ Why choose skyline?
//
//   - Constructive answers – a feasible target comes with a replay-verified
//     move sequence, an infeasible one with a locally minimal conflict
//   - Deterministic – fixed traversal orders, no time-based randomness
//   - Pure Go core – the engine itself has no dependencies and no hidden state
//
// Quick ASCII example (levels shown per cell):
//
//	3 0
//	0 0
//
//	looks innocent but is unreachable: a corner tower has only two
//	neighbors, too few to ever have held levels 0, 1 and 2 at once.
//
// Dive into reach for the engine contract and optimize for the scoring side.
package skyline
