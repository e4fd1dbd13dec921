// Package layout implements the mutable level grid the engine operates on:
// an R×C array of tower levels bound to a city.City descriptor.
//
// What:
//
//   - Layout starts all-zero and is mutated one cell at a time via Place,
//     optionally verifying the construction rule: level 0 is always legal,
//     level v > 0 is legal iff every level in [0, v) is present among the
//     cell's current neighbors.
//   - Score sums the descriptor's score table over all cells.
//   - Compare implements the partial order used to rank candidate conflicts:
//     A is Less than B iff A ≠ B and no cell of A exceeds the corresponding
//     cell of B. Many pairs are Incomparable; the result is an explicit
//     four-way Ordering, never a boolean.
//   - Clone produces an independent deep copy; the engine clones before every
//     speculative branch so sibling branches never share mutable state.
//
// Why:
//
//   - A layout carries no invariant about how its levels arose; legality is a
//     property of move sequences, which the reach package reconstructs.
//
// Complexity:
//
//   - Place / Level / At / Set:   O(1) (Place with verify is O(L)).
//   - Score / AllZero / Clone:    O(R×C).
//   - Compare:                    O(R×C).
//
// Errors:
//
//   - ErrNilCity: constructing against a nil descriptor.
//   - ErrShapeMismatch: FromLevels input does not match the grid dimensions.
//   - ErrIllegalPlacement: a verified Place violates the construction rule.
//   - ErrGridMismatch: comparing layouts bound to different descriptors.
//   - city.ErrCellOutOfRange / city.ErrBadLevel: out-of-range coordinates or
//     levels, wrapped with position details.
package layout
