// Package city defines the immutable grid descriptor shared by every layout
// and by the reachability engine: dimensions, level count, per-level score
// table, and orthogonal adjacency.
//
// What:
//
//   - City wraps rows × cols grid dimensions with a level count (1..MaxLevels)
//     and a score table mapping each level to its score.
//   - Neighbors enumerates the orthogonal neighbors of a cell, clipped to the
//     grid bounds (2 at corners, 3 at edges, 4 in the interior).
//   - InBounds + NeighborOffsets expose the raw adjacency machinery so hot
//     loops can walk neighborhoods without allocating.
//
// Why:
//
//   - A City is shared by reference between many layouts; keeping it immutable
//     makes layouts freely clonable without descriptor bookkeeping.
//
// Complexity:
//
//   - Neighbors:  O(1) time (at most four candidates), O(1) memory.
//   - InBounds:   O(1).
//
// Options:
//
//   - WithLevels(n): number of tower levels, default DefaultLevels.
//   - WithScores(scores...): per-level score table, default 1..levels.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1.
//   - ErrBadLevelCount: level count outside 1..MaxLevels.
//   - ErrBadScoreTable: score table length differs from the level count.
//   - ErrCellOutOfRange: queried cell lies outside the grid.
//   - ErrBadLevel: queried level outside 0..levels-1.
package city
