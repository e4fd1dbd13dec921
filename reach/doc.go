// Package reach decides whether a target layout can be built from the empty
// grid by legal single-cell moves, and proves its answer: a feasible target
// yields a replay-verified move sequence, an infeasible one a locally minimal
// conflict sub-layout.
//
// What:
//
//   - Engine.MovesFor(target): a forward move sequence reproducing target
//     from the all-zero layout, or an *InfeasibleError carrying the conflict.
//   - Engine.FindConflict(candidate): the non-raising oracle form; an
//     all-zero result means "no obstruction found by this pass", which is not
//     a feasibility proof.
//   - Engine.Reduce(work): the exported non-recursive fixpoint sweep, useful
//     for validating conflict minimality and for external cut generation.
//
// How:
//
//   - Safe reduction shows a nonzero cell could have been the last move: the
//     cell needs a level-0 neighbor plus, for every level below its own, a
//     neighbor already there — or one manufactured by promoting an unused
//     level-0 neighbor. Promotions to level 1 are always reversible;
//     promotions to level 2 only when the promoted cell keeps another 0/1
//     neighbor besides the reduced cell; promotions above level 2 are never
//     manufactured. One level-0 neighbor always stays reserved.
//   - A row-major fixpoint sweep applies safe reductions until nothing moves.
//   - Cells the sweep cannot clear are handled by a recursive speculative
//     search: each useful level-2 promotion is tried on its own deep copy of
//     the working layout, and residuals are ranked under the layout partial
//     order, keeping the smallest conflict seen.
//
// The promotion-safety case split is hand-derived for levels 0..3 and is
// deliberately incomplete for sparse neighborhoods of top-level towers; the
// speculative search closes the known gap (the 3×3 ring of level-3 towers)
// but no completeness proof exists beyond four levels, so the engine does not
// accept more.
//
// Concurrency: none. The engine is purely synchronous and mutates exactly one
// working layout per call frame, deep-copying before every speculative
// branch. Worst-case cost is exponential in the number of useful promotions.
//
// Errors:
//
//   - ErrNilCity / ErrNilLayout / ErrGridMismatch: programmer errors.
//   - ErrInfeasible: target unreachable; errors.As to *InfeasibleError for
//     the conflict layout.
//   - ErrInternal: a replay mismatch or a proven-safe reduction that failed;
//     must never occur.
package reach
