// Package optimize searches for high-scoring layouts that the reachability
// engine can actually build, pairing a candidate generator with conflict cuts.
//
// What:
//
//   - Trivial — the all-zero baseline: always buildable, never optimal.
//   - Lazy — a lazy-cut optimizer on top of a pseudo-Boolean solver: it asks
//     the solver for the best layout satisfying a set of necessary
//     conditions, consults the engine oracle, and on infeasibility adds a
//     no-good cut forbidding the discovered conflict before trying again.
//   - Plan — runs any Optimizer and turns its layout into a verified Result
//     carrying the score and the full move sequence.
//
// Why does Lazy converge? Every cut removes at least the current candidate
// (and every layout containing the same conflict), the candidate space is
// finite, and the all-zero layout always survives, so the loop either proves
// an optimum or runs into its round/time budget.
//
// Options (Settings keys for NewLazy):
//
//   - "time_limit" — overall budget as a time.Duration or a number of
//     seconds; 0 means no limit (default).
//   - "max_rounds" — cut rounds before giving up; 0 means unlimited
//     (default).
//   - "verbose" — echo the underlying solver's progress log.
//
// Unrecognized keys are not an error; they are reported via Lazy.Warnings.
//
// Errors:
//
//   - ErrNilEngine / ErrNilOptimizer / ErrNilCity: programmer errors.
//   - ErrBadSetting: a recognized settings key holds a value of the wrong
//     type.
//   - ErrNoSolution: the solver proved the constraint set empty or was
//     interrupted before finding any model.
//   - ErrInternal: the solver returned a model violating its own
//     constraints; must never occur.
package optimize
