// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validation implements the reactive form validation engine.
//
// Core concepts:
//   - Check: one validation rule bound to named observable dependencies. It
//     runs its methods, decorates its targets with one decoration per
//     message and publishes its result only when the result changed.
//   - Validator: aggregates many checks into one result, in the order the
//     checks were added, and derives whether errors or warnings are present.
//   - Mode: when a check runs by itself. Explicit checks run only on
//     Recheck; Immediate checks recheck on every dependency change;
//     ImmediateClearing checks clear themselves on every dependency change.
//
// Usage patterns:
//  1. Create a Validator with Settings (decoration factory, event loop,
//     logger).
//  2. Build checks with CreateCheck and the builder methods DependsOn,
//     WithMethod, Decorates, DecoratingWith and finally a mode.
//  3. Bind the validator's result, ContainsErrors or Summary to the UI, or
//     call Validate on submit.
//
// Everything runs on the goroutine that drives the UI event loop; nothing in
// this package is safe for concurrent use.
//
// Reentrancy: a check method that changes a dependency of its own Immediate
// check triggers a nested evaluation request. Such requests are not run
// inline: the last one is queued and runs after the current evaluation
// finished. A chain longer than maxPasses evaluations is aborted with
// ErrReentrancyLimit.
package validation
