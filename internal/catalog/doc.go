// Package catalog implements the problem-listing engine.
//
// The engine operates on a fully materialized snapshot of the problem
// catalog: an upstream fetcher supplies []Problem, and this package only
// filters and reorders it. No I/O, no persistence, no concurrency.
//
// Three small pieces compose into the listing pipeline:
//
// Query mini-language:
// A query string is a sequence of single-character filter tokens, one
// clause per character. Lowercase selects an axis, uppercase negates it:
//
//	e/E  easy / not easy        l/L  locked / unlocked
//	m/M  medium / not medium    d/D  done / not done
//	h/H  hard / not hard        s/S  starred / unstarred
//
// Clauses combine by conjunction. Unrecognized characters are skipped,
// never rejected: a typo degrades to fewer filters rather than aborting
// the whole list command. ParseQueryStrict is the opt-in exception.
//
// Order mini-language:
// An order string is a sequence of sort-key tokens with left-to-right
// priority (i/I id, t/T title slug, d/D difficulty; uppercase descends).
// The same skip-unrecognized policy applies.
//
// Sorter:
// Sort composes the per-key comparators with first-non-equal-wins
// precedence and keeps the sort stable, so records indistinguishable
// under every active key retain their input order.
//
// CRITICAL PATTERNS:
//
// Determinism: same snapshot + same query + same order + same keyword
// always produce the same output sequence. Filtering never reorders.
//
// Per-key direction: a descending key negates that key's comparison
// only. Reversing the final sequence after an ascending multi-key sort
// is NOT equivalent once two or more keys with mixed directions are
// active.
package catalog
