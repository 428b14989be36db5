// Package aggregates owns the transaction boundaries of catalog writes.
//
// A write stores the entity row through its repo and then syncs every join
// table it was given inside the same transaction; a failure anywhere rolls the
// whole write back and surfaces one coded error (see MapError).
package aggregates
