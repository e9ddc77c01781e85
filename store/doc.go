// Package store persists grid dimensions and obstacle cells in BadgerDB.
//
// Layout:
//
//	grid/meta               JSON {"rows":R,"cols":C}
//	grid/obstacle/<id BE64> empty value, present ⇔ cell is blocked
//
// One obstacle key per cell keeps an edit proportional to the cells touched.
// Every write runs in a single badger transaction, so a batch of obstacle
// edits is applied atomically.
package store
