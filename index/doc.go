// Package index provides the per-column ordered index used by the indexed
// row-major table layout.
//
// An Ordered index maps every distinct int32 value of a column to its
// postings, the ids of the rows carrying that value in insertion order. The
// query kernels only ever need open half ranges over the keys:
//
//	ix.Tail(t)  // keys strictly greater than t, ascending
//	ix.Head(t)  // keys strictly less than t, ascending
//
// Distinct keys are kept as a sorted slice resolved by binary search; the
// slice is rebuilt lazily after mutations introduce new keys.
//
// # Row Sets
//
// Range scans that feed a conjunction collect their rows into RowSets backed
// by Roaring Bitmaps, so that combining two predicates is a bitmap
// intersection:
//
//	ge := index.NewRowSet()
//	for _, rows := range ix1.Tail(t1) {
//	    ge.AddMany(rows)
//	}
//	lt := index.NewRowSet()
//	for _, rows := range ix2.Head(t2) {
//	    lt.AddMany(rows)
//	}
//	ge.And(lt)
package index
