package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSet is a set of row ids backed by a 32-bit Roaring Bitmap.
// It wraps the official roaring implementation.
// Range scans collect their candidate rows into RowSets; conjunction of two
// predicates is bitmap intersection.
type RowSet struct {
	rb *roaring.Bitmap
}

// NewRowSet creates a new empty row set.
func NewRowSet() *RowSet {
	return &RowSet{
		rb: roaring.New(),
	}
}

// Add adds a row id to the set.
func (s *RowSet) Add(row uint32) {
	s.rb.Add(row)
}

// AddMany adds a batch of row ids to the set.
func (s *RowSet) AddMany(rows []uint32) {
	s.rb.AddMany(rows)
}

// Contains checks if a row id is in the set.
func (s *RowSet) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// IsEmpty returns true if the set is empty.
func (s *RowSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of row ids in the set.
func (s *RowSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{
		rb: s.rb.Clone(),
	}
}

// Iterator returns an iterator over the set in ascending row id order.
func (s *RowSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And computes the intersection of two sets.
func (s *RowSet) And(other *RowSet) {
	s.rb.And(other.rb)
}

// Or computes the union of two sets.
func (s *RowSet) Or(other *RowSet) {
	s.rb.Or(other.rb)
}

// GetSizeInBytes returns the size of the set in bytes.
func (s *RowSet) GetSizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}
