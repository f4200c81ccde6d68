// Package pointset implements a compressed set of 32-bit point IDs with
// union, membership, cardinality, and a portable, version-tagged
// serialization. It wraps github.com/RoaringBitmap/roaring so the rest of
// the module never imports roaring directly.
package pointset

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// WireVersion is the version tag written by Serialize and checked by
// Deserialize. Bumping it is a breaking wire change.
const WireVersion uint8 = 1

// PointSet is a compressed set of 32-bit point IDs.
type PointSet struct {
	bitmap *roaring.Bitmap
}

// New returns an empty PointSet.
func New() *PointSet {
	return &PointSet{bitmap: roaring.New()}
}

// FromIDs builds a PointSet from a slice of point IDs.
func FromIDs(ids ...uint32) *PointSet {
	p := New()
	p.bitmap.AddMany(ids)
	return p
}

// Len returns the set's cardinality.
func (p *PointSet) Len() uint64 {
	if p == nil || p.bitmap == nil {
		return 0
	}
	return p.bitmap.GetCardinality()
}

// Contains reports whether id is a member of the set.
func (p *PointSet) Contains(id uint32) bool {
	if p == nil || p.bitmap == nil {
		return false
	}
	return p.bitmap.Contains(id)
}

// Add inserts id into the set.
func (p *PointSet) Add(id uint32) {
	p.bitmap.Add(id)
}

// UnionInPlace merges other into p: p <- p ∪ other. Idempotent and
// commutative, matching the spec's union_in_place contract.
func (p *PointSet) UnionInPlace(other *PointSet) {
	if other == nil || other.bitmap == nil {
		return
	}
	p.bitmap.Or(other.bitmap)
}

// Clone returns an independent, reference-free copy of p, suitable for
// snapshotting under a read lock that will be released before the copy is
// used further.
func (p *PointSet) Clone() *PointSet {
	return &PointSet{bitmap: p.bitmap.Clone()}
}

// ParseError indicates malformed, truncated, or oversized serialized input.
// It is never a panic/abort condition.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pointset: parse error: %s", e.Reason)
}

// Serialize writes a version-tagged byte sequence. Layout: one version byte,
// followed by the roaring portable serialization; there is no separate
// byte-length prefix. Any conforming Deserialize reproduces the original set
// bit-for-bit.
func (p *PointSet) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(WireVersion)
	if _, err := p.bitmap.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("pointset: serialize: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize is the inverse of Serialize. It rejects truncated, oversized,
// or malformed input with a *ParseError and never panics on attacker-
// controlled input.
func Deserialize(data []byte) (*PointSet, error) {
	if len(data) < 1 {
		return nil, &ParseError{Reason: "empty input"}
	}
	version := data[0]
	if version != WireVersion {
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported wire version %d", version)}
	}
	bm := roaring.New()
	rd := bytes.NewReader(data[1:])
	if _, err := bm.ReadFrom(rd); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	if rd.Len() != 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("%d trailing bytes after bitmap", rd.Len())}
	}
	return &PointSet{bitmap: bm}, nil
}

// ToSlice returns the set's members in ascending order. Intended for tests
// and small sets; callers scanning the whole universe should use Contains.
func (p *PointSet) ToSlice() []uint32 {
	if p == nil || p.bitmap == nil {
		return nil
	}
	return p.bitmap.ToArray()
}

// MaxID returns the largest member of the set, and false if the set is
// empty.
func (p *PointSet) MaxID() (uint32, bool) {
	if p.Len() == 0 {
		return 0, false
	}
	return p.bitmap.Maximum(), true
}
