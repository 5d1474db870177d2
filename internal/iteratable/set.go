/*
Package iteratable implements a destructive, content-addressed set, adapted
from gorgo's lr/iteratable package. It is used wherever the core algorithms
need worklist-style fixed-point iteration over a growing set — most notably
LR(1) item-set closure (package lr1), where newly discovered items must be
visited within the very iteration that discovered them.

Add and Union modify the receiver in place, and the iterator walks the set
while it grows; Difference and Copy leave the receiver unchanged and return
a fresh Set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package iteratable

import (
	"sort"

	"github.com/cnf/structhash"
)

// Set is a set of arbitrary comparable (structhash-able) items. Content
// equality is decided by a structural hash of each item, not by Go's `==`,
// so Set works for struct-valued items such as LR(1) items.
//
// A one-time O(n log n) pass over an unchanged Set computes a cached
// signature; Equals between two unchanged sets is then an O(1) string
// compare (spec §9's recommended optimization over repeated
// convert-to-ordered-set comparisons).
type Set struct {
	items []interface{}
	seen  map[string]int // signature -> index into items
	sig   string
	dirty bool
	pos   int
	cur   interface{}
}

// New creates a Set, optionally seeded with items.
func New(items ...interface{}) *Set {
	s := &Set{seen: make(map[string]int), pos: -1, dirty: true}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

func signature(item interface{}) string {
	h, err := structhash.Hash(item, 1)
	if err != nil {
		panic(err) // structhash only fails on unhashable/unexported-only types
	}
	return h
}

// Add inserts item if not already present (by content). Reports whether it
// was newly added.
func (s *Set) Add(item interface{}) bool {
	k := signature(item)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = len(s.items)
	s.items = append(s.items, item)
	s.dirty = true
	return true
}

// Contains reports whether item is a member, by content.
func (s *Set) Contains(item interface{}) bool {
	_, ok := s.seen[signature(item)]
	return ok
}

// Size returns the number of members.
func (s *Set) Size() int {
	return len(s.items)
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return len(s.items) == 0
}

// Values returns the members in insertion order. The returned slice is a
// copy; mutating it does not affect s.
func (s *Set) Values() []interface{} {
	return append([]interface{}(nil), s.items...)
}

// Copy returns an independent copy of s.
func (s *Set) Copy() *Set {
	cp := &Set{
		items: append([]interface{}(nil), s.items...),
		seen:  make(map[string]int, len(s.seen)),
		pos:   -1,
		dirty: true,
	}
	for k, v := range s.seen {
		cp.seen[k] = v
	}
	return cp
}

// Union adds every member of other not already present in s, and returns
// the members that were newly added, as a fresh Set. This mirrors the
// teacher's `if New := R.Difference(C); !New.Empty() { C.Union(New) }`
// closure idiom.
func (s *Set) Union(other *Set) *Set {
	added := New()
	for _, it := range other.items {
		if s.Add(it) {
			added.Add(it)
		}
	}
	return added
}

// Difference returns the members of s that are not members of other.
func (s *Set) Difference(other *Set) *Set {
	d := New()
	for _, it := range s.items {
		if !other.Contains(it) {
			d.Add(it)
		}
	}
	return d
}

// IterateOnce resets the destructive iterator to the start of the set.
// Calling Add/Union on s while iterating is legal and intended: Next() will
// go on to visit items appended after iteration began.
func (s *Set) IterateOnce() {
	s.pos = -1
}

// Next advances the destructive iterator. It returns false once the cursor
// has caught up with the (possibly still-growing) end of the set.
func (s *Set) Next() bool {
	s.pos++
	if s.pos >= len(s.items) {
		return false
	}
	s.cur = s.items[s.pos]
	return true
}

// Item returns the element the destructive iterator currently points at.
func (s *Set) Item() interface{} {
	return s.cur
}

// signatureOf recomputes (if dirty) and returns the cached set signature:
// a hash of the sorted per-item signatures.
func (s *Set) signatureOf() string {
	if !s.dirty && s.sig != "" {
		return s.sig
	}
	keys := make([]string, 0, len(s.seen))
	for k := range s.seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(err)
	}
	s.sig = h
	s.dirty = false
	return s.sig
}

// Equals reports content-based equality: s and other contain the same
// items, regardless of insertion order.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	return s.signatureOf() == other.signatureOf()
}
