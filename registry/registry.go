// Package registry holds the deduplicated, insertion-ordered set of
// rules loaded from one or more rule files, and tolerates removal of
// entries (e.g. a rule that fails at runtime) while iteration is in
// progress.
package registry

import (
	"container/list"

	"github.com/llamasoft/HashcatRulesEngine/rule"
)

// Entry is one accepted rule together with where it came from.
type Entry struct {
	Rule       rule.Rule
	SourceFile string
	SourceLine int
	SourceText string
}

// Registry is an ordered set of Entry, keyed on the entry's canonical
// rule bytes compared in full (no truncation).
type Registry struct {
	order *list.List
	index map[string]*list.Element
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// Insert adds e if its rule bytes are not already present. It reports
// whether the entry was newly inserted; false means a duplicate and
// the pre-existing Entry is returned for diagnostics.
func (reg *Registry) Insert(e Entry) (existing Entry, inserted bool) {
	key := e.Rule.String()
	if el, ok := reg.index[key]; ok {
		return el.Value.(Entry), false
	}
	el := reg.order.PushBack(e)
	reg.index[key] = el
	return e, true
}

// Remove deletes the entry matching r, if present.
func (reg *Registry) Remove(r rule.Rule) {
	key := r.String()
	el, ok := reg.index[key]
	if !ok {
		return
	}
	reg.order.Remove(el)
	delete(reg.index, key)
}

// Size returns the number of entries currently held.
func (reg *Registry) Size() int {
	return reg.order.Len()
}

// Each calls fn for every entry in insertion order. fn may call
// Remove on the current or any other entry without disrupting the
// traversal: Each works from a snapshot of the entries taken before
// the first call, and skips an entry that was removed before its turn.
// Entries inserted during the traversal are not visited.
func (reg *Registry) Each(fn func(Entry)) {
	pending := make([]*list.Element, 0, reg.order.Len())
	for el := reg.order.Front(); el != nil; el = el.Next() {
		pending = append(pending, el)
	}
	for _, el := range pending {
		e := el.Value.(Entry)
		if reg.index[e.Rule.String()] != el {
			continue
		}
		fn(e)
	}
}
