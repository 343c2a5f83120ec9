package fpgrowth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Itemset a set of items, kept sorted ascending and without duplicates
type Itemset []Item

// NewItemset builds an itemset from items in any order, duplicates are dropped
func NewItemset(items ...Item) Itemset {
	set := make(Itemset, len(items))
	copy(set, items)
	sort.Slice(set, func(i, j int) bool {
		return set[i] < set[j]
	})
	n := 0
	for i, item := range set {
		if i > 0 && item == set[n-1] {
			continue
		}
		set[n] = item
		n++
	}
	return set[:n]
}

// Key canonical form of the itemset, usable as a map key
func (s Itemset) Key() string {
	buf := make([]byte, 0, len(s)*4)
	for i, item := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(item), 10)
	}
	return string(buf)
}

func (s Itemset) Len() int {
	return len(s)
}

func (s Itemset) Contains(item Item) bool {
	i := sort.Search(len(s), func(i int) bool {
		return s[i] >= item
	})
	return i < len(s) && s[i] == item
}

// With returns a new itemset holding s and item, s is not modified
func (s Itemset) With(item Item) Itemset {
	if s.Contains(item) {
		return s.Clone()
	}
	set := make(Itemset, 0, len(s)+1)
	i := 0
	for i < len(s) && s[i] < item {
		set = append(set, s[i])
		i++
	}
	set = append(set, item)
	return append(set, s[i:]...)
}

func (s Itemset) Clone() Itemset {
	set := make(Itemset, len(s))
	copy(set, s)
	return set
}

func (s Itemset) String() string {
	parts := make([]string, 0, len(s))
	for _, item := range s {
		parts = append(parts, strconv.Itoa(int(item)))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ItemsetEntry one frozen support measurement
type ItemsetEntry struct {
	Itemset Itemset
	Support int
}

// ItemsetTable frequent itemset -> support count. Entries are never updated once added.
type ItemsetTable struct {
	entries map[string]ItemsetEntry
}

func NewItemsetTable() *ItemsetTable {
	return &ItemsetTable{entries: make(map[string]ItemsetEntry)}
}

// Add stores a new itemset, adding an itemset twice is an error
func (t *ItemsetTable) Add(itemset Itemset, support int) error {
	key := itemset.Key()
	if _, ok := t.entries[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateItemset, itemset)
	}
	t.entries[key] = ItemsetEntry{Itemset: itemset.Clone(), Support: support}
	return nil
}

// Support support count of itemset, false if it was never mined
func (t *ItemsetTable) Support(itemset Itemset) (int, bool) {
	entry, ok := t.entries[itemset.Key()]
	return entry.Support, ok
}

func (t *ItemsetTable) Len() int {
	return len(t.entries)
}

// Range calls fn for every entry in no particular order until fn returns false
func (t *ItemsetTable) Range(fn func(entry ItemsetEntry) bool) {
	for _, entry := range t.entries {
		if !fn(entry) {
			return
		}
	}
}

// Entries all entries, support descending, then smaller itemsets first, then by key
func (t *ItemsetTable) Entries() []ItemsetEntry {
	entries := make([]ItemsetEntry, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Support != entries[j].Support {
			return entries[i].Support > entries[j].Support
		}
		if len(entries[i].Itemset) != len(entries[j].Itemset) {
			return len(entries[i].Itemset) < len(entries[j].Itemset)
		}
		return entries[i].Itemset.Key() < entries[j].Itemset.Key()
	})
	return entries
}

// Merge adds every entry of other, tables mined under different prefixes are disjoint
func (t *ItemsetTable) Merge(other *ItemsetTable) error {
	for _, entry := range other.entries {
		if err := t.Add(entry.Itemset, entry.Support); err != nil {
			return err
		}
	}
	return nil
}

// Equal same itemsets with same supports
func (t *ItemsetTable) Equal(other *ItemsetTable) bool {
	if t.Len() != other.Len() {
		return false
	}
	for key, entry := range t.entries {
		otherEntry, ok := other.entries[key]
		if !ok || otherEntry.Support != entry.Support {
			return false
		}
	}
	return true
}
