package fpgrowth

import "sort"

// headerEntry support of an item and the two ends of its same-item chain
type headerEntry struct {
	support int
	head    NodeId // head first node of the chain, NilNode if no node carries the item yet
	tail    NodeId // tail last node of the chain, appends go here
}

// HeaderTable item -> (support, chain). One per tree, only frequent items of that tree's scope.
type HeaderTable struct {
	entries map[Item]*headerEntry
}

// NewHeaderTable header table pre-populated with counts, chains are empty until a tree is built
func NewHeaderTable(counts map[Item]int) *HeaderTable {
	h := &HeaderTable{}
	h.reset(counts)
	return h
}

// reset replaces all entries with counts
func (h *HeaderTable) reset(counts map[Item]int) {
	(*h).entries = make(map[Item]*headerEntry, len(counts))
	for item, count := range counts {
		(*h).entries[item] = &headerEntry{support: count, head: NilNode, tail: NilNode}
	}
}

func (h *HeaderTable) Len() int {
	return len(h.entries)
}

func (h *HeaderTable) Contains(item Item) bool {
	_, ok := h.entries[item]
	return ok
}

func (h *HeaderTable) Support(item Item) (int, bool) {
	entry, ok := h.entries[item]
	if !ok {
		return 0, false
	}
	return entry.support, true
}

// Head first node carrying item, NilNode if none
func (h *HeaderTable) Head(item Item) NodeId {
	entry, ok := h.entries[item]
	if !ok {
		return NilNode
	}
	return entry.head
}

// before tree order: higher support first, ties by lower handle
func (h *HeaderTable) before(a, b Item) bool {
	sa, sb := h.entries[a].support, h.entries[b].support
	if sa != sb {
		return sa > sb
	}
	return a < b
}

// Items header items in tree order (most frequent first)
func (h *HeaderTable) Items() []Item {
	items := make([]Item, 0, len(h.entries))
	for item := range h.entries {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return h.before(items[i], items[j])
	})
	return items
}

// MiningOrder header items least frequent first, the exact reverse of Items
func (h *HeaderTable) MiningOrder() []Item {
	items := h.Items()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// orderPath drops items not in the table and duplicates, then sorts in tree order.
// Ascent order of conditional paths carries no meaning, every path goes through here before insertion.
func (h *HeaderTable) orderPath(items []Item) []Item {
	path := make([]Item, 0, len(items))
	for _, item := range items {
		if h.Contains(item) {
			path = append(path, item)
		}
	}
	sort.Slice(path, func(i, j int) bool {
		return h.before(path[i], path[j])
	})
	n := 0
	for i, item := range path {
		if i > 0 && item == path[n-1] {
			continue
		}
		path[n] = item
		n++
	}
	return path[:n]
}
