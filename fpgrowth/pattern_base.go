package fpgrowth

// PatternPath one prefix path of a conditional pattern base with the count of the node it ends above
type PatternPath struct {
	Items []Item // Items prefix path, nearest ancestor first, root excluded
	Count int
}

// ConditionalPatternBase walks the chain of item and collects, for every node on it,
// the path up to (not including) the root together with the node's count.
// Nodes hanging directly below the root contribute nothing.
func (t *Tree) ConditionalPatternBase(item Item) []PatternPath {
	var base []PatternPath
	for cur := t.header.Head(item); cur != NilNode; cur = t.nodes[cur].link {
		path := t.ascend(cur)
		if len(path) > 0 {
			base = append(base, PatternPath{Items: path, Count: t.nodes[cur].count})
		}
	}
	return base
}

// ascend items of the ancestors of id, nearest first, root excluded
func (t *Tree) ascend(id NodeId) []Item {
	var path []Item
	for parent := t.nodes[id].parent; parent != NilNode && parent != rootId; parent = t.nodes[parent].parent {
		path = append(path, t.nodes[parent].item)
	}
	return path
}
