/*
	FP-tree, nodes are kept in one slice (arena) and refer to each other by index:
	parent and link are plain NodeIds, so the tree has no pointer cycles and
	both the upward walk and the same-item chain walk are O(1) per step.
	The root is always nodes[0] and carries NilItem.
*/

package fpgrowth

import (
	"fp-miner/share/base/logger"
)

// NodeId index of a node in the tree arena, root is 0
type NodeId int32

// NilNode no node
const NilNode = NodeId(-1)

const rootId = NodeId(0)

type Node struct {
	item     Item
	count    int
	parent   NodeId          // parent NilNode only for root
	children map[Item]NodeId // children one child per item
	link     NodeId          // link next node carrying the same item, NilNode at chain end
}

func (n *Node) Item() Item {
	return n.item
}

func (n *Node) Count() int {
	return n.count
}

func (n *Node) Parent() NodeId {
	return n.parent
}

// Tree an FP-tree together with the header table its chains are rooted in
type Tree struct {
	nodes  []Node
	header *HeaderTable
}

// NewTree root-only tree linked to header
func NewTree(header *HeaderTable) *Tree {
	t := &Tree{header: header}
	t.nodes = append(t.nodes, Node{item: NilItem, parent: NilNode, link: NilNode})
	return t
}

// BuildTree main pass: every transaction is filtered by header, sorted most frequent first and inserted with count 1
func BuildTree(transactions [][]Item, header *HeaderTable) *Tree {
	t := NewTree(header)
	for _, transaction := range transactions {
		path := header.orderPath(transaction)
		if len(path) > 0 {
			t.insert(path, 1)
		}
	}
	logger.Debugf("[BuildTree] transactions:%d, frequent items:%d, nodes:%d", len(transactions), header.Len(), t.NodeNum())
	return t
}

// BuildConditionalTree builds a tree from a conditional pattern base. Item totals are recomputed
// inside the base, items below minSupport are dropped, and a fresh header table is created.
// An empty base gives a root-only tree with an empty header table.
func BuildConditionalTree(base []PatternPath, minSupport int) (*Tree, *HeaderTable) {
	header := NewHeaderTable(countPatternBase(base, minSupport))
	t := NewTree(header)
	if header.Len() == 0 {
		return t, header
	}
	for _, pattern := range base {
		path := header.orderPath(pattern.Items)
		if len(path) > 0 {
			t.insert(path, pattern.Count)
		}
	}
	return t, header
}

func (t *Tree) Header() *HeaderTable {
	return t.header
}

// NodeNum number of nodes including root
func (t *Tree) NodeNum() int {
	return len(t.nodes)
}

func (t *Tree) Root() NodeId {
	return rootId
}

// Node node by id, nil for NilNode or ids outside the arena
func (t *Tree) Node(id NodeId) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Child child of parent carrying item, NilNode if none
func (t *Tree) Child(parent NodeId, item Item) NodeId {
	child, ok := t.nodes[parent].children[item]
	if !ok {
		return NilNode
	}
	return child
}

// Chain ids of every node carrying item, in insertion order
func (t *Tree) Chain(item Item) []NodeId {
	var chain []NodeId
	for cur := t.header.Head(item); cur != NilNode; cur = t.nodes[cur].link {
		chain = append(chain, cur)
	}
	return chain
}

// Insert inserts an already ordered path below root, adding count along it
func (t *Tree) Insert(path []Item, count int) {
	if len(path) == 0 {
		return
	}
	t.insert(path, count)
}

func (t *Tree) insert(path []Item, count int) {
	cur := rootId
	for _, item := range path {
		child, ok := t.nodes[cur].children[item]
		if ok {
			t.nodes[child].count += count
		} else {
			child = t.addNode(cur, item, count)
		}
		cur = child
	}
}

// addNode creates a child of parent and appends it to the end of the item's chain
func (t *Tree) addNode(parent NodeId, item Item, count int) NodeId {
	id := NodeId(len(t.nodes))
	t.nodes = append(t.nodes, Node{item: item, count: count, parent: parent, link: NilNode})
	if t.nodes[parent].children == nil {
		t.nodes[parent].children = make(map[Item]NodeId)
	}
	t.nodes[parent].children[item] = id

	entry, ok := t.header.entries[item]
	if !ok {
		// items outside the header are filtered before insertion, only direct Insert calls get here
		return id
	}
	if entry.head == NilNode {
		entry.head = id
	} else {
		t.nodes[entry.tail].link = id
	}
	entry.tail = id
	return id
}
