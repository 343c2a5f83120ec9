package fpgrowth

import (
	"fmt"
	"os"

	"github.com/awalterschulze/gographviz"

	"fp-miner/share/base/logger"
)

// ToSimpleGraph writes the tree as a graphviz digraph to outPath. Parent edges are solid,
// same-item links dashed. names may be nil, then item handles are printed.
func (t *Tree) ToSimpleGraph(outPath string, names *Dictionary) error {
	graph := gographviz.NewGraph()
	if err := graph.SetName("G"); err != nil {
		return err
	}
	if err := graph.SetDir(true); err != nil {
		return err
	}

	label := func(item Item) string {
		if names == nil {
			return fmt.Sprintf("%d", item)
		}
		return names.Name(item)
	}
	for i := range t.nodes {
		node := t.nodes[i]
		var attrs map[string]string
		if NodeId(i) == rootId {
			attrs = map[string]string{"label": `"root"`}
		} else {
			attrs = map[string]string{"label": fmt.Sprintf("%q", fmt.Sprintf("%s:%d", label(node.item), node.count))}
		}
		if err := graph.AddNode("G", fmt.Sprintf("%d", i), attrs); err != nil {
			return err
		}
	}
	for i := range t.nodes {
		node := t.nodes[i]
		if node.parent != NilNode {
			if err := graph.AddEdge(fmt.Sprintf("%d", node.parent), fmt.Sprintf("%d", i), true, nil); err != nil {
				return err
			}
		}
		if node.link != NilNode {
			if err := graph.AddEdge(fmt.Sprintf("%d", i), fmt.Sprintf("%d", node.link), true, map[string]string{"style": "dashed"}); err != nil {
				return err
			}
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		logger.Errorf("error when open file:%s--%v", outPath, err)
		return err
	}
	defer out.Close()
	if _, err = out.WriteString(graph.String()); err != nil {
		logger.Errorf("error when write to file:%s--%v", outPath, err)
		return err
	}
	return nil
}
