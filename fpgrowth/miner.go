package fpgrowth

import (
	"time"

	"fp-miner/share/base/logger"
)

// Mine runs the whole FP-Growth pass over transactions and returns every itemset
// whose support is at least minSupport, singletons included
func Mine(transactions [][]Item, minSupport int) (*ItemsetTable, error) {
	if minSupport < 0 {
		return nil, ErrInvalidSupport
	}
	startTime := time.Now()
	counts := CountItems(transactions, minSupport)
	header := NewHeaderTable(counts)
	tree := BuildTree(transactions, header)

	table := NewItemsetTable()
	if err := MineTree(tree, minSupport, nil, table); err != nil {
		return nil, err
	}
	logger.Infof("[Mine] transactions:%d, minSupport:%d, frequent items:%d, itemsets:%d, spent:%v",
		len(transactions), minSupport, header.Len(), table.Len(), time.Since(startTime))
	return table, nil
}

// MineTree mines every itemset reachable by extending prefix with items of tree's header table.
// Items go least frequent first; each one is emitted with its header support, then its
// conditional tree is built and mined with the extended prefix while it still has items.
func MineTree(tree *Tree, minSupport int, prefix Itemset, table *ItemsetTable) error {
	header := tree.Header()
	for _, item := range header.MiningOrder() {
		support, _ := header.Support(item)
		if err := mineItem(tree, item, support, minSupport, prefix, table); err != nil {
			return err
		}
	}
	return nil
}

func mineItem(tree *Tree, item Item, support int, minSupport int, prefix Itemset, table *ItemsetTable) error {
	itemset := prefix.With(item)
	if err := table.Add(itemset, support); err != nil {
		return err
	}
	base := tree.ConditionalPatternBase(item)
	condTree, condHeader := BuildConditionalTree(base, minSupport)
	if condHeader.Len() == 0 {
		return nil
	}
	return MineTree(condTree, minSupport, itemset, table)
}
