// Package tidset counts exact itemset supports by intersecting transaction id sets.
// It is slow but obviously correct, and is used to check mined tables.
package tidset

import (
	"fmt"
	"sort"

	"github.com/yourbasic/bit"
	"golang.org/x/exp/slices"

	"fp-miner/fpgrowth"
)

// Index item -> ids of the transactions containing it
type Index struct {
	item2Tids map[fpgrowth.Item]*bit.Set
	size      int // size transaction count
}

func NewIndex(transactions [][]fpgrowth.Item) *Index {
	idx := &Index{item2Tids: make(map[fpgrowth.Item]*bit.Set), size: len(transactions)}
	for tid, transaction := range transactions {
		for _, item := range transaction {
			if tids, ok := idx.item2Tids[item]; ok {
				idx.item2Tids[item] = tids.Add(tid)
			} else {
				idx.item2Tids[item] = bit.New(tid)
			}
		}
	}
	return idx
}

func (idx *Index) Size() int {
	return idx.size
}

// Tids transactions containing every item of itemset, nil itemset means all transactions
func (idx *Index) Tids(itemset fpgrowth.Itemset) *bit.Set {
	if len(itemset) == 0 {
		all := bit.New()
		if idx.size > 0 {
			all.AddRange(0, idx.size)
		}
		return all
	}
	first, ok := idx.item2Tids[itemset[0]]
	if !ok {
		return bit.New()
	}
	tids := new(bit.Set).Set(first)
	for _, item := range itemset[1:] {
		other, ok := idx.item2Tids[item]
		if !ok {
			return bit.New()
		}
		tids = tids.And(other)
	}
	return tids
}

// Support number of transactions containing itemset
func (idx *Index) Support(itemset fpgrowth.Itemset) int {
	return idx.Tids(itemset).Size()
}

// Frequent every itemset with support >= minSupport, found by depth-first tid-set intersection
func (idx *Index) Frequent(minSupport int) map[string]fpgrowth.ItemsetEntry {
	result := make(map[string]fpgrowth.ItemsetEntry)
	items := make([]fpgrowth.Item, 0, len(idx.item2Tids))
	for item, tids := range idx.item2Tids {
		if tids.Size() >= minSupport {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	var extend func(prefix fpgrowth.Itemset, prefixTids *bit.Set, candidates []fpgrowth.Item)
	extend = func(prefix fpgrowth.Itemset, prefixTids *bit.Set, candidates []fpgrowth.Item) {
		for i, item := range candidates {
			var tids *bit.Set
			if prefixTids == nil {
				tids = idx.item2Tids[item]
			} else {
				tids = prefixTids.And(idx.item2Tids[item])
			}
			support := tids.Size()
			if support < minSupport || support == 0 {
				continue
			}
			itemset := prefix.With(item)
			result[itemset.Key()] = fpgrowth.ItemsetEntry{Itemset: itemset, Support: support}
			extend(itemset, tids, candidates[i+1:])
		}
	}
	extend(nil, nil, items)
	return result
}

// Mismatch one disagreement between a mined table and the exact count
type Mismatch struct {
	Itemset  fpgrowth.Itemset
	Mined    int // Mined support reported by the table, -1 if absent
	Expected int // Expected exact support, -1 if the itemset should not be frequent
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s mined:%d expected:%d", m.Itemset, m.Mined, m.Expected)
}

// Verify checks soundness (every mined itemset has its exact support and reaches minSupport)
// and completeness (every frequent itemset was mined)
func (idx *Index) Verify(table *fpgrowth.ItemsetTable, minSupport int) []Mismatch {
	var mismatches []Mismatch
	expected := idx.Frequent(minSupport)
	table.Range(func(entry fpgrowth.ItemsetEntry) bool {
		exp, ok := expected[entry.Itemset.Key()]
		if !ok {
			mismatches = append(mismatches, Mismatch{Itemset: entry.Itemset, Mined: entry.Support, Expected: -1})
		} else if exp.Support != entry.Support {
			mismatches = append(mismatches, Mismatch{Itemset: entry.Itemset, Mined: entry.Support, Expected: exp.Support})
		}
		return true
	})
	for _, exp := range expected {
		if _, ok := table.Support(exp.Itemset); !ok {
			mismatches = append(mismatches, Mismatch{Itemset: exp.Itemset, Mined: -1, Expected: exp.Support})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Itemset.Key() < mismatches[j].Itemset.Key()
	})
	return mismatches
}
