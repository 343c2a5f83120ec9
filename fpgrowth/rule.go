package fpgrowth

import (
	"sort"

	mapset "github.com/deckarep/golang-set"

	"fp-miner/share/base/logger"
)

// Rule antecedent => consequent, Support is the support count of their union
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Confidence float64
	Lift       float64
	Support    int
}

// GenerateRules derives every rule whose confidence reaches minConfidence from the itemsets of table.
// Each itemset of size >= 2 is split into every non-empty proper subset (antecedent) and the rest (consequent).
// Supports of both sides must be in table, a missing one is returned as *MissingSupportError.
func GenerateRules(table *ItemsetTable, minConfidence float64, totalTransactions int) ([]Rule, error) {
	if !(minConfidence > 0 && minConfidence <= 1) {
		return nil, ErrInvalidConfidence
	}
	if totalTransactions < 1 {
		return nil, ErrInvalidTransactionCount
	}
	total := float64(totalTransactions)
	var rules []Rule
	var genErr error
	table.Range(func(entry ItemsetEntry) bool {
		if entry.Itemset.Len() < 2 {
			return true
		}
		itemsetSet := toSet(entry.Itemset)
		for k := 1; k < entry.Itemset.Len(); k++ {
			forEachSubset(entry.Itemset, k, func(antecedent Itemset) bool {
				antecedentSupport, ok := table.Support(antecedent)
				if !ok {
					genErr = &MissingSupportError{Itemset: entry.Itemset.Key(), Subset: antecedent.Key(), Side: "antecedent"}
					return false
				}
				consequent := fromSet(itemsetSet.Difference(toSet(antecedent)))
				consequentSupport, ok := table.Support(consequent)
				if !ok {
					genErr = &MissingSupportError{Itemset: entry.Itemset.Key(), Subset: consequent.Key(), Side: "consequent"}
					return false
				}
				confidence := float64(entry.Support) / float64(antecedentSupport)
				if confidence < minConfidence {
					return true
				}
				rules = append(rules, Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Confidence: confidence,
					Lift:       confidence / (float64(consequentSupport) / total),
					Support:    entry.Support,
				})
				return true
			})
			if genErr != nil {
				return false
			}
		}
		return true
	})
	if genErr != nil {
		logger.Errorf("[GenerateRules] %v", genErr)
		return nil, genErr
	}
	logger.Infof("[GenerateRules] itemsets:%d, minConfidence:%v, rules:%d", table.Len(), minConfidence, len(rules))
	return rules, nil
}

// SortRules lift descending, then confidence, then support, then antecedent/consequent keys
func SortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.Lift != b.Lift {
			return a.Lift > b.Lift
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		if a.Antecedent.Key() != b.Antecedent.Key() {
			return a.Antecedent.Key() < b.Antecedent.Key()
		}
		return a.Consequent.Key() < b.Consequent.Key()
	})
}

// forEachSubset calls fn with every k-sized subset of s in lexicographic index order, stops when fn returns false
func forEachSubset(s Itemset, k int, fn func(subset Itemset) bool) {
	n := len(s)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		subset := make(Itemset, k)
		for i, j := range idx {
			subset[i] = s[j]
		}
		if !fn(subset) {
			return
		}
		// advance to the next combination
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func toSet(s Itemset) mapset.Set {
	set := mapset.NewSet()
	for _, item := range s {
		set.Add(item)
	}
	return set
}

func fromSet(set mapset.Set) Itemset {
	items := make([]Item, 0, set.Cardinality())
	for _, v := range set.ToSlice() {
		items = append(items, v.(Item))
	}
	return NewItemset(items...)
}
