package fpgrowth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateRules(t *testing.T) {
	Convey("GenerateRules", t, func() {
		dict, transactions := scenario()
		a, _ := dict.Lookup("A")
		b, _ := dict.Lookup("B")
		c, _ := dict.Lookup("C")
		table, err := Mine(transactions, 2)
		So(err, ShouldBeNil)

		Convey("confidence 0.5 keeps all four rules", func() {
			rules, err := GenerateRules(table, 0.5, len(transactions))
			So(err, ShouldBeNil)
			So(len(rules), ShouldEqual, 4)
			SortRules(rules)

			So(rules[0].Antecedent, ShouldResemble, NewItemset(c))
			So(rules[0].Consequent, ShouldResemble, NewItemset(b))
			So(rules[0].Confidence, ShouldAlmostEqual, 1.0)
			So(rules[0].Lift, ShouldAlmostEqual, 4.0/3)

			So(rules[1].Antecedent, ShouldResemble, NewItemset(b))
			So(rules[1].Consequent, ShouldResemble, NewItemset(c))
			So(rules[1].Confidence, ShouldAlmostEqual, 2.0/3)
			So(rules[1].Lift, ShouldAlmostEqual, 4.0/3)

			So(rules[2].Antecedent, ShouldResemble, NewItemset(a))
			So(rules[2].Consequent, ShouldResemble, NewItemset(b))
			So(rules[2].Lift, ShouldAlmostEqual, 8.0/9)
			So(rules[3].Antecedent, ShouldResemble, NewItemset(b))
			So(rules[3].Consequent, ShouldResemble, NewItemset(a))
			for _, rule := range rules {
				So(rule.Support, ShouldEqual, 2)
			}
		})

		Convey("confidence 0.9 keeps only C => B", func() {
			rules, err := GenerateRules(table, 0.9, len(transactions))
			So(err, ShouldBeNil)
			So(len(rules), ShouldEqual, 1)
			So(rules[0].Antecedent, ShouldResemble, NewItemset(c))
			So(rules[0].Consequent, ShouldResemble, NewItemset(b))
		})

		Convey("confidence equal to a rule's value keeps it", func() {
			rules, err := GenerateRules(table, 1, len(transactions))
			So(err, ShouldBeNil)
			So(len(rules), ShouldEqual, 1)
		})

		Convey("every rule is a valid split of a frequent itemset", func() {
			transactions := randomTransactions(3, 250, 8)
			table, err := Mine(transactions, 10)
			So(err, ShouldBeNil)
			rules, err := GenerateRules(table, 0.3, len(transactions))
			So(err, ShouldBeNil)
			So(rules, ShouldNotBeEmpty)
			for _, rule := range rules {
				So(rule.Antecedent.Len(), ShouldBeGreaterThan, 0)
				So(rule.Consequent.Len(), ShouldBeGreaterThan, 0)
				for _, item := range rule.Consequent {
					So(rule.Antecedent.Contains(item), ShouldBeFalse)
				}
				union := rule.Antecedent
				for _, item := range rule.Consequent {
					union = union.With(item)
				}
				support, ok := table.Support(union)
				So(ok, ShouldBeTrue)
				So(rule.Support, ShouldEqual, support)
				antecedentSupport, _ := table.Support(rule.Antecedent)
				So(rule.Confidence, ShouldAlmostEqual, float64(support)/float64(antecedentSupport))
				So(rule.Confidence, ShouldBeGreaterThanOrEqualTo, 0.3)
				So(rule.Confidence, ShouldBeLessThanOrEqualTo, 1)
			}
		})

		Convey("invalid thresholds are rejected", func() {
			_, err := GenerateRules(table, 0, 4)
			So(err, ShouldEqual, ErrInvalidConfidence)
			_, err = GenerateRules(table, 1.5, 4)
			So(err, ShouldEqual, ErrInvalidConfidence)
			_, err = GenerateRules(table, 0.5, 0)
			So(err, ShouldEqual, ErrInvalidTransactionCount)
		})

		Convey("a table without the subsets reports the missing support", func() {
			broken := NewItemsetTable()
			So(broken.Add(NewItemset(a, b), 2), ShouldBeNil)
			So(broken.Add(NewItemset(a), 3), ShouldBeNil)
			_, err := GenerateRules(broken, 0.5, 4)
			var missing *MissingSupportError
			So(errors.As(err, &missing), ShouldBeTrue)
			So(missing.Subset, ShouldEqual, NewItemset(b).Key())
		})

		Convey("singletons only give no rules", func() {
			singles := NewItemsetTable()
			So(singles.Add(NewItemset(a), 3), ShouldBeNil)
			rules, err := GenerateRules(singles, 0.5, 4)
			So(err, ShouldBeNil)
			So(rules, ShouldBeEmpty)
		})
	})
}

func TestForEachSubset(t *testing.T) {
	Convey("forEachSubset enumerates combinations in order", t, func() {
		var subsets []Itemset
		forEachSubset(NewItemset(1, 2, 3, 4), 2, func(subset Itemset) bool {
			subsets = append(subsets, subset)
			return true
		})
		So(subsets, ShouldResemble, []Itemset{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})

		count := 0
		forEachSubset(NewItemset(1, 2, 3, 4), 2, func(subset Itemset) bool {
			count++
			return count < 3
		})
		So(count, ShouldEqual, 3)

		count = 0
		forEachSubset(NewItemset(1, 2), 3, func(subset Itemset) bool {
			count++
			return true
		})
		So(count, ShouldEqual, 0)
	})
}
