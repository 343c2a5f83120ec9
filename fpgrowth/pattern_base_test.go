package fpgrowth

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func randomTransactions(seed int64, n int, itemNum int) [][]Item {
	r := rand.New(rand.NewSource(seed))
	transactions := make([][]Item, 0, n)
	for i := 0; i < n; i++ {
		var transaction []Item
		for item := 0; item < itemNum; item++ {
			// lower handles are more frequent
			if r.Float64() < 0.7/float64(item+1)+0.05 {
				transaction = append(transaction, Item(item))
			}
		}
		r.Shuffle(len(transaction), func(i, j int) {
			transaction[i], transaction[j] = transaction[j], transaction[i]
		})
		transactions = append(transactions, transaction)
	}
	return transactions
}

func contains(transaction []Item, items ...Item) bool {
	for _, item := range items {
		found := false
		for _, t := range transaction {
			if t == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestConditionalPatternBase(t *testing.T) {
	Convey("ConditionalPatternBase", t, func() {
		Convey("scenario bases", func() {
			dict, transactions := scenario()
			a, _ := dict.Lookup("A")
			b, _ := dict.Lookup("B")
			c, _ := dict.Lookup("C")
			tree := BuildTree(transactions, NewHeaderTable(CountItems(transactions, 2)))

			So(tree.ConditionalPatternBase(c), ShouldResemble, []PatternPath{
				{Items: []Item{b, a}, Count: 1},
				{Items: []Item{b}, Count: 1},
			})
			// the B node under root has an empty path and is skipped
			So(tree.ConditionalPatternBase(b), ShouldResemble, []PatternPath{
				{Items: []Item{a}, Count: 2},
			})
			So(tree.ConditionalPatternBase(a), ShouldBeEmpty)
		})

		Convey("bases reproduce co-occurrence counts of the raw transactions", func() {
			transactions := randomTransactions(7, 300, 10)
			minSupport := 15
			header := NewHeaderTable(CountItems(transactions, minSupport))
			tree := BuildTree(transactions, header)
			items := header.Items()
			for rank, x := range items {
				base := tree.ConditionalPatternBase(x)
				baseTotal := 0
				pairs := make(map[Item]int)
				for _, path := range base {
					So(path.Count, ShouldBeGreaterThan, 0)
					So(path.Items, ShouldNotBeEmpty)
					baseTotal += path.Count
					for _, y := range path.Items {
						pairs[y] += path.Count
					}
				}
				rootCount := 0
				if child := tree.Child(tree.Root(), x); child != NilNode {
					rootCount = tree.Node(child).Count()
				}
				support, _ := header.Support(x)
				So(baseTotal+rootCount, ShouldEqual, support)

				// every item ranked before x appears in the base with count support({x,y})
				for _, y := range items[:rank] {
					expected := 0
					for _, transaction := range transactions {
						if contains(transaction, x, y) {
							expected++
						}
					}
					So(pairs[y], ShouldEqual, expected)
				}
				for _, y := range items[rank:] {
					So(pairs[y], ShouldEqual, 0)
				}
			}
		})
	})
}
