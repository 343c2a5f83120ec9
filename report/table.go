package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fp-miner/fpgrowth"
)

// FormatItemset item names of an itemset, "[a, b]"
func FormatItemset(itemset fpgrowth.Itemset, dict *fpgrowth.Dictionary) string {
	return "[" + strings.Join(dict.Names(itemset), ", ") + "]"
}

// PrintRules renders the first topK rules (all when topK <= 0) in the given order to w
func PrintRules(w io.Writer, rules []fpgrowth.Rule, dict *fpgrowth.Dictionary, topK int) string {
	t := table.NewWriter()
	if w != nil {
		t.SetOutputMirror(w)
	}
	t.SetTitle("ASSOCIATION RULES")
	t.AppendHeader(table.Row{"#", "Antecedent", "Consequent", "Confidence", "Lift", "Support"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Antecedent", WidthMax: 38},
		{Name: "Consequent", WidthMax: 38},
		{Name: "Confidence", Align: text.AlignRight},
		{Name: "Lift", Align: text.AlignRight},
		{Name: "Support", Align: text.AlignRight},
	})
	for i, rule := range limit(len(rules), topK, rules) {
		t.AppendRow(table.Row{
			i + 1,
			FormatItemset(rule.Antecedent, dict),
			FormatItemset(rule.Consequent, dict),
			fmt.Sprintf("%.2f%%", rule.Confidence*100),
			fmt.Sprintf("%.2f", rule.Lift),
			rule.Support,
		})
	}
	if len(rules) == 0 {
		t.AppendFooter(table.Row{"", "no rules"})
	} else {
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d rules", len(rules))})
	}
	return t.Render()
}

// PrintItemsets renders the topK most supported itemsets (all when topK <= 0) to w
func PrintItemsets(w io.Writer, itemsets *fpgrowth.ItemsetTable, dict *fpgrowth.Dictionary, topK int) string {
	t := table.NewWriter()
	if w != nil {
		t.SetOutputMirror(w)
	}
	t.SetTitle("FREQUENT ITEMSETS")
	t.AppendHeader(table.Row{"#", "Itemset", "Support"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Support", Align: text.AlignRight},
	})
	entries := itemsets.Entries()
	for i, entry := range limit(len(entries), topK, entries) {
		t.AppendRow(table.Row{i + 1, FormatItemset(entry.Itemset, dict), entry.Support})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d itemsets", len(entries))})
	return t.Render()
}

func limit[T any](n, topK int, s []T) []T {
	if topK > 0 && n > topK {
		return s[:topK]
	}
	return s
}
