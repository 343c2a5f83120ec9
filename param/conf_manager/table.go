package conf_manager

import (
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"fp-miner/cmd"
)

// cmdTablePrint renders the parameter table to stderr and returns it
func cmdTablePrint(container *cmd.FlagContainer) string {
	flags := make([]*cmd.Flag, len(container.GetFlags()))
	copy(flags, container.GetFlags())
	priority := container.GetPrintPriority()
	sort.SliceStable(flags, func(i, j int) bool {
		return priority[flags[i].Name] < priority[flags[j].Name]
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Parameter", Align: text.AlignCenter, AlignHeader: text.AlignCenter, WidthMin: 16, WidthMax: 20},
		{Name: "Value", AlignHeader: text.AlignCenter, WidthMin: 30, WidthMax: 70},
		{Name: "Usage", AlignHeader: text.AlignCenter, WidthMax: 60},
	})
	t.SetTitle("COMMAND PARAMETER TABLE")
	t.AppendHeader(table.Row{"Parameter", "Value", "Usage"})
	for _, flag := range flags {
		valueMap := flag.FlagValue.Get()
		keys := maps.Keys(valueMap)
		slices.Sort(keys)
		for i, k := range keys {
			if i == 0 {
				t.AppendRow(table.Row{flag.Name, valueMap[k], flag.Usage})
			} else {
				t.AppendRow(table.Row{"", valueMap[k], ""})
			}
		}
	}
	return t.Render()
}
