package conf_mine

import (
	"fmt"
	"sync"

	"fp-miner/cmd"
	"fp-miner/mine_config"
	"fp-miner/param/conf_manager"
)

// TaskArgs one command line mining task
type TaskArgs struct {
	Input      string
	Column     string
	Separator  string
	Support    float64
	Confidence float64
	Workers    int
	TopK       int
	Format     string
	Output     string
	Filter     string
	Graph      string
	Verify     bool
}

// Args filled by conf_manager.ParseFlagsWithArgs
var Args = TaskArgs{
	Column:     mine_config.ItemColumn,
	Separator:  mine_config.ItemSeparator,
	Support:    mine_config.Support,
	Confidence: mine_config.Confidence,
	Workers:    mine_config.Workers,
	TopK:       mine_config.TopK,
	Format:     mine_config.FormatCsv,
	Output:     mine_config.ResultDir,
}

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		if err := conf_manager.AddCmdArgs(Flags(&Args)...); err != nil {
			panic(err)
		}
	})
}

// Flags the mining flags writing into args
func Flags(args *TaskArgs) []*cmd.Flag {
	inUnit := func(valueToCheck float64) error {
		if !(valueToCheck > 0 && valueToCheck <= 1) {
			return fmt.Errorf("expected value in range (0,1], but got '%v'", valueToCheck)
		}
		return nil
	}
	atLeast := func(min int) func(int) error {
		return func(valueToCheck int) error {
			if valueToCheck < min {
				return fmt.Errorf("expected value in range [%d, ∞), but got '%v'", min, valueToCheck)
			}
			return nil
		}
	}
	notEmpty := func(valueToCheck string) error {
		if valueToCheck == "" {
			return fmt.Errorf("expected a non-empty value")
		}
		return nil
	}
	return []*cmd.Flag{
		{Name: "input", Aliases: []string{"i"}, Usage: "--input <csv path>, transactions file", Required: true,
			FlagValue: cmd.NewStringValue(&args.Input, notEmpty)},
		{Name: "column", Usage: "--column <name>, column holding the item list",
			FlagValue: cmd.NewStringValue(&args.Column, notEmpty)},
		{Name: "separator", Aliases: []string{"sep"}, Usage: "--separator <sep>, item separator inside the column",
			FlagValue: cmd.NewStringValue(&args.Separator, notEmpty)},
		{Name: "support", Aliases: []string{"s"}, Usage: "--support <(0,1]>, min support as a fraction of transactions",
			FlagValue: cmd.NewFloat64Value(&args.Support, inUnit)},
		{Name: "confidence", Aliases: []string{"c"}, Usage: "--confidence <(0,1]>, min rule confidence",
			FlagValue: cmd.NewFloat64Value(&args.Confidence, inUnit)},
		{Name: "workers", Usage: "--workers <n>, goroutines mining top-level branches, 1 is sequential",
			FlagValue: cmd.NewIntValue(&args.Workers, atLeast(1))},
		{Name: "top", Usage: "--top <n>, rows printed per report table, 0 prints all",
			FlagValue: cmd.NewIntValue(&args.TopK, atLeast(0))},
		{Name: "format", Usage: "--format <csv|yaml>, result file format",
			FlagValue: cmd.NewStringValue(&args.Format, func(valueToCheck string) error {
				if valueToCheck != mine_config.FormatCsv && valueToCheck != mine_config.FormatYaml {
					return fmt.Errorf("expected csv or yaml, but got '%s'", valueToCheck)
				}
				return nil
			})},
		{Name: "output", Aliases: []string{"o"}, Usage: "--output <dir>, result directory",
			FlagValue: cmd.NewStringValue(&args.Output, notEmpty)},
		{Name: "filter", Usage: "--filter <expr>, keep rules matching e.g. 'lift > 1.2'",
			FlagValue: cmd.NewStringValue(&args.Filter, nil)},
		{Name: "graph", Usage: "--graph <dot path>, write the FP-tree as graphviz",
			FlagValue: cmd.NewStringValue(&args.Graph, notEmpty)},
		{Name: "verify", Usage: "--verify, check mined supports against exact counting",
			FlagValue: cmd.NewNoArgBoolValue(&args.Verify)},
	}
}
