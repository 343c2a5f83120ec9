package conf_manager

import "fp-miner/cmd"

// flagContainer all command line parameters of the process
var flagContainer = cmd.NewFlagContainer()

// AddCmdArgs registers flags on the process container
func AddCmdArgs(flags ...*cmd.Flag) error {
	return flagContainer.AddFlags(flags...)
}

func ParseFlagsWithArgs(args []string) error {
	return flagContainer.Parse(args)
}

func FlagsToString() string {
	return (*flagContainer).String()
}

// FlagsPrintPriority prints flags in registration order
func FlagsPrintPriority() {
	priorityMap := make(map[string]int, len(flagContainer.GetFlags()))
	for i, flag := range flagContainer.GetFlags() {
		priorityMap[flag.Name] = i
	}
	flagContainer.SetPrintPriority(priorityMap)
}

func FlagsPrint() string {
	return cmdTablePrint(flagContainer)
}
