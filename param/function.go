package param

import (
	"strings"

	"fp-miner/param/conf_manager"
	"fp-miner/param/conf_mine"
)

func Init() {
	conf_mine.Init()
	conf_manager.FlagsPrintPriority()
}

func ParseTaskArgs(args []string) error {
	err := conf_manager.ParseFlagsWithArgs(args)
	ArgsPrint()
	return err
}

func CurArgsToString() string {
	builder := strings.Builder{}
	builder.WriteString("cmd settings!!!\n===============================\n")
	builder.WriteString(conf_manager.FlagsToString())
	builder.WriteString("\n===============================\n")
	return builder.String()
}

func ArgsPrint() {
	conf_manager.FlagsPrint()
}
