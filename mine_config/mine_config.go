package mine_config

const GinPort = "19123"

// defaults of a mining task
const (
	Support       = float64(0.01) // Support fraction of transactions
	Confidence    = float64(0.5)
	Workers       = 1
	TopK          = 15
	ItemColumn    = "descricao_produtos"
	ItemSeparator = ";"
	ResultDir     = "result"
)

// result file formats
const (
	FormatCsv  = "csv"
	FormatYaml = "yaml"
)

// task status
const (
	TaskRunning  = "running"
	TaskFinished = "finished"
	TaskFailed   = "failed"
)
