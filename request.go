package main

// MineRequest one mining task, zero fields fall back to mine_config in config.yml
type MineRequest struct {
	Path       string  `json:"path" binding:"required"`
	Column     string  `json:"column"`
	Separator  string  `json:"separator"`
	Support    float64 `json:"support"`    // Support min support as a fraction of transactions
	Confidence float64 `json:"confidence"` // Confidence min rule confidence
	Workers    int     `json:"workers"`
	Filter     string  `json:"filter"` // Filter rule filter expression
	Format     string  `json:"format"` // Format csv or yaml
	Output     string  `json:"output"`
	Graph      string  `json:"graph"`  // Graph FP-tree dot file, empty skips it
	Verify     bool    `json:"verify"` // Verify check mined supports by exact counting
	TopK       int     `json:"top_k"`
	Async      bool    `json:"async"` // Async answer with the task id at once, poll GET /mine/:taskId for the state
	Print      bool    `json:"-"` // Print render report tables to stdout
}

// MineResult what a finished task produced
type MineResult struct {
	TaskId          int64  `json:"task_id"`
	ResultPath      string `json:"result_path"`
	Transactions    int    `json:"transactions"`
	MinSupportCount int    `json:"min_support_count"`
	ItemsetSize     int    `json:"itemset_size"`
	RuleSize        int    `json:"rule_size"`
	SpentTime       int64  `json:"spent_time"` // SpentTime ms
}
