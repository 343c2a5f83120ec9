package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"fp-miner/param"
	"fp-miner/param/conf_mine"
	"fp-miner/share/base/config"
	"fp-miner/share/base/logger"
	"fp-miner/utils"
)

// fp-miner            serve POST /mine on the configured port
// fp-miner --input x  run one task from the command line
func main() {
	all := loadConfig()
	l := all.Logger
	logger.InitLogger(l.Level, "fp-miner", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, all.Server.SentryDsn)
	defer logger.Sync()

	if len(os.Args) > 1 {
		os.Exit(runTask(os.Args[1:], all.Mine))
	}

	r := newRouter(all.Mine)
	address := ":" + all.Server.HttpPort
	if err := r.Run(address); err != nil {
		logger.Errorf("gin run on %s failed, err:%v", address, err)
	}
}

// loadConfig config/config.yml when present, built-in defaults otherwise
func loadConfig() *config.AllConfig {
	if _, err := os.Stat(config.DefaultPath + "/config.yml"); err != nil {
		return config.Default()
	}
	config.InitConfig()
	return config.All
}

func runTask(args []string, defaults config.MineConfig) int {
	param.Init()
	if err := param.ParseTaskArgs(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	a := conf_mine.Args
	request := MineRequest{
		Path:       a.Input,
		Column:     a.Column,
		Separator:  a.Separator,
		Support:    a.Support,
		Confidence: a.Confidence,
		Workers:    a.Workers,
		Filter:     a.Filter,
		Format:     a.Format,
		Output:     a.Output,
		Graph:      a.Graph,
		Verify:     a.Verify,
		TopK:       a.TopK,
		Print:      true,
	}
	result, err := DigRules(context.Background(), request, defaults)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("task %d: %d transactions, min support count %d, %d itemsets, %d rules, result %s (%dms)\n",
		result.TaskId, result.Transactions, result.MinSupportCount, result.ItemsetSize, result.RuleSize, result.ResultPath, result.SpentTime)
	return 0
}

func newRouter(defaults config.MineConfig) *gin.Engine {
	r := gin.Default()
	r.POST("/mine", func(c *gin.Context) {
		start(c, defaults)
	})
	r.GET("/mine/:taskId", taskState)
	r.DELETE("/mine/:taskId", clearTask)
	return r
}

func start(c *gin.Context, defaults config.MineConfig) {
	var requestJson MineRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		logger.Warnf("bad mine request, err:%v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if requestJson.Async {
		gv := StartDigRules(requestJson, defaults)
		c.JSON(http.StatusAccepted, gin.H{
			"success": true,
			"task_id": gv.TaskId,
		})
		return
	}
	result, err := DigRules(c.Request.Context(), requestJson, defaults)
	if err != nil {
		status := http.StatusOK
		if errors.Is(err, utils.ErrParameter) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"task_id":      result.TaskId,
		"result_path":  result.ResultPath,
		"itemset_size": result.ItemsetSize,
		"rule_size":    result.RuleSize,
		"spent_time":   result.SpentTime,
	})
}

func taskState(c *gin.Context) {
	taskId, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId must be an integer"})
		return
	}
	gv, ok := GetTask(taskId)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, gv.Snapshot())
}

func clearTask(c *gin.Context) {
	taskId, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId must be an integer"})
		return
	}
	if _, ok := GetTask(taskId); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	ClearTask(taskId)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
