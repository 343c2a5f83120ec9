package main

import (
	"strconv"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map"

	"fp-miner/mine_config"
)

// TaskRegistry taskId -> *GlobalV of every task started by this process
var TaskRegistry = cmap.New()

// GlobalV state of one mining task, written by the task, read by status requests
type GlobalV struct {
	lock sync.RWMutex

	TaskId          int64
	Request         MineRequest
	Status          string
	StartTime       int64
	Transactions    int
	DroppedRows     int
	MinSupportCount int
	ItemsetSize     int
	RuleSize        int
	ResultPath      string
	Err             string
	FinishTime      int64
}

// TaskState a consistent copy of a GlobalV
type TaskState struct {
	TaskId          int64  `json:"task_id"`
	Status          string `json:"status"`
	Path            string `json:"path"`
	StartTime       int64  `json:"start_time"`
	FinishTime      int64  `json:"finish_time,omitempty"`
	Transactions    int    `json:"transactions"`
	DroppedRows     int    `json:"dropped_rows"`
	MinSupportCount int    `json:"min_support_count"`
	ItemsetSize     int    `json:"itemset_size"`
	RuleSize        int    `json:"rule_size"`
	ResultPath      string `json:"result_path,omitempty"`
	Err             string `json:"error,omitempty"`
}

// InitTaskGlobalV registers a running task, taskIds are start times in ms and are bumped on collision
func InitTaskGlobalV(request MineRequest) *GlobalV {
	now := time.Now().UnixMilli()
	gv := &GlobalV{Request: request, Status: mine_config.TaskRunning, StartTime: now}
	taskId := now
	for !TaskRegistry.SetIfAbsent(strconv.FormatInt(taskId, 10), gv) {
		taskId++
	}
	gv.TaskId = taskId
	return gv
}

func GetTask(taskId int64) (*GlobalV, bool) {
	value, ok := TaskRegistry.Get(strconv.FormatInt(taskId, 10))
	if !ok {
		return nil, false
	}
	return value.(*GlobalV), true
}

// ClearTask forgets a task
func ClearTask(taskId int64) {
	TaskRegistry.Remove(strconv.FormatInt(taskId, 10))
}

func (gv *GlobalV) update(fn func(gv *GlobalV)) {
	gv.lock.Lock()
	defer gv.lock.Unlock()
	fn(gv)
}

func (gv *GlobalV) finish(err error) {
	gv.update(func(gv *GlobalV) {
		gv.FinishTime = time.Now().UnixMilli()
		if err != nil {
			gv.Status = mine_config.TaskFailed
			gv.Err = err.Error()
		} else {
			gv.Status = mine_config.TaskFinished
		}
	})
}

func (gv *GlobalV) Snapshot() TaskState {
	gv.lock.RLock()
	defer gv.lock.RUnlock()
	return TaskState{
		TaskId:          gv.TaskId,
		Status:          gv.Status,
		Path:            gv.Request.Path,
		StartTime:       gv.StartTime,
		FinishTime:      gv.FinishTime,
		Transactions:    gv.Transactions,
		DroppedRows:     gv.DroppedRows,
		MinSupportCount: gv.MinSupportCount,
		ItemsetSize:     gv.ItemsetSize,
		RuleSize:        gv.RuleSize,
		ResultPath:      gv.ResultPath,
		Err:             gv.Err,
	}
}
