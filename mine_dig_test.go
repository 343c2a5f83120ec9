package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"

	"fp-miner/mine_config"
	"fp-miner/report"
	"fp-miner/share/base/config"
	"fp-miner/utils"
)

func writeSales(dir string) string {
	p := filepath.Join(dir, "sales.csv")
	content := "id,descricao_produtos\n1,\"A;B\"\n2,\"A;B;C\"\n3,A\n4,\"B;C\"\n5,\n"
	So(os.WriteFile(p, []byte(content), 0o644), ShouldBeNil)
	return p
}

func TestDigRules(t *testing.T) {
	Convey("DigRules", t, func() {
		dir := t.TempDir()
		defaults := config.Default().Mine
		request := MineRequest{
			Path:       writeSales(dir),
			Support:    0.5,
			Confidence: 0.5,
			Output:     filepath.Join(dir, "result"),
		}

		Convey("writes itemsets and rules", func() {
			request.Format = mine_config.FormatYaml
			request.Verify = true
			request.Graph = filepath.Join(dir, "tree.dot")
			result, err := DigRules(context.Background(), request, defaults)
			So(err, ShouldBeNil)
			So(result.Transactions, ShouldEqual, 4)
			So(result.MinSupportCount, ShouldEqual, 2)
			So(result.ItemsetSize, ShouldEqual, 5)
			So(result.RuleSize, ShouldEqual, 4)

			written, err := report.ReadYaml(result.ResultPath)
			So(err, ShouldBeNil)
			So(written.TaskId, ShouldEqual, result.TaskId)
			So(written.Rules[0].Antecedent, ShouldResemble, []string{"C"})
			So(written.Rules[0].Consequent, ShouldResemble, []string{"B"})

			dot, err := os.ReadFile(request.Graph)
			So(err, ShouldBeNil)
			So(string(dot), ShouldContainSubstring, "digraph")

			gv, ok := GetTask(result.TaskId)
			So(ok, ShouldBeTrue)
			state := gv.Snapshot()
			So(state.Status, ShouldEqual, mine_config.TaskFinished)
			So(state.DroppedRows, ShouldEqual, 1)
			So(state.RuleSize, ShouldEqual, 4)
		})

		Convey("parallel mining and a filter", func() {
			request.Workers = 3
			request.Filter = "confidence >= 1"
			result, err := DigRules(context.Background(), request, defaults)
			So(err, ShouldBeNil)
			So(result.ItemsetSize, ShouldEqual, 5)
			So(result.RuleSize, ShouldEqual, 1)
			So(result.ResultPath, ShouldEqual, filepath.Join(request.Output, strconv.FormatInt(result.TaskId, 10)+"_rules.csv"))
		})

		Convey("bad parameters", func() {
			request.Confidence = 1.5
			_, err := DigRules(context.Background(), request, defaults)
			So(errors.Is(err, utils.ErrParameter), ShouldBeTrue)

			request.Confidence = 0.5
			request.Filter = "lift >"
			_, err = DigRules(context.Background(), request, defaults)
			So(errors.Is(err, utils.ErrParameter), ShouldBeTrue)

			request.Filter = ""
			request.Column = "nope"
			_, err = DigRules(context.Background(), request, defaults)
			So(errors.Is(err, utils.ErrColumnNotExist), ShouldBeTrue)
		})

		Convey("a cancelled context stops the task", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := DigRules(ctx, request, defaults)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}

// pollTask reads the task state until it leaves running, gives up after 10s
func pollTask(r *gin.Engine, taskPath string) TaskState {
	var state TaskState
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, taskPath, nil))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(json.Unmarshal(w.Body.Bytes(), &state), ShouldBeNil)
		if state.Status != mine_config.TaskRunning {
			return state
		}
		time.Sleep(20 * time.Millisecond)
	}
	return state
}

func TestRouter(t *testing.T) {
	Convey("router", t, func() {
		gin.SetMode(gin.TestMode)
		dir := t.TempDir()
		defaults := config.Default().Mine
		defaults.OutputDir = filepath.Join(dir, "result")
		r := newRouter(defaults)

		Convey("start, query and clear a task", func() {
			body, _ := json.Marshal(MineRequest{Path: writeSales(dir), Support: 0.5})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mine", bytes.NewReader(body)))
			So(w.Code, ShouldEqual, http.StatusOK)
			var started struct {
				Success bool  `json:"success"`
				TaskId  int64 `json:"task_id"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &started), ShouldBeNil)
			So(started.Success, ShouldBeTrue)

			taskPath := "/mine/" + strconv.FormatInt(started.TaskId, 10)
			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, taskPath, nil))
			So(w.Code, ShouldEqual, http.StatusOK)
			var state TaskState
			So(json.Unmarshal(w.Body.Bytes(), &state), ShouldBeNil)
			So(state.Status, ShouldEqual, mine_config.TaskFinished)
			So(state.ItemsetSize, ShouldEqual, 5)

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, taskPath, nil))
			So(w.Code, ShouldEqual, http.StatusOK)
			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, taskPath, nil))
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("an async task answers at once and is polled until done", func() {
			body, _ := json.Marshal(MineRequest{Path: writeSales(dir), Support: 0.5, Async: true})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mine", bytes.NewReader(body)))
			So(w.Code, ShouldEqual, http.StatusAccepted)
			var started struct {
				Success bool  `json:"success"`
				TaskId  int64 `json:"task_id"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &started), ShouldBeNil)
			So(started.Success, ShouldBeTrue)

			taskPath := "/mine/" + strconv.FormatInt(started.TaskId, 10)
			state := pollTask(r, taskPath)
			So(state.Status, ShouldEqual, mine_config.TaskFinished)
			So(state.ItemsetSize, ShouldEqual, 5)
			So(state.RuleSize, ShouldEqual, 4)
			So(state.ResultPath, ShouldNotBeEmpty)
		})

		Convey("a failing async task ends in the failed state", func() {
			body, _ := json.Marshal(MineRequest{Path: filepath.Join(dir, "missing.csv"), Async: true})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mine", bytes.NewReader(body)))
			So(w.Code, ShouldEqual, http.StatusAccepted)
			var started struct {
				TaskId int64 `json:"task_id"`
			}
			So(json.Unmarshal(w.Body.Bytes(), &started), ShouldBeNil)
			state := pollTask(r, "/mine/"+strconv.FormatInt(started.TaskId, 10))
			So(state.Status, ShouldEqual, mine_config.TaskFailed)
			So(state.Err, ShouldNotBeEmpty)
		})

		Convey("a request without path is rejected", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mine", bytes.NewReader([]byte(`{"support":0.5}`))))
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("invalid thresholds are a bad request", func() {
			body, _ := json.Marshal(MineRequest{Path: writeSales(dir), Confidence: 2})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mine", bytes.NewReader(body)))
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("an unknown task id", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mine/1", nil))
			So(w.Code, ShouldEqual, http.StatusNotFound)
			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mine/abc", nil))
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
