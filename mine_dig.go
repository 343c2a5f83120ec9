package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fp-miner/dataset"
	"fp-miner/fpgrowth"
	"fp-miner/mine_config"
	"fp-miner/report"
	"fp-miner/share/base/config"
	"fp-miner/share/base/logger"
	"fp-miner/utils"
	"fp-miner/utils/tidset"
)

// applyDefaults fills zero request fields from the configured mine defaults
func applyDefaults(request *MineRequest, defaults config.MineConfig) {
	if request.Column == "" {
		request.Column = defaults.Column
	}
	if request.Separator == "" {
		request.Separator = defaults.Separator
	}
	if request.Support == 0 {
		request.Support = defaults.Support
	}
	if request.Confidence == 0 {
		request.Confidence = defaults.Confidence
	}
	if request.Workers == 0 {
		request.Workers = defaults.Workers
	}
	if request.Filter == "" {
		request.Filter = defaults.Filter
	}
	if request.Format == "" {
		request.Format = defaults.Format
	}
	if request.Output == "" {
		request.Output = defaults.OutputDir
	}
	if request.TopK == 0 {
		request.TopK = defaults.TopK
	}
}

// DigRules runs one task: load transactions, mine itemsets, derive rules and write the result files.
// The task is registered in TaskRegistry for its whole life.
func DigRules(ctx context.Context, request MineRequest, defaults config.MineConfig) (*MineResult, error) {
	applyDefaults(&request, defaults)
	gv := InitTaskGlobalV(request)
	return dig(ctx, gv, request)
}

// StartDigRules registers the task and runs it in the background, the returned state is
// updated while the task runs and can be polled through GetTask
func StartDigRules(request MineRequest, defaults config.MineConfig) *GlobalV {
	applyDefaults(&request, defaults)
	gv := InitTaskGlobalV(request)
	go func() {
		_, _ = dig(context.Background(), gv, request)
	}()
	return gv
}

func dig(ctx context.Context, gv *GlobalV, request MineRequest) (*MineResult, error) {
	result, err := digRules(ctx, gv, request)
	gv.finish(err)
	if err != nil {
		logger.Errorf("taskId:%v, rule dig failed, err:%v", gv.TaskId, err)
		return nil, err
	}
	return result, nil
}

func digRules(ctx context.Context, gv *GlobalV, request MineRequest) (*MineResult, error) {
	startTime := time.Now().UnixMilli()
	taskId := gv.TaskId
	logger.Infof("taskId:%v, rule dig start, path:%s, support:%v, confidence:%v", taskId, request.Path, request.Support, request.Confidence)

	if !(request.Confidence > 0 && request.Confidence <= 1) {
		return nil, fmt.Errorf("%w: %v", utils.ErrParameter, fpgrowth.ErrInvalidConfidence)
	}
	filter, err := report.NewRuleFilter(request.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrParameter, err)
	}

	rawTransactions, stats, err := dataset.LoadTransactions(request.Path, request.Column, request.Separator)
	if err != nil {
		return nil, err
	}
	minSupport, err := dataset.MinSupportCount(request.Support, len(rawTransactions))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrParameter, err)
	}
	gv.update(func(gv *GlobalV) {
		gv.Transactions = len(rawTransactions)
		gv.DroppedRows = stats.DroppedRows
		gv.MinSupportCount = minSupport
	})
	logger.Infof("taskId:%v, transactions:%d, dropped rows:%d, min support count:%d", taskId, len(rawTransactions), stats.DroppedRows, minSupport)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dict := fpgrowth.NewDictionary()
	transactions := dict.Encode(rawTransactions)
	var itemsets *fpgrowth.ItemsetTable
	if request.Workers > 1 {
		itemsets, err = fpgrowth.MineParallel(transactions, minSupport, request.Workers)
	} else {
		itemsets, err = fpgrowth.Mine(transactions, minSupport)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMine, err)
	}
	gv.update(func(gv *GlobalV) {
		gv.ItemsetSize = itemsets.Len()
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if request.Verify {
		mismatches := tidset.NewIndex(transactions).Verify(itemsets, minSupport)
		if len(mismatches) > 0 {
			return nil, fmt.Errorf("%w: %d itemsets disagree with exact counting, first: %s", utils.ErrMine, len(mismatches), mismatches[0])
		}
		logger.Infof("taskId:%v, verified %d itemsets", taskId, itemsets.Len())
	}
	if request.Graph != "" {
		header := fpgrowth.NewHeaderTable(fpgrowth.CountItems(transactions, minSupport))
		if err := fpgrowth.BuildTree(transactions, header).ToSimpleGraph(request.Graph, dict); err != nil {
			logger.Warnf("taskId:%v, write tree graph %s failed, err:%v", taskId, request.Graph, err)
		}
	}

	var rules []fpgrowth.Rule
	if len(transactions) > 0 {
		rules, err = fpgrowth.GenerateRules(itemsets, request.Confidence, len(transactions))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrMine, err)
		}
	}
	fpgrowth.SortRules(rules)
	rules, err = filter.Apply(rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrParameter, err)
	}

	if request.Print {
		report.PrintItemsets(os.Stdout, itemsets, dict, request.TopK)
		report.PrintRules(os.Stdout, rules, dict, request.TopK)
	}

	result := &report.Result{
		TaskId:            taskId,
		TotalTransactions: len(transactions),
		MinSupportCount:   minSupport,
		MinConfidence:     request.Confidence,
		Separator:         request.Separator,
		Rules:             report.RuleRecords(rules, dict),
		Itemsets:          report.ItemsetRecords(itemsets, dict),
	}
	var p string
	if request.Format == mine_config.FormatYaml {
		p, err = report.WriteYaml(request.Output, result)
	} else {
		p, err = report.WriteCsv(request.Output, result)
	}
	if err != nil {
		return nil, err
	}
	gv.update(func(gv *GlobalV) {
		gv.RuleSize = len(rules)
		gv.ResultPath = p
	})

	spent := time.Now().UnixMilli() - startTime
	logger.Infof("taskId:%v, rule dig finished, spent:%dms, itemsets:%d, rules:%d, result:%s", taskId, spent, itemsets.Len(), len(rules), p)
	return &MineResult{
		TaskId:          taskId,
		ResultPath:      p,
		Transactions:    len(transactions),
		MinSupportCount: minSupport,
		ItemsetSize:     itemsets.Len(),
		RuleSize:        len(rules),
		SpentTime:       spent,
	}, nil
}
