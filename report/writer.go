package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LinkinStars/golang-util/gu"
	"gopkg.in/yaml.v3"

	"fp-miner/fpgrowth"
	"fp-miner/utils"
)

// RuleRecord one rule with item names, as written to result files
type RuleRecord struct {
	Antecedent []string `yaml:"antecedent"`
	Consequent []string `yaml:"consequent"`
	Confidence float64  `yaml:"confidence"`
	Lift       float64  `yaml:"lift"`
	Support    int      `yaml:"support"`
}

type ItemsetRecord struct {
	Items   []string `yaml:"items"`
	Support int      `yaml:"support"`
}

// Result the yaml result document
type Result struct {
	TaskId            int64           `yaml:"task_id"`
	TotalTransactions int             `yaml:"total_transactions"`
	MinSupportCount   int             `yaml:"min_support_count"`
	MinConfidence     float64         `yaml:"min_confidence"`
	Separator         string          `yaml:"separator"` // Separator joins item names inside one csv field
	Rules             []RuleRecord    `yaml:"rules"`
	Itemsets          []ItemsetRecord `yaml:"itemsets"`
}

func RuleRecords(rules []fpgrowth.Rule, dict *fpgrowth.Dictionary) []RuleRecord {
	records := make([]RuleRecord, 0, len(rules))
	for _, rule := range rules {
		records = append(records, RuleRecord{
			Antecedent: dict.Names(rule.Antecedent),
			Consequent: dict.Names(rule.Consequent),
			Confidence: rule.Confidence,
			Lift:       rule.Lift,
			Support:    rule.Support,
		})
	}
	return records
}

func ItemsetRecords(itemsets *fpgrowth.ItemsetTable, dict *fpgrowth.Dictionary) []ItemsetRecord {
	entries := itemsets.Entries()
	records := make([]ItemsetRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, ItemsetRecord{Items: dict.Names(entry.Itemset), Support: entry.Support})
	}
	return records
}

// joinItems item names of one csv field, split back with the separator they were loaded with
func (r *Result) joinItems(items []string) string {
	sep := r.Separator
	if sep == "" {
		sep = ";"
	}
	return strings.Join(items, sep)
}

// WriteCsv writes <dir>/<taskId>_rules.csv and <dir>/<taskId>_itemsets.csv, returns the rule file path.
// Itemsets are written as item names joined by result.Separator.
func WriteCsv(dir string, result *Result) (string, error) {
	taskId := strconv.FormatInt(result.TaskId, 10)
	var ruleData [][]string
	ruleData = append(ruleData, []string{"antecedent", "consequent", "confidence", "lift", "support"})
	for _, rule := range result.Rules {
		ruleData = append(ruleData, []string{
			result.joinItems(rule.Antecedent),
			result.joinItems(rule.Consequent),
			strconv.FormatFloat(rule.Confidence, 'f', -1, 64),
			strconv.FormatFloat(rule.Lift, 'f', -1, 64),
			strconv.Itoa(rule.Support),
		})
	}
	rulePath := filepath.Join(dir, taskId+"_rules.csv")
	if err := utils.CreateCsv(rulePath, ruleData); err != nil {
		return "", err
	}

	var itemsetData [][]string
	itemsetData = append(itemsetData, []string{"itemset", "size", "support"})
	for _, itemset := range result.Itemsets {
		itemsetData = append(itemsetData, []string{
			result.joinItems(itemset.Items),
			strconv.Itoa(len(itemset.Items)),
			strconv.Itoa(itemset.Support),
		})
	}
	if err := utils.CreateCsv(filepath.Join(dir, taskId+"_itemsets.csv"), itemsetData); err != nil {
		return "", err
	}
	return rulePath, nil
}

// WriteYaml writes the whole result to <dir>/<taskId>.yml
func WriteYaml(dir string, result *Result) (string, error) {
	out, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	p := filepath.Join(dir, strconv.FormatInt(result.TaskId, 10)+".yml")
	if err := gu.CreateDirIfNotExist(filepath.Dir(p)); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	if err := os.WriteFile(p, out, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrWriteResult, err)
	}
	return p, nil
}

// ReadYaml loads a result written by WriteYaml
func ReadYaml(p string) (*Result, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	result := &Result{}
	if err := yaml.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}
