package dataset

import (
	"fmt"
	"strings"

	"fp-miner/share/base/logger"
	"fp-miner/utils"
)

// LoadStats what happened while loading a csv
type LoadStats struct {
	TotalRows   int // TotalRows data rows in the file, header excluded
	DroppedRows int // DroppedRows rows whose item column was empty
}

// LoadTransactions reads the csv at path and turns the column named column into transactions,
// one per row. Rows with an empty column are dropped.
func LoadTransactions(path, column, separator string) ([][]string, LoadStats, error) {
	data, err := utils.GetCsvData(path)
	if err != nil {
		return nil, LoadStats{}, err
	}
	return ParseRecords(data, column, separator)
}

// ParseRecords same as LoadTransactions on already read records, records[0] is the header
func ParseRecords(records [][]string, column, separator string) ([][]string, LoadStats, error) {
	stats := LoadStats{}
	if len(records) == 0 {
		return nil, stats, fmt.Errorf("%w: empty file", utils.ErrReadCsv)
	}
	columnIndex := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == column {
			columnIndex = i
			break
		}
	}
	if columnIndex < 0 {
		return nil, stats, fmt.Errorf("%w: %s", utils.ErrColumnNotExist, column)
	}

	transactions := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		stats.TotalRows++
		if columnIndex >= len(record) || strings.TrimSpace(record[columnIndex]) == "" {
			stats.DroppedRows++
			continue
		}
		transactions = append(transactions, SplitItems(record[columnIndex], separator))
	}
	logger.Infof("[LoadTransactions] rows:%d, dropped:%d, transactions:%d", stats.TotalRows, stats.DroppedRows, len(transactions))
	return transactions, stats, nil
}

// SplitItems splits a delimited field into trimmed, non-empty items
func SplitItems(field, separator string) []string {
	parts := strings.Split(field, separator)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
