package utils

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/LinkinStars/golang-util/gu"

	"fp-miner/share/base/logger"
)

func GetCsvData(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Errorf("opens a csv failed, err:%v", err)
		return nil, ErrOpenCsv
	}
	defer f.Close()
	reader := csv.NewReader(f)
	// rows may have a different number of fields than the header
	reader.FieldsPerRecord = -1
	preData, err := reader.ReadAll()
	if err != nil {
		logger.Errorf("read a csv failed, err:%v", err)
		return nil, ErrReadCsv
	}
	return preData, nil
}

// CreateCsv writes data to path, the parent directory is created when missing
func CreateCsv(path string, data [][]string) error {
	if err := gu.CreateDirIfNotExist(filepath.Dir(path)); err != nil {
		logger.Errorf("create dir for %s failed, err:%v", path, err)
		return ErrWriteResult
	}
	csvFile, err := os.Create(path)
	if err != nil {
		logger.Errorf("create csv %s failed, err:%v", path, err)
		return ErrWriteResult
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	err = csvWriter.WriteAll(data)
	if err != nil {
		logger.Errorf("write csv %s failed, err:%v", path, err)
		return ErrWriteResult
	}
	return nil
}
