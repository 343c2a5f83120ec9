package dataset

import (
	"errors"
	"math"
)

var (
	ErrInvalidPercent          = errors.New("support percent must be in (0,1]")
	ErrInvalidTransactionCount = errors.New("transaction count must be >= 0")
)

// MinSupportCount absolute min support: ceil(percent * transactionCount)
func MinSupportCount(percent float64, transactionCount int) (int, error) {
	if !(percent > 0 && percent <= 1) {
		return 0, ErrInvalidPercent
	}
	if transactionCount < 0 {
		return 0, ErrInvalidTransactionCount
	}
	// rounding noise like 0.07*100 = 7.000000000000001 must not push the count up
	count := percent * float64(transactionCount)
	rounded := math.Round(count)
	if math.Abs(count-rounded) < 1e-9 {
		return int(rounded), nil
	}
	return int(math.Ceil(count)), nil
}
