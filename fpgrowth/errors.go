package fpgrowth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSupport          = errors.New("min support count must be >= 0")
	ErrInvalidConfidence       = errors.New("min confidence must be in (0,1]")
	ErrInvalidTransactionCount = errors.New("transaction count must be >= 1")
	ErrDuplicateItemset        = errors.New("itemset already mined")
)

// MissingSupportError a subset of a frequent itemset has no support in the table.
// The table was not produced by this miner, or mining lost an itemset.
type MissingSupportError struct {
	Itemset string // Itemset key of the frequent itemset being split
	Subset  string // Subset key of the missing subset
	Side    string // Side "antecedent" or "consequent"
}

func (e *MissingSupportError) Error() string {
	return fmt.Sprintf("missing %s support: subset [%s] of itemset [%s] not in table", e.Side, e.Subset, e.Itemset)
}
