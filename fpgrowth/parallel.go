package fpgrowth

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map"

	"fp-miner/share/base/logger"
)

// MineParallel same result as Mine, but every top-level item's conditional branch is
// mined in its own goroutine into a private table. The main tree is only read while
// branches run. workers <= 0 means runtime.NumCPU().
func MineParallel(transactions [][]Item, minSupport int, workers int) (*ItemsetTable, error) {
	if minSupport < 0 {
		return nil, ErrInvalidSupport
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	startTime := time.Now()
	header := NewHeaderTable(CountItems(transactions, minSupport))
	tree := BuildTree(transactions, header)

	merged := cmap.New()
	wg := sync.WaitGroup{}
	sem := make(chan struct{}, workers)
	errLock := sync.Mutex{}
	var firstErr error
	setErr := func(err error) {
		errLock.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errLock.Unlock()
	}

	for _, item := range header.MiningOrder() {
		support, _ := header.Support(item)
		wg.Add(1)
		sem <- struct{}{}
		go func(item Item, support int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			local := NewItemsetTable()
			if err := mineItem(tree, item, support, minSupport, nil, local); err != nil {
				setErr(err)
				return
			}
			for _, entry := range local.entries {
				if !merged.SetIfAbsent(entry.Itemset.Key(), entry) {
					setErr(fmt.Errorf("%w: %s", ErrDuplicateItemset, entry.Itemset))
					return
				}
			}
		}(item, support)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	table := NewItemsetTable()
	for key, value := range merged.Items() {
		table.entries[key] = value.(ItemsetEntry)
	}
	logger.Infof("[MineParallel] transactions:%d, minSupport:%d, workers:%d, itemsets:%d, spent:%v",
		len(transactions), minSupport, workers, table.Len(), time.Since(startTime))
	return table, nil
}
