// SPDX-License-Identifier: MPL-2.0

package transcode

import (
	"runtime"
	"sync"
)

// Pool admits tasks under a counting-semaphore discipline: Submit blocks
// while the limit many tasks are in flight and resumes as tasks complete.
// There is no cancellation; an admitted task always runs to completion and
// Wait is the join barrier before aggregation.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// DefaultLimit is the bound used when no explicit job count is configured:
// twice the available processing units, since transcoder processes spend
// part of their time in I/O.
func DefaultLimit() int {
	return 2 * runtime.NumCPU()
}

// NewPool creates a pool bounded at limit concurrent tasks. A limit of zero
// or less uses DefaultLimit.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultLimit()
	}
	return &Pool{sem: make(chan struct{}, limit)}
}

// Submit blocks until a slot is free, then runs task on its own goroutine.
func (p *Pool) Submit(task func()) {
	p.sem <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		task()
	}()
}

// Wait blocks until every submitted task has completed.
func (p *Pool) Wait() {
	p.wg.Wait()
}
