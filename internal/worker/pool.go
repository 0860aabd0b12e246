// Package worker provides a bounded pool of goroutines for searching root
// moves in parallel. The root dispatcher (internal/dispatch) submits one
// WorkItem per legal root move; Pool is the oversubscription/queueing layer
// spec.md 4.I calls for when max_workers is smaller than the number of
// root moves. Cancellation and result aggregation belong to the dispatcher
// itself (its own worker-local/global atomic stop flags and mutex-guarded
// score map, spec.md 5); Pool's only job is bounding concurrency and
// waiting for every submitted item to finish.
package worker

import (
	"sync"

	"github.com/lgbarn/pgn-extract-go/internal/chess"
)

// WorkItem is a single root move awaiting a search.
type WorkItem struct {
	Move  chess.Move
	Index int // position of Move in the root move list, for result aggregation
}

// ProcessFunc searches a single root move. It is responsible for its own
// result publication (the dispatcher's mutex-guarded score map) and for
// observing its own stop flags; Pool does not interpret what the function
// does, only how many run at once.
type ProcessFunc func(item WorkItem)

// Pool runs a bounded number of goroutines over WorkItems fed through
// Submit, used by the root dispatcher to cap concurrent root-move
// searches at max_workers (spec.md 4.I, 5).
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// NewPool creates a pool of numWorkers goroutines draining a
// bufferSize-deep queue of WorkItems, each processed by processFunc.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.processFunc(item)
	}
}

// Submit submits a root move for searching. This may block if the work
// channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel and waits for every submitted item to
// finish processing.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
}
