package search

import (
	"sync"

	"github.com/standardbeagle/lks/internal/config"
	"github.com/standardbeagle/lks/internal/debug"
)

// aggregator merges chunk-local results into one global result. Offer is
// called concurrently by workers; Result must be called exactly once,
// after every worker has finished. Two implementations satisfy the same
// contract: a mutex-guarded shared map and a handoff channel with a
// single consuming goroutine. Merge order does not matter because the
// key-wise set union is associative and commutative.
type aggregator interface {
	Offer(local Result)
	Result() Result
}

// newAggregator selects an implementation by configured mode.
func newAggregator(mode string) aggregator {
	if mode == config.AggregatorChannel {
		return newChannelAggregator()
	}
	return newLockAggregator()
}

// lockAggregator is the shared-memory discipline: one map, one mutex.
// The lock is held only for the duration of a key-wise union, never
// during file I/O.
type lockAggregator struct {
	mu     sync.Mutex
	merged Result
}

func newLockAggregator() *lockAggregator {
	return &lockAggregator{merged: NewResult()}
}

func (a *lockAggregator) Offer(local Result) {
	a.mu.Lock()
	a.merged.Merge(local)
	a.mu.Unlock()
}

func (a *lockAggregator) Result() Result {
	// Workers have joined by the time Result is called, so no lock is
	// needed; taking it anyway keeps the race detector quiet if a
	// caller misuses the contract.
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.merged
}

// channelAggregator is the message-passing discipline: workers hand
// their local result (by value semantics - the worker never touches it
// again) to a single consuming goroutine, so the merged map needs no
// lock at all.
type channelAggregator struct {
	ch     chan Result
	done   chan struct{}
	merged Result
}

func newChannelAggregator() *channelAggregator {
	a := &channelAggregator{
		ch:     make(chan Result),
		done:   make(chan struct{}),
		merged: NewResult(),
	}
	go func() {
		defer close(a.done)
		for local := range a.ch {
			debug.LogMerge("merging local result with %d keywords\n", len(local))
			a.merged.Merge(local)
		}
	}()
	return a
}

func (a *channelAggregator) Offer(local Result) {
	a.ch <- local
}

func (a *channelAggregator) Result() Result {
	close(a.ch)
	<-a.done
	return a.merged
}
