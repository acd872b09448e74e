package engine

import (
	"sync"

	"heron-engine/uci"
)

// DefaultQueueCapacity bounds the command FIFO. The reader blocks when the
// queue fills up, which is acceptable backpressure.
const DefaultQueueCapacity = 64

// CommandQueue is the bounded FIFO between the reader thread and the
// engine worker. It offers a blocking dequeue for the idle worker, a
// non-blocking dequeue for the search's poll sites, and a shutdown signal.
type CommandQueue struct {
	cmds chan uci.Command
	done chan struct{}
	once sync.Once
}

// NewCommandQueue creates a queue with the given capacity.
func NewCommandQueue(capacity int) *CommandQueue {
	return &CommandQueue{
		cmds: make(chan uci.Command, capacity),
		done: make(chan struct{}),
	}
}

// Enqueue blocks until there is room. It returns false once the queue has
// been shut down.
func (q *CommandQueue) Enqueue(cmd uci.Command) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.cmds <- cmd:
		return true
	case <-q.done:
		return false
	}
}

// Dequeue blocks until a command is available or the queue shuts down.
// After shutdown it keeps draining buffered commands before reporting
// closure.
func (q *CommandQueue) Dequeue() (uci.Command, bool) {
	select {
	case cmd := <-q.cmds:
		return cmd, true
	case <-q.done:
		select {
		case cmd := <-q.cmds:
			return cmd, true
		default:
			return uci.Command{}, false
		}
	}
}

// TryDequeue returns immediately; ok is false when the queue is empty.
func (q *CommandQueue) TryDequeue() (uci.Command, bool) {
	select {
	case cmd := <-q.cmds:
		return cmd, true
	default:
		return uci.Command{}, false
	}
}

// Close signals shutdown. Blocked producers and consumers are released;
// already-buffered commands remain drainable.
func (q *CommandQueue) Close() {
	q.once.Do(func() { close(q.done) })
}
