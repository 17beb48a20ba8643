// Package bfs provides tunable options for the FIFO frontier.
package bfs

import "github.com/katalvlaran/mazewalker/explore"

// Option configures a Queue via functional arguments.
type Option func(*Options)

// Options holds the hooks run by a Queue.
type Options struct {
	// OnEnqueue is called for each candidate as it enters the queue.
	OnEnqueue func(c explore.Candidate)

	// OnDequeue is called for each candidate as it leaves the queue.
	OnDequeue func(c explore.Candidate)
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(explore.Candidate) {},
		OnDequeue: func(explore.Candidate) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c explore.Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c explore.Candidate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
