// Package dfs defines options for the LIFO frontier.
package dfs

import "github.com/katalvlaran/mazewalker/explore"

// Option configures a Stack.
type Option func(*Options)

// Options holds Stack settings.
type Options struct {
	// HeuristicOrder sorts each pushed batch by descending heuristic.
	HeuristicOrder bool

	// OnPush, if non-nil, is invoked for each candidate as it is pushed.
	OnPush func(c explore.Candidate)

	// OnPop, if non-nil, is invoked for each candidate as it is popped.
	OnPop func(c explore.Candidate)
}

// DefaultOptions returns decoding order and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithHeuristicOrder pops the sibling closest to the target first.
func WithHeuristicOrder() Option {
	return func(o *Options) { o.HeuristicOrder = true }
}

// WithOnPush registers a push hook.
func WithOnPush(fn func(c explore.Candidate)) Option {
	return func(o *Options) { o.OnPush = fn }
}

// WithOnPop registers a pop hook.
func WithOnPop(fn func(c explore.Candidate)) Option {
	return func(o *Options) { o.OnPop = fn }
}
