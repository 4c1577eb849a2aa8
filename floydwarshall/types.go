// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned (or panicked with) by this package.
var (
	// ErrNilGraph indicates that a nil graph was passed to Compute.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrBadVertexCount indicates that the graph reported a negative vertex count.
	ErrBadVertexCount = errors.New("floydwarshall: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an index outside [0, N): an edge endpoint
	// during Compute, or a query argument (reported by panic).
	ErrVertexOutOfRange = errors.New("floydwarshall: vertex index out of range")

	// ErrBadParallelism indicates WithWorkers was given a value below 1.
	ErrBadParallelism = errors.New("floydwarshall: workers must be >= 1")
)

// noVia marks a pair whose best path is the direct edge, or that has no path.
const noVia = -1

// Options configures Compute.
//
// Workers – number of goroutines sharing the rows of each k step (>= 1).
// Logger  – sink for Debug diagnostics; never nil after DefaultOptions.
type Options struct {
	Workers int         // row-parallelism per k step; 1 means sequential
	Logger  *log.Logger // diagnostic sink
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithWorkers splits each k step across n goroutines.
// Panics with ErrBadParallelism if n < 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallelism)
		}
		o.Workers = n
	}
}

// WithLogger routes Compute diagnostics to l at Debug level.
// A nil l keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns sequential execution with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  log.New(io.Discard),
	}
}
