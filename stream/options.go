package stream

import (
	"fmt"
	"io"
)

// Option is a function that configures a Processor
type Option func(*Processor) error

// WithWorkers sets how many lines are transformed concurrently
func WithWorkers(workers int) Option {
	return func(p *Processor) error {
		if workers < 1 {
			return fmt.Errorf("workers must be at least 1, got %d", workers)
		}
		p.workers = workers
		return nil
	}
}

// WithErrorWriter sets where per-line diagnostics are written
func WithErrorWriter(w io.Writer) Option {
	return func(p *Processor) error {
		if w == nil {
			return fmt.Errorf("error writer is nil")
		}
		p.errOut = w
		return nil
	}
}
