// Package stream runs a text transform over a stream of lines
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"titlecase/constants/zapkey"
	"titlecase/log"
	"titlecase/utils/ctxutil"
)

// ErrInvalidUTF8 is reported for lines that are not valid UTF-8. The line is skipped.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Transform rewrites a single line
type Transform func(string) string

// Processor applies a Transform to every line of a stream
type Processor struct {
	transform Transform
	workers   int
	errOut    io.Writer
}

// NewProcessor creates a new line processor
func NewProcessor(transform Transform, opts ...Option) (*Processor, error) {
	if transform == nil {
		return nil, fmt.Errorf("transform is nil")
	}
	p := &Processor{
		transform: transform,
		workers:   1,
		errOut:    os.Stderr,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return p, nil
}

// String returns a string representation of the processor
func (p *Processor) String() string {
	return "Line Processor"
}

// line is one input line and the slot its result is delivered to
type line struct {
	number int
	text   string
	result chan result
}

type result struct {
	text string
	err  error
}

// Run reads lines from r until EOF and writes each transformed line to w,
// in input order. Invalid lines are reported to the error writer and skipped.
// Read and write failures stop the run.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ctx, fields := ctxutil.WithZapFields(ctx, zap.Int(zapkey.Workers, p.workers))
	logger.Debug("Processing lines", fields...)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan line, p.workers)
	pending := make(chan chan result, p.workers)

	g.Go(func() error {
		defer close(jobs)
		defer close(pending)
		return p.read(ctx, r, jobs, pending)
	})
	for range p.workers {
		g.Go(func() error {
			p.work(ctx, jobs)
			return nil
		})
	}
	g.Go(func() error {
		return p.write(ctx, w, pending)
	})

	return g.Wait()
}

// read splits r into lines and queues them in order
func (p *Processor) read(ctx context.Context, r io.Reader, jobs chan<- line, pending chan<- chan result) error {
	br := bufio.NewReader(r)
	for number := 1; ; number++ {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read line %d: %w", number, err)
		}
		if text == "" && err != nil {
			return nil
		}

		l := line{
			number: number,
			text:   trimNewline(text),
			result: make(chan result, 1),
		}
		select {
		case jobs <- l:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case pending <- l.result:
		case <-ctx.Done():
			return ctx.Err()
		}
		if err != nil {
			return nil
		}
	}
}

// work transforms queued lines until the queue is closed
func (p *Processor) work(ctx context.Context, jobs <-chan line) {
	verbose := log.VerboseLogsEnabled(ctx)
	for l := range jobs {
		if !utf8.ValidString(l.text) {
			l.result <- result{err: fmt.Errorf("line %d: %w", l.number, ErrInvalidUTF8)}
			continue
		}
		out := p.transform(l.text)
		if verbose {
			_, fields := ctxutil.WithZapFields(ctx,
				zap.Int(zapkey.Line, l.number),
				zap.String(zapkey.Input, l.text),
				zap.String(zapkey.Output, out),
			)
			logger.Debug("Transformed line", fields...)
		}
		l.result <- result{text: out}
	}
}

// write emits results in the order their lines were read
func (p *Processor) write(ctx context.Context, w io.Writer, pending <-chan chan result) error {
	count := 0
	for slot := range pending {
		// Workers always fill their slot, so lines already read are
		// written even when the reader fails
		res := <-slot
		if res.err != nil {
			logger.With(zap.Error(res.err)).Debug("Skipping line", ctxutil.ZapFields(ctx)...)
			if _, err := fmt.Fprintln(p.errOut, res.err); err != nil {
				return fmt.Errorf("failed to write diagnostic: %w", err)
			}
			continue
		}
		if _, err := io.WriteString(w, res.text+"\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
		count++
	}
	logger.With(zap.Int(zapkey.Count, count)).Debug("Finished processing lines", ctxutil.ZapFields(ctx)...)
	return nil
}

// trimNewline drops a trailing \n or \r\n
func trimNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	return strings.TrimSuffix(s[:len(s)-1], "\r")
}
