// Package batch aligns many independent sequence pairs concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/diagband/bandalign"
	"github.com/katalvlaran/diagband/internal/seqio"
	"golang.org/x/sync/errgroup"
)

// Task selects the work done for each pair.
type Task int

const (
	// TaskAlign computes the alignment and its score.
	TaskAlign Task = iota
	// TaskDistance computes the banded distance only.
	TaskDistance
	// TaskCheck cross-validates the library on the pair.
	TaskCheck
)

// ErrNoWorkers indicates Options.Workers < 1.
var ErrNoWorkers = errors.New("batch: at least one worker is required")

// Options configures Run.
type Options struct {
	Task Task

	// Band, when non-nil, is used for every pair; otherwise each pair gets
	// its minimal band widened by Margin.
	Band   *bandalign.Band
	Margin int

	Costs   bandalign.Costs
	Mode    bandalign.MemoryMode
	Workers int

	// Logger receives one record per pair; nil discards them.
	Logger *slog.Logger

	// RunID tags every log record of the batch; a random one is used when empty.
	RunID string
}

// Result is the outcome for one pair, at the pair's index in Run's output.
// Err holds per-pair failures (bad band, oracle mismatch); they do not stop
// the batch.
type Result struct {
	Index     int
	UID, VID  string
	Band      bandalign.Band
	Distance  bandalign.Cost
	Alignment *bandalign.Alignment
	Err       error
}

// Run processes pairs on up to opts.Workers goroutines and returns the
// results in input order. It stops early only when ctx is cancelled, in
// which case the context error is returned with the partial results.
func Run(ctx context.Context, pairs []seqio.Pair, opts Options) ([]Result, error) {
	if opts.Workers < 1 {
		return nil, ErrNoWorkers
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()[:8]
	}
	log = log.With("run", runID)

	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	start := time.Now()
	for i := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = process(pairs[i], opts)
			logResult(log, results[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info("batch finished", "pairs", len(pairs), "failed", failed, "elapsed", time.Since(start))

	return results, nil
}

// process runs opts.Task on one pair.
func process(p seqio.Pair, opts Options) Result {
	u, v := p.U.Seq, p.V.Seq
	res := Result{Index: p.Index, UID: p.U.ID, VID: p.V.ID, Distance: bandalign.Unreachable}
	if opts.Band != nil {
		res.Band = *opts.Band
	} else {
		res.Band = bandalign.MinimalBand(len(u), len(v), opts.Margin)
	}

	switch opts.Task {
	case TaskAlign:
		a, err := bandalign.Align(u, v, res.Band, opts.Costs)
		if err != nil {
			res.Err = err
			break
		}
		res.Alignment = a
		res.Distance = a.Score(opts.Costs)
	case TaskDistance:
		if !bandalign.ValidateBand(res.Band, len(u), len(v)) {
			res.Err = bandalign.ErrInvalidBand
			break
		}
		res.Distance, res.Err = bandalign.Distance(u, v, res.Band, opts.Costs, opts.Mode)
	case TaskCheck:
		res.Band = bandalign.CheckBand(len(u), len(v))
		res.Err = bandalign.Check(u, v)
	default:
		res.Err = fmt.Errorf("batch: unknown task %d", opts.Task)
	}

	return res
}

func logResult(log *slog.Logger, r Result) {
	attrs := []any{
		"pair", r.Index,
		"u", r.UID,
		"v", r.VID,
		"left", r.Band.Left,
		"right", r.Band.Right,
	}
	if r.Err != nil {
		log.Warn("pair failed", append(attrs, "error", r.Err)...)
		return
	}
	if !r.Distance.IsUnreachable() {
		attrs = append(attrs, "distance", int(r.Distance))
	}
	log.Debug("pair done", attrs...)
}
