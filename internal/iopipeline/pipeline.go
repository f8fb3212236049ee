// Package iopipeline runs status queries for a list of species one by one
// and converts successful results into species records.
package iopipeline

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/conslaw/pkg/format"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/conslaw/pkg/status"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Pipeline queries a status.Fetcher for every species sequentially.
type Pipeline struct {
	fetcher  status.Fetcher
	format   format.Func
	delay    time.Duration
	sorted   bool
	progress bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// OptDelay sets the pause between consecutive queries.
func OptDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// OptSorted makes the pipeline query species in alphabetical order of
// their names instead of the input order.
func OptSorted(b bool) Option {
	return func(p *Pipeline) {
		p.sorted = b
	}
}

// OptProgress shows a progress bar on the terminal.
func OptProgress(b bool) Option {
	return func(p *Pipeline) {
		p.progress = b
	}
}

// New creates a Pipeline that formats successful results with fn.
func New(f status.Fetcher, fn format.Func, opts ...Option) *Pipeline {
	res := &Pipeline{fetcher: f, format: fn}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Run queries every species and returns records built from successful
// results together with the run summary. Failed queries are counted and
// logged, they do not stop the run. Only cancellation of ctx does.
func (p *Pipeline) Run(
	ctx context.Context,
	recs []species.Species,
) ([]species.Species, Summary, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := slog.With("run_id", runID, "source", p.fetcher.Source())
	sum := newSummary(p.fetcher.Source(), runID)

	if p.sorted {
		recs = slices.Clone(recs)
		slices.SortStableFunc(recs, func(a, b species.Species) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}

	limit := rate.Inf
	if p.delay > 0 {
		limit = rate.Every(p.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	var bar *pb.ProgressBar
	if p.progress {
		bar = pb.Full.Start(len(recs))
		bar.Set("prefix", p.fetcher.Source()+" ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	log.Info("Starting status queries", "species", len(recs))
	res := make([]species.Species, 0, len(recs))
	for i, rec := range recs {
		if err := limiter.Wait(ctx); err != nil {
			return nil, sum, CancelledError(err)
		}

		name := rec.Name()
		qr := p.fetcher.Fetch(ctx, name)
		sum.add(qr)
		p.logResult(log, i+1, len(recs), qr)

		if qr.Outcome == status.Success {
			res = append(res, p.format(rec, qr))
		}
		if bar != nil {
			bar.Increment()
		}
	}

	sum.Duration = time.Since(start)
	log.Info("Status queries complete",
		"total", sum.Total,
		"success", sum.Success,
		"not_found", sum.NotFound,
		"errors", sum.Errors,
	)
	return res, sum, nil
}

func (p *Pipeline) logResult(log *slog.Logger, idx, total int, res status.Result) {
	attrs := []any{
		"index", idx,
		"total", total,
		"name", res.ScientificName,
		"outcome", res.Outcome,
		"category", res.Category,
	}
	switch res.Outcome {
	case status.Error:
		attrs = append(attrs, "kind", res.ErrorKind, "error", res.Error)
		log.Warn("Query failed", attrs...)
	default:
		log.Info("Query done", attrs...)
	}
}
