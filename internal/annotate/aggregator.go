// Package annotate implements the violation-to-annotation pipeline: rule-set
// applicability filtering, offset mapping with stale-range containment, and
// the per-document aggregation of independently run rule sets.
package annotate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lintwire-labs/lintwire/internal/document"
	"github.com/lintwire-labs/lintwire/pkg/analysis"
	"github.com/lintwire-labs/lintwire/pkg/annotation"
	"github.com/lintwire-labs/lintwire/pkg/dialect"
)

// Aggregator orchestrates annotation passes. It owns no per-document state:
// each pass snapshots the document, fans out one engine run per applicable
// rule set, and merges the surviving annotations into a fresh Result.
type Aggregator struct {
	engine analysis.Engine
	logger *slog.Logger
}

// New creates an aggregator running analyses through the given engine.
func New(engine analysis.Engine, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{engine: engine, logger: logger}
}

// Annotate runs one annotation pass against the given snapshot. live must
// be the document the snapshot was taken from; it supplies the current
// length that stale-range validation checks, since the user may have kept
// typing after the snapshot was captured.
//
// configured is the full list of configured rule-set identifiers; it is
// narrowed to the snapshot's dialect first. A nil Result with a nil error
// means "not applicable": no configured rule set targets the dialect, so no
// analysis ran at all.
//
// Rule-set runs are independent and execute concurrently; each returns its
// own annotation slice and the slices are merged once, in configured order.
// Engine failures and stale ranges are contained at their own scope (one
// rule set, one violation) and logged, never failing the pass. The only
// error returned is the context's, when the pass was cancelled; the partial
// result is discarded in that case.
func (a *Aggregator) Annotate(ctx context.Context, snap *document.Snapshot, live *document.Document, res dialect.Resolution, configured []string) (*annotation.Result, error) {
	sel := ApplicableRuleSets(configured, res.ID())
	if sel.Empty() {
		return nil, nil
	}

	passID := uuid.NewString()

	logger := a.logger.With("pass", passID, "uri", snap.URI(), "dialect", res.ID())
	logger.Debug("starting annotation pass",
		"version", snap.Version(), "rulesets", len(sel))

	// Fan out one run per rule set, fan in by index so merge order is the
	// selection order regardless of completion order.
	batches := make([][]annotation.Annotation, len(sel))
	g, gctx := errgroup.WithContext(ctx)
	for i, ruleSetID := range sel {
		g.Go(func() error {
			violations, err := a.engine.Run(gctx, snap.Text(), res.ID(), res.Version, ruleSetID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				ierr := &analysis.InvocationError{RuleSetID: ruleSetID, Err: err}
				logger.Error("rule-set run failed, dropping its contribution", "error", ierr)
				return nil
			}
			batches[i] = a.mapViolations(logger, violations, snap, live)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var merged []annotation.Annotation
	for _, batch := range batches {
		merged = append(merged, batch...)
	}

	logger.Debug("annotation pass complete", "annotations", len(merged))

	return &annotation.Result{
		PassID:          passID,
		SnapshotVersion: snap.Version(),
		Annotations:     merged,
	}, nil
}

// mapViolations translates one rule-set run's violations, dropping any whose
// range no longer fits the live document.
func (a *Aggregator) mapViolations(logger *slog.Logger, violations []analysis.Violation, snap *document.Snapshot, live *document.Document) []annotation.Annotation {
	out := make([]annotation.Annotation, 0, len(violations))
	for _, v := range violations {
		rng, err := MapRange(v, snap, live)
		if err != nil {
			// The document moved under the analysis. Normal under typing;
			// drop this one violation and keep the batch.
			logger.Warn("dropping stale annotation", "error", err)
			continue
		}
		out = append(out, annotation.NewAnnotation(v, rng.Start, rng.End))
	}
	return out
}
