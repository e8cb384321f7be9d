package domain

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/cyclact/internal/model"
)

// Orchestrator runs the signature search for every candidate order of a plan
// on a bounded pool of workers and merges the results.
type Orchestrator interface {
	Run(ctx context.Context, plan m.Plan, threads int) ([]m.Signature, error)
}

type orchestrator struct {
	searcher Searcher
	log      *logrus.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided searcher.
func NewOrchestrator(searcher Searcher, log *logrus.Logger) Orchestrator {
	return &orchestrator{
		searcher: searcher,
		log:      orDiscard(log),
	}
}

func (o *orchestrator) Run(ctx context.Context, plan m.Plan, threads int) ([]m.Signature, error) {
	if threads <= 0 {
		threads = 1
	}

	collector := NewCollector(plan.Query.Policy)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, candidate := range plan.Candidates {
		if groupCtx.Err() != nil {
			break
		}

		candidate := candidate

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			batch := o.searcher.Search(plan.Query, candidate)
			added := collector.Merge(batch)

			o.log.WithFields(logrus.Fields{
				"order":    candidate.Order,
				"found":    len(batch),
				"distinct": added,
			}).Debug("searched order")

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search interrupted: %w", err)
	}

	return collector.Signatures(), nil
}
