package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/cyclact/internal/adapter"
	"github.com/mouse-blink/cyclact/internal/controller"
	m "github.com/mouse-blink/cyclact/internal/model"
)

// SearchArgs are the inputs of a search run.
type SearchArgs struct {
	Query   m.Query
	Input   m.Path
	Threads int
	Format  controller.Format
	Save    bool
	Reports m.Path
}

// ListArgs are the inputs of a candidate listing.
type ListArgs struct {
	Query m.Query
	Input m.Path
}

// ViewArgs are the inputs for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the enumeration, the search and the presentation together.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	enumerator Enumerator
	orch       Orchestrator
	ui         controller.UI
	store      adapter.ResultStore
	queryFiles adapter.QueryFileAdapter
	log        *logrus.Logger
	now        func() time.Time
}

// NewWorkflow creates a Workflow from its collaborators. A nil logger discards output.
func NewWorkflow(
	enumerator Enumerator,
	orch Orchestrator,
	ui controller.UI,
	store adapter.ResultStore,
	queryFiles adapter.QueryFileAdapter,
	log *logrus.Logger,
) Workflow {
	return &workflow{
		enumerator: enumerator,
		orch:       orch,
		ui:         ui,
		store:      store,
		queryFiles: queryFiles,
		log:        orDiscard(log),
		now:        time.Now,
	}
}

// Search enumerates the candidate orders of the query, searches every one of
// them and displays the merged result. With args.Save the result is also
// written to the reports directory.
func (w *workflow) Search(ctx context.Context, args SearchArgs) error {
	if err := w.ui.Start(controller.WithSearchMode(), controller.WithFormat(args.Format)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	query, err := w.resolveQuery(args.Query, args.Input)
	if err != nil {
		return displayed(w.ui.DisplaySignatures(args.Query, nil, err))
	}

	plan, err := w.enumerator.Enumerate(query)
	if err != nil {
		return displayed(w.ui.DisplaySignatures(query, nil, err))
	}

	started := w.now()

	signatures, err := w.orch.Run(ctx, plan, args.Threads)
	if err != nil {
		return displayed(w.ui.DisplaySignatures(plan.Query, nil, err))
	}

	w.log.WithFields(logrus.Fields{
		"genus":      plan.Query.Genus,
		"candidates": len(plan.Candidates),
		"signatures": len(signatures),
		"elapsed":    w.now().Sub(started).String(),
	}).Info("search finished")

	if err := w.ui.DisplaySignatures(plan.Query, signatures, nil); err != nil {
		return fmt.Errorf("display signatures: %w", err)
	}

	if !args.Save {
		return nil
	}

	return w.save(args.Reports, m.Report{Query: plan.Query, Signatures: signatures, CreatedAt: w.now()})
}

func (w *workflow) save(dir m.Path, report m.Report) error {
	path, err := w.store.SaveReport(dir, report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if err := w.store.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate index: %w", err)
	}

	w.log.WithField("path", path).Debug("report saved")
	w.ui.DisplaySaved(path)

	return nil
}

// List displays the candidate orders of the query without searching.
func (w *workflow) List(args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	query, err := w.resolveQuery(args.Query, args.Input)
	if err != nil {
		return displayed(w.ui.DisplayPlan(m.Plan{Query: args.Query}, err))
	}

	plan, err := w.enumerator.Enumerate(query)
	if err != nil {
		return displayed(w.ui.DisplayPlan(m.Plan{Query: query}, err))
	}

	return w.ui.DisplayPlan(plan, nil)
}

// View displays the index of saved reports.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	reports, err := w.store.LoadIndex(args.Reports)
	if err != nil {
		return displayed(w.ui.DisplayReports(nil, err))
	}

	return w.ui.DisplayReports(reports, nil)
}

// resolveQuery merges the query file, if any, with the query given on the
// command line: points and orders are added, and a fixed generator on either
// side wins.
func (w *workflow) resolveQuery(query m.Query, input m.Path) (m.Query, error) {
	if input == "" {
		return query, nil
	}

	fromFile, err := w.queryFiles.Load(input)
	if err != nil {
		return m.Query{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	fromFile.Known = append(fromFile.Known, query.Known...)
	fromFile.Orders = append(fromFile.Orders, query.Orders...)

	if query.Policy == m.RelabelFixed {
		fromFile.Policy = m.RelabelFixed
	}

	w.log.WithFields(logrus.Fields{
		"file":  input,
		"genus": fromFile.Genus,
		"known": len(fromFile.Known),
	}).Debug("query loaded")

	return fromFile, nil
}
