// Package generator turns a route tree into a tree of stub files.
//
// Generation runs in two phases. Planning walks the tree on the calling
// goroutine and produces an ordered, deduplicated list of file writes.
// Execution runs those writes on a bounded errgroup and returns once every
// write has settled, with one Outcome per planned entry.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	billy "github.com/go-git/go-billy/v5"
	"golang.org/x/sync/errgroup"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/template"
	"github.com/modu-ai/routegen/pkg/models"
)

// Generator materializes route trees under one output folder of a
// filesystem. A Generator holds no per-call state and may be reused.
type Generator struct {
	fsys      billy.Filesystem
	root      string
	stubs     *template.Stubs
	logger    *slog.Logger
	onOutcome func(Outcome)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-file outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithStubs replaces the built-in stub bodies.
func WithStubs(s *template.Stubs) Option {
	return func(g *Generator) {
		if s != nil {
			g.stubs = s
		}
	}
}

// WithOutcomeHook registers fn to be called after each entry settles.
// Calls are serialized.
func WithOutcomeHook(fn func(Outcome)) Option {
	return func(g *Generator) {
		g.onOutcome = fn
	}
}

// New creates a Generator writing below outputFolder inside fsys.
func New(fsys billy.Filesystem, outputFolder string, opts ...Option) *Generator {
	g := &Generator{
		fsys:   fsys,
		root:   outputFolder,
		stubs:  template.NewStubs(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// @MX:ANCHOR: [AUTO] Plan is the synchronous half of every generation call.
// @MX:REASON: [AUTO] fan_in=3, used by Generate, the --dry-run path and tests
// Plan walks nodes and returns the file writes Generate would perform. It
// touches no files. An unsupported suffix or unrenderable stub fails the
// whole call.
func (g *Generator) Plan(nodes []models.RouteNode, opts config.Options) (*Plan, error) {
	body, err := g.stubs.Body(opts)
	if err != nil {
		return nil, fmt.Errorf("select template: %w", err)
	}

	p := newPlanner(g.fsys, g.root, opts, body)
	p.walk(nodes, nil)
	return &Plan{Entries: p.entries, Concurrency: opts.Concurrency}, nil
}

// Generate plans nodes and executes the plan.
func (g *Generator) Generate(ctx context.Context, nodes []models.RouteNode, opts config.Options) (*Report, error) {
	plan, err := g.Plan(nodes, opts)
	if err != nil {
		return nil, err
	}
	return g.Execute(ctx, plan)
}

// @MX:NOTE: [AUTO] Each job owns one pre-allocated slot of Outcomes, so the report order is the plan order.
// Execute runs the plan and waits for every write. Filesystem failures are
// recorded as failed outcomes and never abort the run. If ctx is cancelled,
// entries not yet started are marked failed and the context error is
// returned together with the report.
func (g *Generator) Execute(ctx context.Context, plan *Plan) (*Report, error) {
	report := &Report{Outcomes: make([]Outcome, len(plan.Entries))}
	fsys := &lockedFS{Filesystem: g.fsys}

	var hookMu sync.Mutex
	settle := func(i int, o Outcome) {
		report.Outcomes[i] = o
		g.log(o)
		if g.onOutcome != nil {
			hookMu.Lock()
			g.onOutcome(o)
			hookMu.Unlock()
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(plan.Concurrency, 1))

	for i, entry := range plan.Entries {
		switch {
		case entry.Err != nil:
			settle(i, failed(entry, entry.Err))
			continue
		case entry.Duplicate:
			settle(i, Outcome{Name: entry.Name, Path: entry.Target, Status: models.StatusSkipped, Reason: ErrDuplicateTarget.Error()})
			continue
		}
		if ctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			settle(i, g.write(fsys, entry))
			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for i, entry := range plan.Entries {
			if report.Outcomes[i].Status == "" {
				report.Outcomes[i] = failed(entry, err)
			}
		}
	}

	report.tally()
	if err != nil {
		return report, fmt.Errorf("generate: %w", err)
	}
	return report, nil
}

func (g *Generator) write(fsys billy.Filesystem, e Entry) Outcome {
	if _, _, err := EnsureDirectory(fsys, e.Dir); err != nil {
		return failed(e, err)
	}
	created, err := EnsureFile(fsys, e.Target, e.Content)
	if err != nil {
		return failed(e, err)
	}
	if !created {
		return Outcome{Name: e.Name, Path: e.Target, Status: models.StatusSkipped, Reason: "already exists"}
	}
	return Outcome{Name: e.Name, Path: e.Target, Status: models.StatusCreated}
}

func (g *Generator) log(o Outcome) {
	switch o.Status {
	case models.StatusCreated:
		g.logger.Debug("file created", "path", o.Path, "name", o.Name)
	case models.StatusSkipped:
		g.logger.Info("file skipped", "path", o.Path, "reason", o.Reason)
	case models.StatusFailed:
		g.logger.Warn("file failed", "path", o.Path, "error", o.Reason)
	}
}

func failed(e Entry, err error) Outcome {
	return Outcome{Name: e.Name, Path: e.Target, Status: models.StatusFailed, Reason: err.Error()}
}
