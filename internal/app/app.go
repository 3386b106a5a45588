package app

import (
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/listing"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// Presenter draws the result of a command. Terminal and web front ends implement it.
type Presenter interface {
	Render(view ListView)
	ShowDetail(details models.Details)
	Notify(err error)
}

// App owns the current snapshot and runs commands against it. It is not safe for concurrent use.
type App struct {
	snapshot Snapshot
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures an App
type Option func(*App)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates an App with nothing loaded
func New(logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		snapshot: Snapshot{Jobs: []models.Job{}, Options: listing.Options(nil)},
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot returns the current snapshot
func (a *App) Snapshot() Snapshot {
	return a.snapshot
}

// Handle runs cmd, keeps the resulting snapshot and hands the instruction to p
func (a *App) Handle(cmd Command, p Presenter) {
	next, instr := Reduce(a.snapshot, cmd, a.now())
	a.snapshot = next
	a.log(cmd, instr)
	Present(instr, p)
}

// Present dispatches an instruction to the matching presenter method
func Present(instr Instruction, p Presenter) {
	switch instr.Kind {
	case RenderList:
		p.Render(instr.List)
	case ShowDetail:
		p.ShowDetail(instr.Detail)
	case Notify:
		p.Notify(instr.Err)
	}
}

func (a *App) log(cmd Command, instr Instruction) {
	switch c := cmd.(type) {
	case Load:
		if instr.Kind == Notify {
			a.logger.Warn("job file rejected",
				zap.String("source", c.Source),
				zap.Int("bytes", len(c.Data)),
				zap.String("error_type", string(apperrors.TypeOf(instr.Err))),
				zap.Error(instr.Err))
			return
		}
		a.logger.Info("job file loaded",
			zap.String("source", c.Source),
			zap.Int("jobs", len(a.snapshot.Jobs)),
			zap.Int("unknown_posted_times", len(instr.List.Warnings)))
		for _, w := range instr.List.Warnings {
			a.logger.Debug("posted time degraded to unknown", zap.String("reason", w))
		}
	case Select:
		if instr.Kind == Notify {
			a.logger.Debug("job not found", zap.String("id", c.ID))
		}
	default:
		a.logger.Debug("list rendered",
			zap.String("command", describe(cmd)),
			zap.Int("shown", len(instr.List.Items)),
			zap.Int("total", instr.List.Total))
	}
}

func describe(cmd Command) string {
	switch cmd.(type) {
	case Filter:
		return "filter"
	case Sort:
		return "sort"
	case Query:
		return "query"
	}
	return "unknown"
}

// NotifyOnly wraps p so that only notifications get through. Useful when a load should
// report errors but not draw the unfiltered list.
func NotifyOnly(p Presenter) Presenter {
	return notifyOnly{p}
}

type notifyOnly struct {
	next Presenter
}

func (notifyOnly) Render(ListView) {}

func (notifyOnly) ShowDetail(models.Details) {}

func (n notifyOnly) Notify(err error) { n.next.Notify(err) }
