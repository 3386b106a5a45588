package app

import (
	"fmt"
	"time"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/listing"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/loader"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// EmptyMessage is shown when a list has nothing to display, filtered or not
const EmptyMessage = "No jobs match the selected filters."

// InvalidFileMessage is shown when an uploaded file is rejected
const InvalidFileMessage = "Invalid file. Please upload a valid job data file."

// Snapshot is the loaded collection. Commands never modify it in place; a load replaces it.
type Snapshot struct {
	Jobs     []models.Job
	Options  models.FilterOptions
	Source   string
	LoadedAt time.Time
	Warnings []string // posted labels degraded to unknown during the load
}

// Loaded reports whether a file has been loaded
func (s Snapshot) Loaded() bool {
	return !s.LoadedAt.IsZero()
}

// Command is one user action
type Command interface {
	command()
}

// Load replaces the collection with the jobs decoded from Data
type Load struct {
	Data   []byte
	Source string
}

// Filter shows the jobs matching Criteria
type Filter struct {
	Criteria models.Criteria
}

// Sort shows the whole collection ordered by Spec
type Sort struct {
	Spec models.SortSpec
}

// Query filters and then, when Sort is set, sorts the filtered jobs
type Query struct {
	Criteria models.Criteria
	Sort     *models.SortSpec
}

// Select shows the details of one job
type Select struct {
	ID string
}

func (Load) command()   {}
func (Filter) command() {}
func (Sort) command()   {}
func (Query) command()  {}
func (Select) command() {}

// InstructionKind says what a presenter has to do
type InstructionKind int

const (
	RenderList InstructionKind = iota
	ShowDetail
	Notify
)

// ListView is everything a presenter needs to draw the job list
type ListView struct {
	Items    []models.Details     `json:"items"`
	Total    int                  `json:"total"`
	Options  models.FilterOptions `json:"options"`
	Criteria models.Criteria      `json:"criteria"`
	Sort     *models.SortSpec     `json:"sort,omitempty"`
	Source   string               `json:"source"`
	LoadedAt time.Time            `json:"loaded_at"`
	Warnings []string             `json:"warnings,omitempty"`
}

// Empty reports whether there is nothing to list
func (v ListView) Empty() bool {
	return len(v.Items) == 0
}

// Instruction is the render step produced by a command
type Instruction struct {
	Kind   InstructionKind
	List   ListView
	Detail models.Details
	Err    error
}

// Reduce applies cmd to s and returns the next snapshot and what to present. It has no side effects.
func Reduce(s Snapshot, cmd Command, now time.Time) (Snapshot, Instruction) {
	switch c := cmd.(type) {
	case Load:
		res, err := loader.Decode(c.Data, now)
		if err != nil {
			return s, Instruction{Kind: Notify, Err: err}
		}
		next := Snapshot{
			Jobs:     res.Jobs,
			Options:  listing.Options(res.Jobs),
			Source:   c.Source,
			LoadedAt: now,
		}
		for _, w := range res.Warnings {
			next.Warnings = append(next.Warnings, w.Error())
		}
		view := listView(next, next.Jobs, models.Criteria{}, nil, now)
		view.Warnings = next.Warnings
		return next, Instruction{Kind: RenderList, List: view}

	case Filter:
		return s, Instruction{Kind: RenderList, List: listView(s, listing.FilterBy(s.Jobs, c.Criteria), c.Criteria, nil, now)}

	case Sort:
		spec := c.Spec
		return s, Instruction{Kind: RenderList, List: listView(s, listing.ApplySort(s.Jobs, spec), models.Criteria{}, &spec, now)}

	case Query:
		jobs := listing.FilterBy(s.Jobs, c.Criteria)
		if c.Sort != nil {
			jobs = listing.ApplySort(jobs, *c.Sort)
		}
		return s, Instruction{Kind: RenderList, List: listView(s, jobs, c.Criteria, c.Sort, now)}

	case Select:
		job, ok := listing.FindByID(s.Jobs, c.ID)
		if !ok {
			return s, Instruction{Kind: Notify, Err: apperrors.NotFound(fmt.Sprintf("job %q is not in the loaded file", c.ID), nil)}
		}
		return s, Instruction{Kind: ShowDetail, Detail: job.Details(now)}
	}

	return s, Instruction{Kind: Notify, Err: apperrors.InvalidInput(fmt.Sprintf("unsupported command %T", cmd), nil)}
}

func listView(s Snapshot, jobs []models.Job, criteria models.Criteria, spec *models.SortSpec, now time.Time) ListView {
	items := make([]models.Details, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, job.Details(now))
	}
	return ListView{
		Items:    items,
		Total:    len(s.Jobs),
		Options:  s.Options,
		Criteria: criteria,
		Sort:     spec,
		Source:   s.Source,
		LoadedAt: s.LoadedAt,
	}
}
