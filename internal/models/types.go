package models

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
)

// Job represents one job posting loaded from a file
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PostedLabel string    `json:"posted_label"`
	PostedAt    time.Time `json:"posted_at"` // zero when PostedLabel could not be parsed
	Type        string    `json:"type"`
	Level       string    `json:"level"`
	Skill       string    `json:"skill"`
	Detail      string    `json:"detail"`
}

// HasPostedAt reports whether the posted time of the job is known
func (j Job) HasPostedAt() bool {
	return !j.PostedAt.IsZero()
}

// Details returns the display fields of the job, with the posted time formatted relative to now
func (j Job) Details(now time.Time) Details {
	return Details{
		ID:     j.ID,
		Title:  j.Title,
		Posted: utils.FormatRelative(j.PostedAt, now),
		Type:   j.Type,
		Level:  j.Level,
		Skill:  j.Skill,
		Detail: j.Detail,
	}
}

// Details holds the fields a presenter shows for one job
type Details struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Posted string `json:"posted"`
	Type   string `json:"type"`
	Level  string `json:"level"`
	Skill  string `json:"skill"`
	Detail string `json:"detail"`
}

// Criteria holds the selected filter values. An empty field places no constraint.
type Criteria struct {
	Type  string `json:"type,omitempty"`
	Level string `json:"level,omitempty"`
	Skill string `json:"skill,omitempty"`
}

// IsEmpty reports whether no filter value is selected
func (c Criteria) IsEmpty() bool {
	return c.Type == "" && c.Level == "" && c.Skill == ""
}

// Matches reports whether the job satisfies every selected value (exact, case-sensitive)
func (c Criteria) Matches(j Job) bool {
	if c.Type != "" && j.Type != c.Type {
		return false
	}
	if c.Level != "" && j.Level != c.Level {
		return false
	}
	if c.Skill != "" && j.Skill != c.Skill {
		return false
	}
	return true
}

// Direction is a sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" and their long forms
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", apperrors.InvalidInput(fmt.Sprintf("sort direction %q: must be asc or desc", s), nil)
}

// SortSpec is the pair of sort directives applied together: title first, then posted time
type SortSpec struct {
	Title  Direction `json:"title" yaml:"title"`
	Posted Direction `json:"posted" yaml:"posted"`
}

// ResolveSortSpec builds a SortSpec from user supplied directions. It returns nil when both are
// empty; when only one is given the other comes from def.
func ResolveSortSpec(title, posted string, def SortSpec) (*SortSpec, error) {
	title, posted = strings.TrimSpace(title), strings.TrimSpace(posted)
	if title == "" && posted == "" {
		return nil, nil
	}

	spec := def
	if title != "" {
		dir, err := ParseDirection(title)
		if err != nil {
			return nil, err
		}
		spec.Title = dir
	}
	if posted != "" {
		dir, err := ParseDirection(posted)
		if err != nil {
			return nil, err
		}
		spec.Posted = dir
	}
	return &spec, nil
}

// FilterOptions holds the distinct values offered by each filter, in first-seen order
type FilterOptions struct {
	Types  []string `json:"types"`
	Levels []string `json:"levels"`
	Skills []string `json:"skills"`
}
