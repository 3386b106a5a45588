package listing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// FilterBy returns the jobs matching every selected criterion, in input order.
// The input slice is never modified.
func FilterBy(jobs []models.Job, criteria models.Criteria) []models.Job {
	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if criteria.Matches(job) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// SortByTitle returns a copy of jobs ordered by title with English collation.
// Jobs with equal titles keep their relative order.
func SortByTitle(jobs []models.Job, dir models.Direction) []models.Job {
	sorted := clone(jobs)
	col := collate.New(language.English)

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == models.Descending {
			return col.CompareString(sorted[j].Title, sorted[i].Title) < 0
		}
		return col.CompareString(sorted[i].Title, sorted[j].Title) < 0
	})
	return sorted
}

// SortByPostedTime returns a copy of jobs ordered by posted time.
// Jobs with an unknown posted time count as the oldest; ties keep their relative order.
func SortByPostedTime(jobs []models.Job, dir models.Direction) []models.Job {
	sorted := clone(jobs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == models.Descending {
			return sorted[i].PostedAt.After(sorted[j].PostedAt)
		}
		return sorted[i].PostedAt.Before(sorted[j].PostedAt)
	})
	return sorted
}

// ApplySort sorts by title and then, as a second full pass, by posted time.
// The posted time decides the final order; the title pass only survives as the tie-break.
func ApplySort(jobs []models.Job, spec models.SortSpec) []models.Job {
	return SortByPostedTime(SortByTitle(jobs, spec.Title), spec.Posted)
}

// Options collects the distinct non-empty type, level and skill values for the filter dropdowns
func Options(jobs []models.Job) models.FilterOptions {
	opts := models.FilterOptions{
		Types:  []string{},
		Levels: []string{},
		Skills: []string{},
	}
	seenTypes := make(map[string]struct{})
	seenLevels := make(map[string]struct{})
	seenSkills := make(map[string]struct{})

	for _, job := range jobs {
		opts.Types = appendDistinct(opts.Types, seenTypes, job.Type)
		opts.Levels = appendDistinct(opts.Levels, seenLevels, job.Level)
		opts.Skills = appendDistinct(opts.Skills, seenSkills, job.Skill)
	}
	return opts
}

// FindByID returns the job with the given id
func FindByID(jobs []models.Job, id string) (models.Job, bool) {
	for _, job := range jobs {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

func appendDistinct(values []string, seen map[string]struct{}, v string) []string {
	if v == "" {
		return values
	}
	if _, ok := seen[v]; ok {
		return values
	}
	seen[v] = struct{}{}
	return append(values, v)
}

func clone(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	return out
}
