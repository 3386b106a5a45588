package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/utils"
)

func TestCriteriaMatches(t *testing.T) {
	job := Job{Title: "Go Developer", Type: "FT", Level: "Jr", Skill: "Go"}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{"no criteria", Criteria{}, true},
		{"type match", Criteria{Type: "FT"}, true},
		{"all match", Criteria{Type: "FT", Level: "Jr", Skill: "Go"}, true},
		{"level mismatch", Criteria{Level: "Sr"}, false},
		{"case sensitive", Criteria{Skill: "go"}, false},
		{"one of three mismatches", Criteria{Type: "FT", Level: "Jr", Skill: "Rust"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(job))
		})
	}
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{Level: "Jr"}.IsEmpty())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"asc":        Ascending,
		"ASC":        Ascending,
		"ascending":  Ascending,
		" desc ":     Descending,
		"Descending": Descending,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("newest")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidInput))
}

func TestJobDetails(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	job := Job{
		ID:       "id-1",
		Title:    "Data Engineer",
		PostedAt: now.Add(-3 * time.Hour),
		Type:     "Contract",
		Level:    "Mid",
		Skill:    "SQL",
		Detail:   "Pipelines",
	}

	assert.True(t, job.HasPostedAt())
	assert.Equal(t, Details{
		ID:     "id-1",
		Title:  "Data Engineer",
		Posted: "3 hours ago",
		Type:   "Contract",
		Level:  "Mid",
		Skill:  "SQL",
		Detail: "Pipelines",
	}, job.Details(now))

	job.PostedAt = time.Time{}
	assert.False(t, job.HasPostedAt())
	assert.Equal(t, utils.UnknownTime, job.Details(now).Posted)
}

func TestResolveSortSpec(t *testing.T) {
	def := SortSpec{Title: Ascending, Posted: Descending}

	spec, err := ResolveSortSpec("", " ", def)
	require.NoError(t, err)
	assert.Nil(t, spec)

	spec, err = ResolveSortSpec("desc", "", def)
	require.NoError(t, err)
	assert.Equal(t, &SortSpec{Title: Descending, Posted: Descending}, spec)

	spec, err = ResolveSortSpec("", "asc", def)
	require.NoError(t, err)
	assert.Equal(t, &SortSpec{Title: Ascending, Posted: Ascending}, spec)

	_, err = ResolveSortSpec("asc", "latest", def)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInvalidInput))
}
