package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func job(title string, age time.Duration, typ, level, skill string) models.Job {
	j := models.Job{Title: title, Type: typ, Level: level, Skill: skill, ID: title + "/" + age.String()}
	if age >= 0 {
		j.PostedAt = now.Add(-age)
	}
	return j
}

func titles(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func sample() []models.Job {
	return []models.Job{
		job("Backend Engineer", 2*time.Hour, "FT", "Jr", "Go"),
		job("Analyst", 30*time.Minute, "PT", "Sr", "SQL"),
		job("Backend Engineer", 5*time.Hour, "FT", "Sr", "Go"),
		job("Designer", 3*24*time.Hour, "Contract", "Jr", "Figma"),
		job("Analyst", 2*time.Hour, "FT", "Jr", "SQL"),
	}
}

func TestFilterBy(t *testing.T) {
	jobs := sample()

	tests := []struct {
		name     string
		criteria models.Criteria
		want     []string
	}{
		{"by type", models.Criteria{Type: "FT"}, []string{"Backend Engineer", "Backend Engineer", "Analyst"}},
		{"by level and skill", models.Criteria{Level: "Jr", Skill: "Go"}, []string{"Backend Engineer"}},
		{"no match", models.Criteria{Skill: "Rust"}, []string{}},
		{"case sensitive", models.Criteria{Type: "ft"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(FilterBy(jobs, tt.criteria)))
		})
	}
}

func TestFilterByWithNoCriteriaIsIdentity(t *testing.T) {
	jobs := sample()
	assert.Equal(t, jobs, FilterBy(jobs, models.Criteria{}))
}

func TestFilterByIsIdempotent(t *testing.T) {
	jobs := sample()
	for _, c := range []models.Criteria{{Type: "FT"}, {Level: "Jr"}, {Type: "FT", Skill: "SQL"}, {}} {
		once := FilterBy(jobs, c)
		assert.Equal(t, once, FilterBy(once, c))
	}
}

func TestFilterByDoesNotMutateInput(t *testing.T) {
	jobs := sample()
	before := append([]models.Job(nil), jobs...)
	_ = FilterBy(jobs, models.Criteria{Level: "Sr"})
	assert.Equal(t, before, jobs)
}

func TestEmptyCollection(t *testing.T) {
	assert.Empty(t, FilterBy(nil, models.Criteria{Type: "FT"}))
	assert.NotNil(t, FilterBy(nil, models.Criteria{}))
	assert.Empty(t, SortByTitle(nil, models.Ascending))
	assert.Empty(t, SortByPostedTime([]models.Job{}, models.Descending))
	assert.Empty(t, ApplySort(nil, models.SortSpec{Title: models.Ascending, Posted: models.Ascending}))
}

func TestSortByTitle(t *testing.T) {
	jobs := []models.Job{
		job("zebra", 0, "", "", ""),
		job("Banana", 0, "", "", ""),
		job("éclair", 0, "", "", ""),
		job("apple", 0, "", "", ""),
		job("eagle", 0, "", "", ""),
	}

	assert.Equal(t, []string{"apple", "Banana", "eagle", "éclair", "zebra"}, titles(SortByTitle(jobs, models.Ascending)))
	assert.Equal(t, []string{"zebra", "éclair", "eagle", "Banana", "apple"}, titles(SortByTitle(jobs, models.Descending)))
	assert.Equal(t, "zebra", jobs[0].Title, "input must stay untouched")
}

func TestSortByTitleIsStable(t *testing.T) {
	jobs := sample()

	asc := SortByTitle(jobs, models.Ascending)
	assert.Equal(t, []string{
		"Analyst/30m0s", "Analyst/2h0m0s",
		"Backend Engineer/2h0m0s", "Backend Engineer/5h0m0s",
		"Designer/72h0m0s",
	}, ids(asc))

	desc := SortByTitle(jobs, models.Descending)
	assert.Equal(t, []string{
		"Designer/72h0m0s",
		"Backend Engineer/2h0m0s", "Backend Engineer/5h0m0s",
		"Analyst/30m0s", "Analyst/2h0m0s",
	}, ids(desc))
}

func TestSortByPostedTime(t *testing.T) {
	jobs := sample()

	assert.Equal(t, []string{"Designer", "Backend Engineer", "Backend Engineer", "Analyst", "Analyst"},
		titles(SortByPostedTime(jobs, models.Ascending)))
	assert.Equal(t, []string{"Analyst/30m0s", "Backend Engineer/2h0m0s", "Analyst/2h0m0s", "Backend Engineer/5h0m0s", "Designer/72h0m0s"},
		ids(SortByPostedTime(jobs, models.Descending)), "equal times keep input order")
}

func TestSortByPostedTimeUnknownIsOldest(t *testing.T) {
	jobs := []models.Job{
		job("known-new", time.Minute, "", "", ""),
		job("unknown", -1, "", "", ""),
		job("known-old", 24*time.Hour, "", "", ""),
	}

	assert.Equal(t, []string{"unknown", "known-old", "known-new"}, titles(SortByPostedTime(jobs, models.Ascending)))
	assert.Equal(t, []string{"known-new", "known-old", "unknown"}, titles(SortByPostedTime(jobs, models.Descending)))
}

func TestApplySortPostedTimeDominates(t *testing.T) {
	jobs := sample()

	got := ApplySort(jobs, models.SortSpec{Title: models.Ascending, Posted: models.Descending})
	// the two 2h-old jobs are ordered by the title pass: Analyst before Backend Engineer
	assert.Equal(t, []string{"Analyst/30m0s", "Analyst/2h0m0s", "Backend Engineer/2h0m0s", "Backend Engineer/5h0m0s", "Designer/72h0m0s"}, ids(got))

	got = ApplySort(jobs, models.SortSpec{Title: models.Descending, Posted: models.Descending})
	assert.Equal(t, []string{"Analyst/30m0s", "Backend Engineer/2h0m0s", "Analyst/2h0m0s", "Backend Engineer/5h0m0s", "Designer/72h0m0s"}, ids(got))
}

func twoRecordScenario(t *testing.T) []models.Job {
	t.Helper()
	raws := []RawFields{
		{"Title": "B", "Posted": "2 hours ago", "Type": "FT", "Level": "Jr", "Skill": "X"},
		{"Title": "A", "Posted": "1 hour ago", "Type": "FT", "Level": "Jr", "Skill": "Y"},
	}
	jobs := make([]models.Job, 0, len(raws))
	for i, raw := range raws {
		j, err := MakeJobRecord(raw, i, now)
		require.NoError(t, err)
		jobs = append(jobs, j)
	}
	return jobs
}

func TestScenarioFilterBySkill(t *testing.T) {
	jobs := twoRecordScenario(t)
	filtered := FilterBy(jobs, models.Criteria{Skill: "Y"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "A", filtered[0].Title)
}

func TestScenarioTitleAscThenPostedDesc(t *testing.T) {
	jobs := twoRecordScenario(t)
	sorted := SortByPostedTime(SortByTitle(jobs, models.Ascending), models.Descending)
	assert.Equal(t, []string{"A", "B"}, titles(sorted))
	assert.Equal(t, titles(sorted), titles(ApplySort(jobs, models.SortSpec{Title: models.Ascending, Posted: models.Descending})))
}

func TestOptions(t *testing.T) {
	jobs := append(sample(), job("Intern", time.Hour, "", "Intern", ""))

	opts := Options(jobs)
	assert.Equal(t, []string{"FT", "PT", "Contract"}, opts.Types)
	assert.Equal(t, []string{"Jr", "Sr", "Intern"}, opts.Levels)
	assert.Equal(t, []string{"Go", "SQL", "Figma"}, opts.Skills)

	empty := Options(nil)
	assert.NotNil(t, empty.Types)
	assert.Empty(t, empty.Skills)
}

func TestFindByID(t *testing.T) {
	jobs := sample()
	got, ok := FindByID(jobs, "Designer/72h0m0s")
	require.True(t, ok)
	assert.Equal(t, "Designer", got.Title)

	_, ok = FindByID(jobs, "missing")
	assert.False(t, ok)
}
