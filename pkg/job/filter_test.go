package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillstat/pkg/nlp"
)

func sampleJobs() []Job {
	return []Job{
		New("Data Scientist", "Experience in Python, pandas and SQL.", "", ""),
		New("Frontend Developer", "Strong JavaScript and React skills.", "", ""),
	}
}

func TestFilterBlankRoleIsIdentity(t *testing.T) {
	n := nlp.NewNormalizer(nil)
	jobs := sampleJobs()
	for _, role := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, jobs, Filter(jobs, role, n), "role %q", role)
	}
	assert.Nil(t, Filter(nil, "", n))
}

func TestFilterTokenOverlap(t *testing.T) {
	got := Filter(sampleJobs(), "developer", nlp.NewNormalizer(nil))
	require.Len(t, got, 1)
	assert.Equal(t, "Frontend Developer", got[0].Title)
}

func TestFilterMatchesDescriptionTokens(t *testing.T) {
	got := Filter(sampleJobs(), "Senior Pandas Wizard", nlp.NewNormalizer(nil))
	require.Len(t, got, 1)
	assert.Equal(t, "Data Scientist", got[0].Title)
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(sampleJobs(), "nonexistent role xyz", nlp.NewNormalizer(nil))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterSubstringFallback(t *testing.T) {
	n := nlp.NewNormalizer(nil)

	// "front" shares no token with "frontend" but is a substring of it
	got := Filter(sampleJobs(), "Front", n)
	require.Len(t, got, 1)
	assert.Equal(t, "Frontend Developer", got[0].Title)

	// a role made only of stopwords has no tokens; only the substring tier applies
	jobs := []Job{
		New("Engineer", "Join the platform team.", "", ""),
		New("Analyst", "Numbers all day.", "", ""),
	}
	got = Filter(jobs, "the", n)
	require.Len(t, got, 1)
	assert.Equal(t, "Engineer", got[0].Title)
}

func TestFilterIncludesEachJobOnce(t *testing.T) {
	// matches by token and by substring
	jobs := []Job{New("Developer", "developer developer", "", "")}
	got := Filter(jobs, "developer", nlp.NewNormalizer(nil))
	assert.Len(t, got, 1)
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	jobs := []Job{
		New("Go Developer", "", "", ""),
		New("Designer", "", "", ""),
		New("Python Developer", "", "", ""),
		New("Frontend Developer", "", "", ""),
	}
	before := append([]Job(nil), jobs...)

	got := Filter(jobs, "developer", nlp.NewNormalizer(nil))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Go Developer", "Python Developer", "Frontend Developer"},
		[]string{got[0].Title, got[1].Title, got[2].Title})
	assert.Equal(t, before, jobs)
}

func TestFilterIdempotent(t *testing.T) {
	n := nlp.NewNormalizer(nil)
	jobs := append(sampleJobs(),
		New("Data Analyst", "SQL dashboards", "", ""),
		New("", "", "Acme", "Remote"),
	)
	for _, role := range []string{"", "developer", "data", "front", "the", "nonexistent role xyz", "SQL"} {
		once := Filter(jobs, role, n)
		assert.Equal(t, once, Filter(once, role, n), "role %q", role)
	}
}

func TestFilterEmptyFields(t *testing.T) {
	jobs := []Job{{}, New("", "", "Acme", "Berlin")}
	got := Filter(jobs, "acme", nlp.NewNormalizer(nil))
	assert.Empty(t, got)
}
