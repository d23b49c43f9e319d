package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacaturebord/internal/database"
	"vacaturebord/internal/dtos"
	"vacaturebord/internal/models"
	"vacaturebord/internal/storage"
	"vacaturebord/internal/validation"
)

func newTestServices(t *testing.T) (*JobService, *ApplicationService) {
	t.Helper()

	db := database.Connect(":memory:")
	uploads, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	return NewJobService(db, uploads), NewApplicationService(db, uploads)
}

func jobRequest(title string, categories ...string) dtos.JobCreationRequest {
	return dtos.JobCreationRequest{
		Title:       title,
		Hours:       "40",
		Rate:        "35",
		Description: "Omschrijving voor " + title,
		Categories:  categories,
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	jobs, _ := newTestServices(t)

	req := dtos.JobCreationRequest{
		Title:       "Installatiemonteur",
		Hours:       "36",
		Rate:        "42.75",
		Description: "Monteur voor warmtepompen.",
		Duration:    "6 maanden",
		StartDate:   "2026-10-01",
		Location:    "Zwolle",
		Company:     "Techniek BV",
		Categories:  []string{"techniek", "bouw"},
	}

	created, err := jobs.Create(req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := jobs.Get(created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Installatiemonteur", got.Title)
	assert.Equal(t, 36, got.Hours)
	assert.Equal(t, 42.75, got.Rate)
	assert.Equal(t, "Monteur voor warmtepompen.", got.Description)
	assert.Equal(t, "6 maanden", got.Duration)
	assert.Equal(t, "Zwolle", got.Location)
	assert.Equal(t, "Techniek BV", got.Company)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2026-10-01", got.StartDate.Format("2006-01-02"))

	slugs := make([]string, 0, len(got.Categories))
	for _, c := range got.Categories {
		slugs = append(slugs, c.Slug)
	}
	assert.ElementsMatch(t, []string{"techniek", "bouw"}, slugs)
}

func TestCreateRejectsInvalidSubmission(t *testing.T) {
	jobs, _ := newTestServices(t)

	req := jobRequest("")
	req.Hours = "0"

	_, err := jobs.Create(req)
	require.Error(t, err)
	verr, ok := err.(*validation.ValidationError)
	require.True(t, ok)
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("hours"))
}

func TestCreateIgnoresUnknownCategorySlugs(t *testing.T) {
	jobs, _ := newTestServices(t)

	created, err := jobs.Create(jobRequest("Dakdekker", "bouw", "bestaatniet"))
	require.NoError(t, err)

	got, err := jobs.Get(created.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "bouw", got.Categories[0].Slug)
}

func TestListNewestFirst(t *testing.T) {
	jobs, _ := newTestServices(t)

	for _, title := range []string{"Eerste", "Tweede", "Derde"} {
		_, err := jobs.Create(jobRequest(title))
		require.NoError(t, err)
	}

	list, err := jobs.List(nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Derde", list[0].Title)
	assert.Equal(t, "Tweede", list[1].Title)
	assert.Equal(t, "Eerste", list[2].Title)
}

func TestListCategoryFilterMatchesAny(t *testing.T) {
	jobs, _ := newTestServices(t)

	_, err := jobs.Create(jobRequest("Sloper", "bouw", "milieu"))
	require.NoError(t, err)
	_, err = jobs.Create(jobRequest("Metselaar", "bouw"))
	require.NoError(t, err)
	_, err = jobs.Create(jobRequest("Makelaar", "wonen"))
	require.NoError(t, err)

	titles := func(list []models.Job) []string {
		out := make([]string, 0, len(list))
		for _, j := range list {
			out = append(out, j.Title)
		}
		return out
	}

	list, err := jobs.List([]string{"bouw"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sloper", "Metselaar"}, titles(list))

	// OR semantics: one matching slug is enough
	list, err = jobs.List([]string{"bouw", "wonen"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Sloper", "Metselaar", "Makelaar"}, titles(list))

	list, err = jobs.List([]string{"onbekend"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// empty filter means no filter
	list, err = jobs.List(nil)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestGetUnknownID(t *testing.T) {
	jobs, _ := newTestServices(t)

	_, err := jobs.Get(999)
	assert.ErrorIs(t, err, models.ErrJobNotFound)
}

func TestDeleteCascadesToApplications(t *testing.T) {
	jobs, apps := newTestServices(t)

	created, err := jobs.Create(jobRequest("Stratenmaker", "bouw"))
	require.NoError(t, err)

	_, err = apps.Create(created.ID, dtos.ApplicationRequest{
		Name:  "Jan",
		Email: "jan@example.com",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, jobs.Delete(created.ID))

	_, err = jobs.Get(created.ID)
	assert.ErrorIs(t, err, models.ErrJobNotFound)

	remaining, err := apps.ListByJob(created.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	jobs, _ := newTestServices(t)
	assert.NoError(t, jobs.Delete(12345))
}

func TestListWithApplications(t *testing.T) {
	jobs, apps := newTestServices(t)

	created, err := jobs.Create(jobRequest("Hovenier", "milieu"))
	require.NoError(t, err)
	_, err = apps.Create(created.ID, dtos.ApplicationRequest{
		Name:  "Kees",
		Email: "kees@example.com",
	}, nil)
	require.NoError(t, err)

	overview, err := jobs.ListWithApplications()
	require.NoError(t, err)
	require.Len(t, overview, 1)
	require.Len(t, overview[0].Applications, 1)
	assert.Equal(t, "Kees", overview[0].Applications[0].Name)
}
