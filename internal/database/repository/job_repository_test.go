package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/testutil"
)

func TestJobRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewJobRepository(db)

	job := testutil.NewJob("photosnap")
	require.NoError(t, repo.Create(job))
	assert.NotZero(t, job.ID)

	jobs, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	found := jobs[0]
	assert.Equal(t, job.ID, found.ID)
	assert.Equal(t, "photosnap", found.Company)
	assert.Equal(t, "1d ago", found.PostedAt)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, []string(found.Languages))
	assert.Equal(t, []string{"React"}, []string(found.Tools))
}

func TestJobRepository_CreateWithoutTags(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewJobRepository(db)

	job := testutil.NewJob("account")
	job.Languages = []string{}
	job.Tools = []string{}
	require.NoError(t, repo.Create(job))

	jobs, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Empty(t, jobs[0].Languages)
	assert.Empty(t, jobs[0].Tools)
}

func TestJobRepository_FindAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewJobRepository(db)

	jobs, err := repo.FindAll()
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)

	testutil.SeedJob(t, db, "first")
	testutil.SeedJob(t, db, "second")

	jobs, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "first", jobs[0].Company)
	assert.Equal(t, "second", jobs[1].Company)
}

func TestJobRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)

	user := &models.User{Email: "keeper@example.com", Password: "x"}
	require.NoError(t, userRepo.Create(user))
	job := testutil.SeedJob(t, db, "loop")
	kept := testutil.SeedJob(t, db, "faceit")
	_, err := userRepo.SaveJob(user.ID, job.ID)
	require.NoError(t, err)
	_, err = userRepo.SaveJob(user.ID, kept.ID)
	require.NoError(t, err)

	deleted, err := jobRepo.Delete(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "loop", deleted.Company)

	// The user survives and only loses the deleted job
	reloaded, err := userRepo.FindWithSavedJobs(user.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.SavedJobs, 1)
	assert.Equal(t, kept.ID, reloaded.SavedJobs[0].ID)

	_, err = jobRepo.Delete(job.ID)
	assert.ErrorIs(t, err, repository.ErrJobNotFound)
}
