package service

import (
	"context"
	"log/slog"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/repository"
)

// JobService defines job posting operations
type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	DeleteJob(ctx context.Context, id int64) (*models.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
	cache   database.JobListCache
	logger  *slog.Logger
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo repository.JobRepository, cache database.JobListCache, logger *slog.Logger) JobService {
	return &jobService{
		jobRepo: jobRepo,
		cache:   cache,
		logger:  logger,
	}
}

// ListJobs serves the listing from the cache when possible. Cache failures
// fall through to the database. The cache version is read before the
// database so a write that lands in between voids the fill.
func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, found, err := s.cache.GetJobList(ctx)
	if err != nil {
		s.logger.Warn("⚠️ [JobService] Job list cache unavailable", "error", err)
	}
	if found {
		return jobs, nil
	}

	version, versionErr := s.cache.JobListVersion(ctx)

	jobs, err = s.jobRepo.FindAll()
	if err != nil {
		s.logger.Error("❌ [JobService] Failed to list jobs", "error", err)
		return nil, err
	}

	if versionErr != nil {
		s.logger.Warn("⚠️ [JobService] Skipping job list cache fill", "error", versionErr)
		return jobs, nil
	}
	if err := s.cache.SetJobList(ctx, version, jobs); err != nil {
		s.logger.Warn("⚠️ [JobService] Failed to cache job list", "error", err)
	}
	return jobs, nil
}

func (s *jobService) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	if job.Languages == nil {
		job.Languages = []string{}
	}
	if job.Tools == nil {
		job.Tools = []string{}
	}

	if err := s.jobRepo.Create(job); err != nil {
		s.logger.Error("❌ [JobService] Failed to create job", "error", err)
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info("✅ [JobService] Job created", "job_id", job.ID, "company", job.Company)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int64) (*models.Job, error) {
	storeID, err := toStoreID(id, repository.ErrJobNotFound)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Delete(storeID)
	if err != nil {
		s.logger.Error("❌ [JobService] Failed to delete job", "job_id", id, "error", err)
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info("🗑️ [JobService] Job deleted", "job_id", id)
	return job, nil
}

func (s *jobService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateJobList(ctx); err != nil {
		s.logger.Warn("⚠️ [JobService] Failed to invalidate job list cache", "error", err)
	}
}
