package repository

import (
	"context"
	"errors"
	"fmt"

	"vagas/internal/db"
)

var ErrJobNotFound error = errors.New("job not found")

// columns a full replacement never touches
var jobImmutableColumns = []string{"CreatedAt", "CreatedByID", "CreatedBy"}

type JobRepository struct {
	db Database
}

func NewJobRepository(db Database) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

func (r *JobRepository) ListJobs(ctx context.Context) ([]Job, error) {
	jobs := []Job{}
	err := r.db.GetAll(ctx, &jobs)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) GetJobByID(ctx context.Context, id uint) (Job, error) {
	var job Job

	err := r.db.GetBy(ctx, "id", id, &job)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, fmt.Errorf("get job by id: %w", err)
	}

	return job, nil
}

func (r *JobRepository) CreateJob(ctx context.Context, job Job) (Job, error) {
	err := r.db.Create(ctx, &job)
	if err != nil {
		return Job{}, fmt.Errorf("create job: %w", err)
	}

	return job, nil
}

// UpdateJob replaces every editable column of the job with id.
func (r *JobRepository) UpdateJob(ctx context.Context, id uint, job Job) (Job, error) {
	job.ID = id

	err := r.db.Update(ctx, &job, jobImmutableColumns...)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, fmt.Errorf("update job: %w", err)
	}

	return r.GetJobByID(ctx, id)
}

func (r *JobRepository) DeleteJob(ctx context.Context, id uint) (Job, error) {
	var job Job

	err := r.db.Delete(ctx, &job, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, fmt.Errorf("delete job: %w", err)
	}

	return job, nil
}
