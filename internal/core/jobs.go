package core

import (
	"context"
	"errors"
	"time"

	apperrors "vagas/internal/errors"
	"vagas/internal/events"
	"vagas/internal/repository"
	"vagas/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type JobService struct {
	logs   *zap.SugaredLogger
	jobs   JobRepository
	events EventPublisher
}

func NewJobService(logger *zap.SugaredLogger, jobs JobRepository, publisher EventPublisher) *JobService {
	return &JobService{
		logs:   logger,
		jobs:   jobs,
		events: publisher,
	}
}

func (s *JobService) ListJobs(ctx context.Context) ([]JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobService.ListJobs")
	defer span.End()

	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, telemetry.Fail(span, s.storeError("list jobs", err))
	}

	postings := make([]JobPosting, len(jobs))
	for i, job := range jobs {
		postings[i] = toJobPosting(job)
	}
	return postings, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobService.GetJob")
	defer span.End()

	job, err := s.jobs.GetJobByID(ctx, id)
	if err != nil {
		return JobPosting{}, telemetry.Fail(span, s.storeError("get job", err))
	}
	return toJobPosting(job), nil
}

// CreateJob stores a new posting owned by ownerID. A zero ownerID leaves the
// posting without an owner.
func (s *JobService) CreateJob(ctx context.Context, ownerID uint, draft JobDraft) (JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobService.CreateJob")
	defer span.End()

	if err := draft.Validate(); err != nil {
		return JobPosting{}, telemetry.Fail(span, apperrors.InvalidInput(err.Error(), err))
	}

	job := draft.toJob()
	if ownerID != 0 {
		job.CreatedByID = &ownerID
	}

	job, err := s.jobs.CreateJob(ctx, job)
	if err != nil {
		return JobPosting{}, telemetry.Fail(span, s.storeError("create job", err))
	}

	span.SetAttributes(attribute.Int64("job.id", int64(job.ID)))
	s.logs.Infow("job created", "job_id", job.ID, "owner_id", ownerID)
	s.publish(ctx, events.SubjectJobCreated, job)

	return toJobPosting(job), nil
}

// ReplaceJob overwrites every editable field of the posting with id.
func (s *JobService) ReplaceJob(ctx context.Context, id uint, draft JobDraft) (JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobService.ReplaceJob")
	defer span.End()

	span.SetAttributes(attribute.Int64("job.id", int64(id)))

	if err := draft.Validate(); err != nil {
		return JobPosting{}, telemetry.Fail(span, apperrors.InvalidInput(err.Error(), err))
	}

	job, err := s.jobs.UpdateJob(ctx, id, draft.toJob())
	if err != nil {
		return JobPosting{}, telemetry.Fail(span, s.storeError("update job", err))
	}

	s.logs.Infow("job updated", "job_id", job.ID)
	s.publish(ctx, events.SubjectJobUpdated, job)

	return toJobPosting(job), nil
}

func (s *JobService) DeleteJob(ctx context.Context, id uint) (JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobService.DeleteJob")
	defer span.End()

	span.SetAttributes(attribute.Int64("job.id", int64(id)))

	job, err := s.jobs.DeleteJob(ctx, id)
	if err != nil {
		return JobPosting{}, telemetry.Fail(span, s.storeError("delete job", err))
	}

	s.logs.Infow("job deleted", "job_id", job.ID)
	s.publish(ctx, events.SubjectJobDeleted, job)

	return toJobPosting(job), nil
}

// publish never fails the caller; the write already happened.
func (s *JobService) publish(ctx context.Context, subject string, job repository.Job) {
	event := events.JobEvent{
		ID:         job.ID,
		Title:      job.Title,
		Company:    job.Company,
		Status:     string(job.Status),
		OccurredAt: time.Now().UTC(),
	}

	if err := s.events.Publish(ctx, subject, event); err != nil {
		s.logs.Warnw("could not publish job event", "subject", subject, "job_id", job.ID, "error", err)
	}
}

func (s *JobService) storeError(op string, err error) error {
	if errors.Is(err, repository.ErrJobNotFound) {
		return apperrors.NotFound("job not found", err)
	}
	s.logs.Errorw("job store failure", "operation", op, "error", err)
	return apperrors.Internal("could not "+op, err)
}
