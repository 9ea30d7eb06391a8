package service

import (
	"context"

	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"

	"github.com/jobdesk/jobdesk-api/internal/core"
	"github.com/jobdesk/jobdesk-api/internal/domain/model"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	JobRepo core.JobRepository
}

// JobService runs the validate-then-execute pipeline for job operations.
// Requests that fail validation never reach the repository.
type JobService struct {
	jobs core.JobRepository
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{jobs: opts.JobRepo}
}

// Create validates the request and inserts a new job.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required.")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.jobs.Create(ctx, req)
}

// List validates the normalized query and returns matching jobs.
func (s *JobService) List(ctx context.Context, query *model.JobListQuery) ([]*model.Job, error) {
	if query == nil {
		query = &model.JobListQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.jobs.List(ctx, query.Filters())
}

// GetByID retrieves a job by id.
func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Update validates the patch and applies it. Empty patches are rejected
// before any store access.
func (s *JobService) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, id, req)
}

// Delete removes a job by id.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobs.Delete(ctx, id)
}
