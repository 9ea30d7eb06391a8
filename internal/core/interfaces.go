// Package core defines the repository contracts the service layer depends on.
package core

import (
	"context"

	"github.com/jobdesk/jobdesk-api/internal/domain/model"
)

// JobRepository is the persistence contract for jobs.
type JobRepository interface {
	// Create inserts a new job; the store assigns the id.
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	// GetByID retrieves a job by id.
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	// List retrieves jobs matching the filter criteria.
	List(ctx context.Context, filters model.JobFilters) ([]*model.Job, error)
	// Update applies a partial update; only supplied fields change.
	Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error)
	// Delete removes a job by id.
	Delete(ctx context.Context, id int64) error
}
