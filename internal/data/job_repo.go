package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jobdesk/jobdesk-api/internal/data/database"
	"github.com/jobdesk/jobdesk-api/internal/data/pgxutil"
	"github.com/jobdesk/jobdesk-api/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"
)

// JobRepo provides database operations for jobs.
type JobRepo struct {
	DB *sql.DB
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db}
}

// The equity column is NUMERIC; selecting it as text keeps the decimal form
// exact for the string-backed model.Equity type.
const jobColumns = `id, title, salary, equity::text AS equity, company_handle, created_at, updated_at`

const jobGetByIDQuery = `
	SELECT ` + jobColumns + `
	FROM jobs
	WHERE id = $1`

// Create inserts a new job. The row id and timestamps are store-assigned.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required.")
	}

	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (title, salary, equity, company_handle)
			VALUES ($1, $2, $3, $4)
			RETURNING `+jobColumns,
			strings.TrimSpace(req.Title),
			req.Salary,
			req.Equity,
			strings.TrimSpace(req.CompanyHandle),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("Job %d not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves jobs matching the filter criteria, ordered by id.
func (r *JobRepo) List(ctx context.Context, filters model.JobFilters) ([]*model.Job, error) {
	query, args := database.BuildListQuery(buildJobQueryOptions(filters))

	var rowsOut []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("failed to list jobs: %w", err))
	}

	res := make([]*model.Job, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update applies a partial update. Only supplied fields change; updated_at is
// always stamped.
func (r *JobRepo) Update(ctx context.Context, id int64, req model.UpdateJobRequest) (*model.Job, error) {
	setClause, args := buildJobUpdateClause(req)
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		args = append(args, id)
		query := "UPDATE jobs SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING " + jobColumns
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundf("Job %d not found", id)
		}
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete deletes a job by ID.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if affected == 0 {
		return apperrors.NotFoundf("Job %d not found", id)
	}
	return nil
}

// buildJobQueryOptions builds list query options from filter criteria.
func buildJobQueryOptions(filters model.JobFilters) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(jobColumnList()...),
		database.WithOrderBy("id", "ASC"),
	}

	if filters.MinSalary != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("salary", database.GreaterThanOrEqual, *filters.MinSalary),
		))
	}
	if filters.HasEquity {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("equity > 0"),
		))
	}
	if filters.NameLike != nil && strings.TrimSpace(*filters.NameLike) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("title", database.ILike, "%"+strings.TrimSpace(*filters.NameLike)+"%"),
		))
	}

	return database.NewListQueryOptions("jobs", queryOpts...)
}

// jobColumnList returns the column specs for dynamic job queries.
func jobColumnList() []string {
	return []string{
		"id",
		"title",
		"salary",
		database.Cast("equity", "text", "equity"),
		"company_handle",
		"created_at",
		"updated_at",
	}
}

// buildJobUpdateClause builds the SQL SET clause and args for a partial update.
func buildJobUpdateClause(req model.UpdateJobRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Title != nil {
		setParts = append(setParts, fmt.Sprintf("title = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Title))
	}
	if req.Salary != nil {
		setParts = append(setParts, fmt.Sprintf("salary = $%d", nextIdx()))
		args = append(args, *req.Salary)
	}
	if req.Equity != nil {
		setParts = append(setParts, fmt.Sprintf("equity = $%d", nextIdx()))
		args = append(args, *req.Equity)
	}
	if req.CompanyHandle != nil {
		setParts = append(setParts, fmt.Sprintf("company_handle = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.CompanyHandle))
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, "updated_at = now()")
	return strings.Join(setParts, ", "), args
}
