package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	t.Parallel()

	err := MapDBError(context.DeadlineExceeded)
	assert.True(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	err = MapDBError(context.Canceled)
	assert.True(t, IsCanceled(err))
}

func TestMapDBError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapDBError(pgx.ErrNoRows)
	assert.True(t, IsNotFound(err))

	// wrapping does not hide the sentinel
	err = MapDBError(fmt.Errorf("failed to list jobs: %w", pgx.ErrNoRows))
	assert.True(t, IsNotFound(err))
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	t.Parallel()

	t.Run("column name metadata", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ColumnName: "company_handle"}

		err := MapDBError(pgErr)

		assert.True(t, IsConflict(err))
		assert.Equal(t, "company_handle", GetField(err))
	})

	t.Run("field parsed from detail", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.UniqueViolation,
			Detail: `Key (title)=(Engineer) already exists.`,
		}

		err := MapDBError(pgErr)

		assert.True(t, IsConflict(err))
		assert.Equal(t, "title", GetField(err))
	})
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	t.Run("missing parent", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.ForeignKeyViolation,
			Detail: `Key (company_handle)=(nope) is not present in table "companies".`,
		}

		err := MapDBError(pgErr)

		require.True(t, IsForeignKey(err))
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "Company does not exist")
	})

	t.Run("still referenced", func(t *testing.T) {
		t.Parallel()
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.ForeignKeyViolation,
			Detail: `Key (handle)=(acme) is still referenced from table "jobs".`,
		}

		err := MapDBError(pgErr)

		require.True(t, IsForeignKey(err))
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Message, "in use by Job")
	})
}

func TestMapDBError_CheckViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "equity"}

	err := MapDBError(pgErr)

	assert.True(t, IsValidation(err))
	assert.Equal(t, "equity", GetField(err))
	assert.NotEmpty(t, GetMessages(err))
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "title"}

	err := MapDBError(pgErr)

	assert.True(t, IsValidation(err))
	assert.Equal(t, "title", GetField(err))
}

func TestMapDBError_UnrecognizedPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	err := MapDBError(pgErr)

	assert.True(t, IsInternal(err))
	var got *pgconn.PgError
	assert.ErrorAs(t, err, &got)
}

func TestMapDBError_PassThroughUnknown(t *testing.T) {
	t.Parallel()

	plain := errors.New("dial tcp: connection refused")
	assert.Equal(t, plain, MapDBError(plain))
}

func TestMapTableToDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Job", mapTableToDomain("jobs"))
	assert.Equal(t, "Company", mapTableToDomain("companies"))
	assert.Equal(t, "Job Applications", mapTableToDomain("job_applications"))
}
