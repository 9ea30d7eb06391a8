package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{name: "not found", err: NotFound("missing"), code: ErrCodeNotFound},
		{name: "not foundf", err: NotFoundf("Job %d not found", 7), code: ErrCodeNotFound},
		{name: "conflict", err: Conflict("duplicate"), code: ErrCodeConflict},
		{name: "validation", err: Validation("bad input"), code: ErrCodeValidation},
		{name: "foreign key", err: ForeignKey("in use"), code: ErrCodeForeignKey},
		{name: "unauthorized", err: Unauthorized("no session"), code: ErrCodeUnauthorized},
		{name: "forbidden", err: Forbidden("not admin"), code: ErrCodeForbidden},
		{name: "internal", err: Internal("boom"), code: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.code, GetCode(tt.err))
		})
	}
}

func TestValidation_PopulatesMessages(t *testing.T) {
	t.Parallel()

	err := Validation("title is required.")
	assert.Equal(t, []string{"title is required."}, err.Messages)
	assert.Equal(t, "title is required.", err.Message)
}

func TestValidationMessages(t *testing.T) {
	t.Parallel()

	t.Run("first message becomes summary", func(t *testing.T) {
		t.Parallel()
		err := ValidationMessages([]string{"title is required.", "salary must be a non-negative integer."})
		assert.Equal(t, "title is required.", err.Message)
		assert.Len(t, err.Messages, 2)
	})

	t.Run("empty list gets default summary", func(t *testing.T) {
		t.Parallel()
		err := ValidationMessages(nil)
		assert.Equal(t, "Invalid input", err.Message)
		assert.Empty(t, err.Messages)
	})
}

func TestWrap_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeInternal, "query failed")

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed: connection refused", err.Error())
	assert.True(t, IsInternal(err))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, ErrCodeInternal, "x"))
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	t.Parallel()

	inner := NotFound("gone")
	outer := Wrap(inner, ErrCodeInternal, "outer")

	// errors.As walks the chain, so the inner code still matches
	assert.True(t, IsNotFound(inner))
	assert.True(t, IsInternal(outer))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestGetMessages(t *testing.T) {
	t.Parallel()

	t.Run("list when present", func(t *testing.T) {
		t.Parallel()
		err := ValidationMessages([]string{"a.", "b."})
		assert.Equal(t, []string{"a.", "b."}, GetMessages(err))
	})

	t.Run("falls back to single message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"gone"}, GetMessages(NotFound("gone")))
	})

	t.Run("nil for non app errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, GetMessages(errors.New("plain")))
	})
}

func TestGetField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "title", GetField(ValidationField("title", "title is required.")))
	assert.Empty(t, GetField(Validation("no field")))
	assert.Empty(t, GetField(errors.New("plain")))
}
