package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobdesk/jobdesk-api/internal/domain/model"
	apperrors "github.com/jobdesk/jobdesk-api/internal/errors"
	"github.com/jobdesk/jobdesk-api/internal/mocks"
	"github.com/jobdesk/jobdesk-api/internal/service"
)

func intPtr(v int) *int                { return &v }
func strPtr(v string) *string          { return &v }
func equityPtr(v string) *model.Equity { e := model.Equity(v); return &e }

// newJobHandlers creates a mock repository and handlers for testing.
func newJobHandlers(t *testing.T) (*mocks.MockJobRepository, *JobHandlers) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockJobRepository(ctrl)
	svc := service.NewJobService(service.JobServiceOptions{JobRepo: repo})
	return repo, &JobHandlers{Svc: svc}
}

type errorEnvelope struct {
	Error struct {
		Message  string   `json:"message"`
		Messages []string `json:"messages"`
		Status   int      `json:"status"`
	} `json:"error"`
}

func decodeErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestJobHandlers_Create_Success(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	created := &model.Job{
		ID:            1,
		Title:         "Software Engineer",
		Salary:        intPtr(120000),
		Equity:        equityPtr("0.050"),
		CompanyHandle: "acme",
	}
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	body := `{"title":"Software Engineer","salary":120000,"equity":0.05,"companyHandle":"acme"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *created, got["job"])
}

func TestJobHandlers_Create_ValidationNeverReachesStore(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	// No repo expectations: an invalid request must fail before the store.
	body := `{"title":"","salary":-5,"companyHandle":""}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, http.StatusBadRequest, env.Error.Status)
	assert.Equal(t, []string{
		"title is required.",
		"salary must be a non-negative integer.",
		"companyHandle is required.",
	}, env.Error.Messages)
}

func TestJobHandlers_Create_UnknownFieldRejected(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	body := `{"title":"Engineer","companyHandle":"acme","id":99}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Contains(t, env.Error.Message, "invalid request body")
}

func TestJobHandlers_Create_ForeignKeyViolation(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ForeignKey("Company does not exist")).
		Times(1)

	body := `{"title":"Engineer","companyHandle":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handlers.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobHandlers_List_Success(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	jobs := []*model.Job{
		{ID: 1, Title: "Engineer", CompanyHandle: "acme"},
		{ID: 2, Title: "Designer", CompanyHandle: "globex"},
	}
	repo.EXPECT().
		List(gomock.Any(), model.JobFilters{}).
		Return(jobs, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	handlers.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string][]model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got["jobs"], 2)
	assert.Equal(t, "Engineer", got["jobs"][0].Title)
}

func TestJobHandlers_List_EmptyResultIsArray(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	handlers.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[]}`, rec.Body.String())
}

func TestJobHandlers_List_FiltersForwarded(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		List(gomock.Any(), model.JobFilters{
			MinSalary: intPtr(50000),
			HasEquity: true,
			NameLike:  strPtr("eng"),
		}).
		Return([]*model.Job{}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/jobs?minSalary=50000&hasEquity=true&nameLike=eng", nil)
	rec := httptest.NewRecorder()

	handlers.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandlers_List_UnknownFilterRejected(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs?maxSalary=90000", nil)
	rec := httptest.NewRecorder()

	handlers.List(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, []string{"maxSalary is not a supported filter."}, env.Error.Messages)
}

func TestJobHandlers_List_UnparseableMinSalaryRejected(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs?minSalary=lots", nil)
	rec := httptest.NewRecorder()

	handlers.List(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, []string{"minSalary must be an integer."}, env.Error.Messages)
}

func TestJobHandlers_GetByID_Success(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	job := &model.Job{ID: 5, Title: "Engineer", CompanyHandle: "acme"}
	repo.EXPECT().
		GetByID(gomock.Any(), int64(5)).
		Return(job, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/jobs/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	handlers.GetByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *job, got["job"])
}

func TestJobHandlers_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		GetByID(gomock.Any(), int64(999)).
		Return(nil, apperrors.NotFoundf("Job %d not found", 999)).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/jobs/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()

	handlers.GetByID(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, "Job 999 not found", env.Error.Message)
}

func TestJobHandlers_GetByID_NonNumericID(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	// No repo expectations: a bad id never reaches the store.
	req := httptest.NewRequest(http.MethodGet, "/jobs/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	handlers.GetByID(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Contains(t, env.Error.Message, "job id must be an integer")
}

func TestJobHandlers_Update_Success(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	updated := &model.Job{ID: 3, Title: "Staff Engineer", CompanyHandle: "acme"}
	repo.EXPECT().
		Update(gomock.Any(), int64(3), model.UpdateJobRequest{Title: strPtr("Staff Engineer")}).
		Return(updated, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/jobs/3", strings.NewReader(`{"title":"Staff Engineer"}`))
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()

	handlers.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]model.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Staff Engineer", got["job"].Title)
}

func TestJobHandlers_Update_EmptyPatchRejected(t *testing.T) {
	t.Parallel()
	_, handlers := newJobHandlers(t)

	req := httptest.NewRequest(http.MethodPatch, "/jobs/3", strings.NewReader(`{}`))
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()

	handlers.Update(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeErrorEnvelope(t, rec)
	assert.Equal(t, []string{"at least one field must be updated."}, env.Error.Messages)
}

func TestJobHandlers_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		Update(gomock.Any(), int64(42), gomock.Any()).
		Return(nil, apperrors.NotFoundf("Job %d not found", 42)).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/jobs/42", strings.NewReader(`{"salary":80000}`))
	req.SetPathValue("id", "42")
	rec := httptest.NewRecorder()

	handlers.Update(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobHandlers_Delete_Success(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		Delete(gomock.Any(), int64(9)).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/jobs/9", nil)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()

	handlers.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":9}`, rec.Body.String())
}

func TestJobHandlers_Delete_NotFound(t *testing.T) {
	t.Parallel()
	repo, handlers := newJobHandlers(t)

	repo.EXPECT().
		Delete(gomock.Any(), int64(404)).
		Return(apperrors.NotFoundf("Job %d not found", 404)).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/jobs/404", nil)
	req.SetPathValue("id", "404")
	rec := httptest.NewRecorder()

	handlers.Delete(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
