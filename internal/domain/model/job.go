// Package model defines the core data types for the jobdesk API.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jobdesk/jobdesk-api/internal/http/validation"
)

const (
	maxJobTitleLen       = 255
	maxCompanyHandleLen  = 25
	equityFractionDigits = 3
)

// Equity is the ownership fraction offered with a job, in [0, 1].
// JSON accepts either a number or a decimal string; it serializes and is
// stored in its decimal-string form (the column is NUMERIC, scanned as text).
//
//nolint:recvcheck // UnmarshalJSON needs pointer receiver, Float needs value receiver
type Equity string

// UnmarshalJSON accepts a JSON number or string. Range and numeric checks are
// deferred to request validation so malformed values produce ordered
// validation messages rather than a bare decode error.
func (e *Equity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Equity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*e = Equity(n.String())
		return nil
	}
	return fmt.Errorf("equity must be a number or a numeric string")
}

// Float parses the decimal form.
func (e Equity) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(e)), 64)
}

// Job represents a posted position.
type Job struct {
	ID            int64     `json:"id"            db:"id"`
	Title         string    `json:"title"         db:"title"`
	Salary        *int      `json:"salary"        db:"salary"`
	Equity        *Equity   `json:"equity"        db:"equity"`
	CompanyHandle string    `json:"companyHandle" db:"company_handle"`
	CreatedAt     time.Time `json:"-"             db:"created_at"`
	UpdatedAt     time.Time `json:"-"             db:"updated_at"`
}

// CreateJobRequest represents parameters to create a Job.
// The row id is store-assigned and never client-supplied.
type CreateJobRequest struct {
	Title         string  `json:"title"`
	Salary        *int    `json:"salary,omitempty"`
	Equity        *Equity `json:"equity,omitempty"`
	CompanyHandle string  `json:"companyHandle"`
}

// Validate checks CreateJobRequest, accumulating messages in field order.
func (r *CreateJobRequest) Validate() error {
	rs := validation.NewRuleSet()
	rs.Field(r.Title, validation.Required("title", maxJobTitleLen))
	if r.Salary != nil {
		rs.Check(*r.Salary >= 0, "salary must be a non-negative integer.")
	}
	checkEquity(rs, r.Equity)
	rs.Field(r.CompanyHandle, validation.Required("companyHandle", maxCompanyHandleLen))
	return rs.Err()
}

// UpdateJobRequest represents a partial update to a Job. Only supplied fields
// change; the id is not patchable by shape.
type UpdateJobRequest struct {
	Title         *string `json:"title,omitempty"`
	Salary        *int    `json:"salary,omitempty"`
	Equity        *Equity `json:"equity,omitempty"`
	CompanyHandle *string `json:"companyHandle,omitempty"`
}

// HasUpdates reports whether any field is set in UpdateJobRequest.
func (r *UpdateJobRequest) HasUpdates() bool {
	return r.Title != nil || r.Salary != nil || r.Equity != nil || r.CompanyHandle != nil
}

// Validate checks UpdateJobRequest, rejecting empty patches and accumulating
// per-field messages in field order.
func (r *UpdateJobRequest) Validate() error {
	if !r.HasUpdates() {
		return validation.NewRuleSet().Add("at least one field must be updated.").Err()
	}
	rs := validation.NewRuleSet()
	if r.Title != nil {
		rs.Field(*r.Title, validation.Required("title", maxJobTitleLen))
	}
	if r.Salary != nil {
		rs.Check(*r.Salary >= 0, "salary must be a non-negative integer.")
	}
	checkEquity(rs, r.Equity)
	if r.CompanyHandle != nil {
		rs.Field(*r.CompanyHandle, validation.Required("companyHandle", maxCompanyHandleLen))
	}
	return rs.Err()
}

func checkEquity(rs *validation.RuleSet, e *Equity) {
	if e == nil {
		return
	}
	f, err := e.Float()
	if err != nil {
		rs.Add("equity must be a number.")
		return
	}
	rs.Check(f >= 0 && f <= 1, "equity must be between 0 and 1.")
}
