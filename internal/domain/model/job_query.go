package model

import (
	"strings"

	"github.com/jobdesk/jobdesk-api/internal/http/validation"
)

// JobFilters is the typed, validated filter criteria for listing jobs.
// Request-scoped; constructed fresh per list request and never persisted.
type JobFilters struct {
	// MinSalary restricts results to salary >= MinSalary.
	MinSalary *int
	// HasEquity true restricts results to equity > 0. False means no constraint.
	HasEquity bool
	// NameLike is a case-insensitive substring match on title.
	NameLike *string
}

// JobListQuery carries the normalized list parameters before validation.
// Unparseable raw values are preserved so the validator rejects them with a
// named message instead of the normalizer silently coercing them.
type JobListQuery struct {
	MinSalary *int
	// MinSalaryRaw is set when minSalary was present but not an integer.
	MinSalaryRaw *string
	HasEquity    bool
	NameLike     *string
	// Unknown holds unrecognized query keys, sorted.
	Unknown []string
}

// Validate checks the normalized list parameters, accumulating messages in a
// fixed order: unknown keys first, then per-parameter rules.
func (q *JobListQuery) Validate() error {
	rs := validation.NewRuleSet()
	for _, k := range q.Unknown {
		rs.Checkf(false, "%s is not a supported filter.", k)
	}
	if q.MinSalaryRaw != nil {
		rs.Add("minSalary must be an integer.")
	}
	if q.MinSalary != nil {
		rs.Check(*q.MinSalary >= 0, "minSalary must be a non-negative integer.")
	}
	if q.NameLike != nil {
		rs.Check(strings.TrimSpace(*q.NameLike) != "", "nameLike cannot be empty.")
	}
	return rs.Err()
}

// Filters converts a validated query into typed filter criteria.
func (q *JobListQuery) Filters() JobFilters {
	return JobFilters{
		MinSalary: q.MinSalary,
		HasEquity: q.HasEquity,
		NameLike:  q.NameLike,
	}
}
