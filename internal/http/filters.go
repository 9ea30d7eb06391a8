package httpx

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/jobdesk/jobdesk-api/internal/domain/model"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"

	paramMinSalary = "minSalary"
	paramHasEquity = "hasEquity"
	paramNameLike  = "nameLike"
)

// ParseJobListQuery normalizes raw list query parameters into a JobListQuery.
// It is a pure function: no validation, no defaults beyond presence rules.
//
//   - minSalary is parsed as an integer; an unparseable value is carried
//     through raw so the validator rejects it by name instead of this step
//     silently coercing it to zero.
//   - hasEquity maps exactly the literal "true" to true; any other value
//     (including "false" and "TRUE") is treated as absent. The filter is
//     on-or-off, not a general boolean parse, and the asymmetry is intended.
//   - nameLike passes through unchanged.
//   - Unrecognized keys are collected, sorted, for strict-mode rejection.
func ParseJobListQuery(q url.Values) *model.JobListQuery {
	out := &model.JobListQuery{}

	if q.Has(paramMinSalary) {
		raw := q.Get(paramMinSalary)
		if n, err := strconv.Atoi(raw); err == nil {
			out.MinSalary = &n
		} else {
			out.MinSalaryRaw = &raw
		}
	}

	if q.Get(paramHasEquity) == StrTrue {
		out.HasEquity = true
	}

	if q.Has(paramNameLike) {
		v := q.Get(paramNameLike)
		out.NameLike = &v
	}

	for key := range q {
		switch key {
		case paramMinSalary, paramHasEquity, paramNameLike:
		default:
			out.Unknown = append(out.Unknown, key)
		}
	}
	sort.Strings(out.Unknown)

	return out
}
