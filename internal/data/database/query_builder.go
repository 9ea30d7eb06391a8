// Package database builds parameterized list queries with sanitized
// identifiers. Values are always bound as query parameters; identifiers pass
// through pgx.Identifier quoting.
package database

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	Like               ConditionType = "LIKE"
	ILike              ConditionType = "ILIKE"
	Custom             ConditionType = "CUSTOM"
	defaultLimit                     = -1
	defaultOffset                    = -1
	// maxAliasParts is the maximum number of parts when splitting on " AS ".
	maxAliasParts = 2
)

type Condition struct {
	Field    string
	Type     ConditionType
	Value    any
	rawQuery *string
}

func WhereCond(field string, condType ConditionType, value any) Condition {
	if condType == Custom {
		//nolint:forbidigo // panic prevents misuse; custom conditions must provide raw SQL via WhereRawCond.
		panic("Use WhereRawCond for Custom type")
	}
	return Condition{
		rawQuery: nil,
		Field:    field,
		Type:     condType,
		Value:    value,
	}
}

func WhereRawCond(rawQuery string, params ...any) Condition {
	queryStr := rawQuery
	var value any = params
	if len(params) == 0 {
		value = nil
	} else if len(params) == 1 {
		value = params[0]
	}
	// For multiple parameters, keep the slice as-is so handleCustomCondition can process it

	return Condition{
		Field:    "",
		Type:     Custom,
		rawQuery: &queryStr,
		Value:    value,
	}
}

type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:      table,
		Columns:    []string{},
		CountOnly:  false,
		Conditions: []Condition{},
		OrderBy:    "",
		OrderDir:   "",
		Limit:      defaultLimit,
		Offset:     defaultOffset,
	}

	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithConditions sets the entire list of conditions.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = conds
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

// sanitizeIdentifier wraps a single string identifier for sanitization.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier sanitizes qualified identifiers like "table.column".
// It splits on '.' and uses pgx.Identifier to properly quote each part.
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

// reCastType restricts cast targets to plain type names.
var reCastType = regexp.MustCompile(`^[a-z_][a-z0-9_ ]*$`)

// Cast creates a typed column specification (column::type AS alias) with
// sanitized column and alias. The cast type must be a plain type name.
func Cast(column, sqlType, alias string) string {
	if !reCastType.MatchString(sqlType) {
		return ""
	}
	return fmt.Sprintf("%s::%s AS %s",
		sanitizeQualifiedIdentifier(column),
		sqlType,
		sanitizeIdentifier(alias))
}

// processColumnSpec processes a column specification, handling aliases and casts.
// Supports formats like:
// - "column" -> "column"
// - "column AS alias" -> "column" AS "alias"
// - "column::text AS alias" -> "column"::text AS "alias".
func processColumnSpec(columnSpec string) string {
	asRegex := regexp.MustCompile(`(?i)\s+AS\s+`)
	if asRegex.MatchString(columnSpec) {
		parts := asRegex.Split(columnSpec, maxAliasParts)
		if len(parts) == maxAliasParts {
			columnExpr := strings.TrimSpace(parts[0])
			alias := strings.TrimSpace(parts[1])
			processedExpr := processColumnExpression(columnExpr)
			if processedExpr == "" {
				return ""
			}
			return fmt.Sprintf("%s AS %s", processedExpr, sanitizeIdentifier(alias))
		}
	}
	return processColumnExpression(columnSpec)
}

// processColumnExpression processes a column expression, handling casts and qualified identifiers.
func processColumnExpression(expr string) string {
	if column, sqlType, ok := strings.Cut(expr, "::"); ok {
		if !reCastType.MatchString(sqlType) {
			// Invalid cast target, skip safely rather than emit unsanitized SQL
			return ""
		}
		return sanitizeQualifiedIdentifier(column) + "::" + sqlType
	}
	if strings.Contains(expr, ".") {
		return sanitizeQualifiedIdentifier(expr)
	}
	return sanitizeIdentifier(expr)
}

// buildSelectClause generates the SELECT part of the query with sanitized columns.
func buildSelectClause(options *ListQueryOptions) string {
	if options == nil {
		return ""
	}
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}

	processedColumns := make([]string, 0, len(options.Columns))
	for _, col := range options.Columns {
		if processed := processColumnSpec(col); processed != "" {
			processedColumns = append(processedColumns, processed)
		}
	}

	return fmt.Sprintf("SELECT %s ", strings.Join(processedColumns, ", "))
}

// buildPaginationAndOrderClause generates ORDER BY, LIMIT, OFFSET parts with sanitized OrderBy and validated OrderDir.
func buildPaginationAndOrderClause(
	options *ListQueryOptions,
	startParamIndex int,
	initialArgs []any,
) (string, []any) {
	if options == nil {
		return "", initialArgs
	}

	var clause strings.Builder
	args := initialArgs
	paramCount := startParamIndex

	if options.OrderBy != "" {
		clause.WriteString(" ORDER BY ")
		clause.WriteString(sanitizeQualifiedIdentifier(options.OrderBy))
		upperOrderDir := strings.ToUpper(options.OrderDir)
		if upperOrderDir == "ASC" || upperOrderDir == "DESC" {
			clause.WriteString(" ")
			clause.WriteString(upperOrderDir)
		}
	}

	// Add LIMIT clause only if it was explicitly set (not the default sentinel)
	if options.Limit != defaultLimit {
		clause.WriteString(fmt.Sprintf(" LIMIT $%d", paramCount))
		args = append(args, options.Limit)
		paramCount++
	}

	// Add OFFSET clause only if it was explicitly set (not the default sentinel)
	if options.Offset != defaultOffset {
		clause.WriteString(fmt.Sprintf(" OFFSET $%d", paramCount))
		args = append(args, options.Offset)
	}

	return clause.String(), args
}

// BuildListQuery constructs a SQL query string and arguments from options, sanitizing identifiers.
// It handles SELECT, WHERE, ORDER BY, LIMIT, and OFFSET clauses.
//
// Example usage:
//
//	options := NewListQueryOptions("jobs",
//		WithColumns("id", "title", Cast("equity", "text", "equity")),
//		WithCondition(WhereCond("salary", GreaterThanOrEqual, 100000)),
//		WithCondition(WhereRawCond("equity > 0")),
//		WithOrderBy("id", "ASC"),
//	)
//
//	query, args := BuildListQuery(options)
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder

	// SELECT ... FROM ...
	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	// WHERE ...
	whereClause, whereArgs, nextParamCount := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	// return early for CountOnly
	if options.CountOnly {
		return query.String(), whereArgs
	}

	// ORDER BY ... LIMIT ... OFFSET ...
	paginationOrderClause, finalArgs := buildPaginationAndOrderClause(
		options,
		nextParamCount,
		whereArgs,
	)
	if paginationOrderClause != "" {
		query.WriteString(paginationOrderClause)
	}

	return query.String(), finalArgs
}

func handleStandardCondition(
	cond Condition,
	sanitizedField string,
	paramCount int,
) (string, []any, int) {
	if sanitizedField == "" {
		return "", []any{}, paramCount
	}
	conditionStr := fmt.Sprintf("%s %s $%d", sanitizedField, cond.Type, paramCount)
	args := []any{cond.Value}
	return conditionStr, args, paramCount + 1
}

func handleCustomCondition(cond Condition, paramCount int) (string, []any, int) {
	args := []any{}
	if cond.rawQuery == nil || *cond.rawQuery == "" {
		return "", []any{}, paramCount
	}
	conditionStr := *cond.rawQuery

	if cond.Value == nil {
		return conditionStr, args, paramCount
	}

	// NOTE: RawQuery itself is NOT sanitized here.
	// Normalize to slice: treat any []any as-is, otherwise wrap single value
	var params []any
	if paramSlice, ok := cond.Value.([]any); ok {
		params = paramSlice
	} else {
		params = []any{cond.Value}
	}

	// Use regex to replace placeholders, handling $10 vs $1 correctly
	currentParam := paramCount
	re := regexp.MustCompile(`\$(\d+)`)
	idxMap := make(map[int]int)
	conditionStr = re.ReplaceAllStringFunc(conditionStr, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil {
			return m
		}
		if _, ok := idxMap[n]; !ok {
			// Guard bounds: ensure n-1 is within params slice
			if n < 1 || n > len(params) {
				return m
			}
			idxMap[n] = currentParam
			args = append(args, params[n-1])
			currentParam++
		}
		return fmt.Sprintf("$%d", idxMap[n])
	})

	return conditionStr, args, currentParam
}

// processCondition processes a single condition and returns the SQL string, args, and next param count.
func processCondition(cond Condition, paramCount int) (string, []any, int) {
	sanitizedField := ""
	if cond.Type != Custom && cond.Field != "" {
		sanitizedField = sanitizeIdentifier(cond.Field)
	}

	switch cond.Type {
	case Custom:
		return handleCustomCondition(cond, paramCount)
	case Equal, NotEqual, GreaterThan, LessThan, LessThanOrEqual, GreaterThanOrEqual, Like, ILike:
		if sanitizedField == "" {
			return "", []any{}, paramCount
		}
		return handleStandardCondition(cond, sanitizedField, paramCount)
	}
	return "", []any{}, paramCount
}

// buildWhereClause generates the WHERE part of the query with sanitized fields and manages parameters.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := []any{}
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		conditionStr, newArgs, nextParamCount := processCondition(cond, paramCount)
		if conditionStr != "" {
			conditions = append(conditions, conditionStr)
			args = append(args, newArgs...)
			paramCount = nextParamCount
		}
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}
