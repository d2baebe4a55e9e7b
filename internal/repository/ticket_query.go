package repository

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// mutableTicketColumns is the closed set of columns a partial update may
// touch. Caller-supplied names outside this set are rejected, never
// interpolated.
var mutableTicketColumns = map[string]struct{}{
	"status":      {},
	"priority":    {},
	"category":    {},
	"assignee_id": {},
	"archived":    {},
}

const fetchBase = `SELECT t.id, t.title, t.description, t.category, t.status, t.priority,
               t.creator_id, t.assignee_id, t.created_at, t.updated_at, t.archived,
               u.display_name AS creator_name,
               a.display_name AS assignee_name
        FROM tickets t
        JOIN users u ON u.id = t.creator_id
        LEFT JOIN users a ON a.id = t.assignee_id`

// buildFetchQuery renders the filtered listing query. Each present filter ANDs
// one condition; the ordering by updated_at descending is the board's display
// contract.
func buildFetchQuery(filter TicketFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if !filter.IncludeArchived {
		clauses = append(clauses, "t.archived = FALSE")
	}
	if filter.CreatorID != nil {
		args = append(args, *filter.CreatorID)
		clauses = append(clauses, fmt.Sprintf("t.creator_id=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(t.title) LIKE %s OR LOWER(t.description) LIKE %s)", placeholder, placeholder))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("t.category=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("t.priority=$%d", len(args)))
	}

	query := fmt.Sprintf("%s\n        WHERE %s\n        ORDER BY t.updated_at DESC",
		fetchBase, strings.Join(clauses, " AND "))
	return query, args
}

// buildUpdateQuery renders a partial update over the mutable column set,
// bumping updated_at in the same statement. Columns are emitted in sorted
// order so the statement is deterministic.
func buildUpdateQuery(id string, fields map[string]any) (string, []any, error) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		if _, ok := mutableTicketColumns[column]; !ok {
			return "", nil, apperrors.NewValidationError("unknown ticket field", map[string]any{"field": column})
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		args = append(args, fields[column])
		assignments = append(assignments, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	assignments = append(assignments, "updated_at=now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tickets SET %s WHERE id=$%d",
		strings.Join(assignments, ", "), len(args))
	return query, args, nil
}
