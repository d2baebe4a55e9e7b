package repository

import (
	"strings"
	"testing"

	"github.com/abkoo/helpdesk/internal/domain"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

func strPtr(s string) *string { return &s }

func TestBuildFetchQueryDefaults(t *testing.T) {
	query, args := buildFetchQuery(TicketFilter{})
	if len(args) != 0 {
		t.Fatalf("args=%v, want none", args)
	}
	if !strings.Contains(query, "t.archived = FALSE") {
		t.Fatalf("missing archived exclusion:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY t.updated_at DESC") {
		t.Fatalf("missing ordering contract:\n%s", query)
	}
	if !strings.Contains(query, "LEFT JOIN users a ON a.id = t.assignee_id") {
		t.Fatalf("assignee join must use assignee_id:\n%s", query)
	}
}

func TestBuildFetchQueryIncludeArchived(t *testing.T) {
	query, _ := buildFetchQuery(TicketFilter{IncludeArchived: true})
	if strings.Contains(query, "archived = FALSE") {
		t.Fatalf("archived exclusion applied despite IncludeArchived:\n%s", query)
	}
}

func TestBuildFetchQueryAllFilters(t *testing.T) {
	category := domain.TicketCategoryHardware
	priority := domain.TicketPriorityHigh
	filter := TicketFilter{
		CreatorID:  strPtr("user-1"),
		SearchTerm: strPtr("  Drucker "),
		Category:   &category,
		Priority:   &priority,
	}
	query, args := buildFetchQuery(filter)

	if len(args) != 4 {
		t.Fatalf("args=%v, want 4", args)
	}
	if args[0] != "user-1" {
		t.Fatalf("creator arg=%v", args[0])
	}
	if args[1] != "%drucker%" {
		t.Fatalf("search arg=%v, want lowercased trimmed pattern", args[1])
	}
	for _, fragment := range []string{
		"t.creator_id=$1",
		"LOWER(t.title) LIKE $2 OR LOWER(t.description) LIKE $2",
		"t.category=$3",
		"t.priority=$4",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("missing %q in:\n%s", fragment, query)
		}
	}
}

func TestBuildFetchQueryBlankSearchIgnored(t *testing.T) {
	query, args := buildFetchQuery(TicketFilter{SearchTerm: strPtr("   ")})
	if len(args) != 0 {
		t.Fatalf("blank search must add no condition, args=%v", args)
	}
	if strings.Contains(query, "LIKE") {
		t.Fatalf("blank search leaked into query:\n%s", query)
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	query, args, err := buildUpdateQuery("tick-1", map[string]any{
		"status":   domain.TicketStatusInProgress,
		"archived": true,
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := "UPDATE tickets SET archived=$1, status=$2, updated_at=now() WHERE id=$3"
	if query != want {
		t.Fatalf("query=%q, want %q", query, want)
	}
	if len(args) != 3 || args[0] != true || args[1] != domain.TicketStatusInProgress || args[2] != "tick-1" {
		t.Fatalf("args=%v", args)
	}
}

func TestBuildUpdateQueryRejectsUnknownColumn(t *testing.T) {
	_, _, err := buildUpdateQuery("tick-1", map[string]any{
		"creator_id": "someone-else",
	})
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("err=%v, want validation error", err)
	}

	_, _, err = buildUpdateQuery("tick-1", map[string]any{
		"title; DROP TABLE tickets": "x",
	})
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("err=%v, want validation error", err)
	}
}
