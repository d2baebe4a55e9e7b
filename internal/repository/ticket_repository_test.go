package repository

import (
	"context"
	"testing"

	"github.com/abkoo/helpdesk/internal/domain"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

func TestPrepareCreateInvariants(t *testing.T) {
	ticket := &domain.Ticket{
		Title:       "  Printer jam  ",
		Description: "2nd floor",
		Category:    domain.TicketCategoryHardware,
		Priority:    domain.TicketPriorityNormal,
		CreatorID:   "user-1",
		// Callers cannot smuggle in a different lifecycle state.
		Status:   domain.TicketStatusClosed,
		Archived: true,
	}
	if err := prepareCreate(ticket); err != nil {
		t.Fatalf("err=%v", err)
	}
	if ticket.Status != domain.TicketStatusNew {
		t.Fatalf("status=%q, want %q", ticket.Status, domain.TicketStatusNew)
	}
	if ticket.Archived {
		t.Fatal("archived=true after create prep")
	}
	if ticket.Title != "Printer jam" {
		t.Fatalf("title=%q, want trimmed", ticket.Title)
	}
	if ticket.AssigneeID != nil {
		t.Fatalf("assignee=%v, want nil", ticket.AssigneeID)
	}
}

func TestPrepareCreateRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name   string
		ticket domain.Ticket
	}{
		{"empty title", domain.Ticket{Title: "   ", Description: "desc"}},
		{"empty description", domain.Ticket{Title: "title", Description: "\t\n"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ticket := tt.ticket
			err := prepareCreate(&ticket)
			if !apperrors.IsCode(err, apperrors.CodeValidation) {
				t.Fatalf("err=%v, want validation error", err)
			}
		})
	}
}

func TestUpdateEmptyFieldsIsNoop(t *testing.T) {
	// No pool is needed: the empty-update contract short-circuits before any
	// query is built or executed.
	repo := &ticketRepository{pool: nil}
	if err := repo.Update(context.Background(), "tick-1", map[string]any{}); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if err := repo.Update(context.Background(), "tick-1", nil); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
}
