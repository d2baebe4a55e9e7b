package service

import (
	"context"
	"strings"
	"testing"

	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/repository"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

type fakeTicketRepo struct {
	createFn func(ctx context.Context, ticket *domain.Ticket) error
	getFn    func(ctx context.Context, id string) (*domain.Ticket, error)
	fetchFn  func(ctx context.Context, filter repository.TicketFilter) ([]domain.TicketRow, error)
	updateFn func(ctx context.Context, id string, fields map[string]any) error
	statsFn  func(ctx context.Context) (*domain.TicketStats, error)
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, ticket)
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if f.getFn == nil {
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	return f.getFn(ctx, id)
}

func (f *fakeTicketRepo) Fetch(ctx context.Context, filter repository.TicketFilter) ([]domain.TicketRow, error) {
	if f.fetchFn == nil {
		return nil, nil
	}
	return f.fetchFn(ctx, filter)
}

func (f *fakeTicketRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, id, fields)
}

func (f *fakeTicketRepo) Stats(ctx context.Context) (*domain.TicketStats, error) {
	if f.statsFn == nil {
		return &domain.TicketStats{}, nil
	}
	return f.statsFn(ctx)
}

// wellBehavedCreate emulates the repository's creation contract.
func wellBehavedCreate(ctx context.Context, ticket *domain.Ticket) error {
	ticket.Title = strings.TrimSpace(ticket.Title)
	ticket.Description = strings.TrimSpace(ticket.Description)
	if ticket.Title == "" || ticket.Description == "" {
		return apperrors.NewValidationError("title and description required", nil)
	}
	ticket.ID = "tick-1"
	ticket.Status = domain.InitialStatus
	ticket.Archived = false
	return nil
}

func TestCreateTicketScenario(t *testing.T) {
	repo := &fakeTicketRepo{createFn: wellBehavedCreate}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.CreateTicket(context.Background(), "U1", TicketCreateInput{
		Title:       "Printer jam",
		Description: "2nd floor",
		Category:    domain.TicketCategoryHardware,
		Priority:    domain.TicketPriorityNormal,
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ticket.Status != domain.TicketStatusNew {
		t.Fatalf("status=%q, want %q", ticket.Status, domain.TicketStatusNew)
	}
	if ticket.Priority != domain.TicketPriorityNormal {
		t.Fatalf("priority=%q", ticket.Priority)
	}
	if ticket.CreatorID != "U1" {
		t.Fatalf("creator=%q", ticket.CreatorID)
	}
	if ticket.AssigneeID != nil {
		t.Fatalf("assignee=%v, want nil", ticket.AssigneeID)
	}
	if ticket.Archived {
		t.Fatal("archived=true on fresh ticket")
	}
}

func TestCreateTicketDefaultsInvalidPriority(t *testing.T) {
	var stored domain.TicketPriority
	repo := &fakeTicketRepo{createFn: func(ctx context.Context, ticket *domain.Ticket) error {
		stored = ticket.Priority
		return wellBehavedCreate(ctx, ticket)
	}}
	svc := NewTicketService(repo, nil)

	_, err := svc.CreateTicket(context.Background(), "U1", TicketCreateInput{
		Title:       "VPN broken",
		Description: "cannot connect",
		Category:    domain.TicketCategoryNetwork,
		Priority:    "urgent!!",
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if stored != domain.DefaultPriority {
		t.Fatalf("stored priority=%q, want %q", stored, domain.DefaultPriority)
	}
}

func TestAdvanceTicket(t *testing.T) {
	var updated map[string]any
	repo := &fakeTicketRepo{
		getFn: func(ctx context.Context, id string) (*domain.Ticket, error) {
			return &domain.Ticket{ID: id, Status: domain.TicketStatusResolved}, nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			updated = fields
			return nil
		},
	}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.AdvanceTicket(context.Background(), "U1", "tick-1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ticket.Status != domain.TicketStatusClosed {
		t.Fatalf("status=%q, want %q", ticket.Status, domain.TicketStatusClosed)
	}
	if updated["status"] != domain.TicketStatusClosed {
		t.Fatalf("update fields=%v", updated)
	}
}

func TestAdvanceTicketClampsAtTerminal(t *testing.T) {
	updateCalled := false
	repo := &fakeTicketRepo{
		getFn: func(ctx context.Context, id string) (*domain.Ticket, error) {
			return &domain.Ticket{ID: id, Status: domain.TicketStatusClosed}, nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.AdvanceTicket(context.Background(), "U1", "tick-1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ticket.Status != domain.TicketStatusClosed {
		t.Fatalf("status=%q", ticket.Status)
	}
	if updateCalled {
		t.Fatal("clamped move must not write")
	}
}

func TestRegressTicket(t *testing.T) {
	var updated map[string]any
	repo := &fakeTicketRepo{
		getFn: func(ctx context.Context, id string) (*domain.Ticket, error) {
			return &domain.Ticket{ID: id, Status: domain.TicketStatusClosed}, nil
		},
		updateFn: func(ctx context.Context, id string, fields map[string]any) error {
			updated = fields
			return nil
		},
	}
	svc := NewTicketService(repo, nil)

	ticket, err := svc.RegressTicket(context.Background(), "U1", "tick-1")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ticket.Status != domain.TicketStatusResolved {
		t.Fatalf("status=%q, want %q", ticket.Status, domain.TicketStatusResolved)
	}
	if updated["status"] != domain.TicketStatusResolved {
		t.Fatalf("update fields=%v", updated)
	}
}

func TestListTicketsDelegates(t *testing.T) {
	var seen repository.TicketFilter
	repo := &fakeTicketRepo{fetchFn: func(ctx context.Context, filter repository.TicketFilter) ([]domain.TicketRow, error) {
		seen = filter
		return []domain.TicketRow{}, nil
	}}
	svc := NewTicketService(repo, nil)

	creator := "U1"
	_, err := svc.ListTickets(context.Background(), repository.TicketFilter{CreatorID: &creator})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if seen.CreatorID == nil || *seen.CreatorID != "U1" {
		t.Fatalf("filter=%+v", seen)
	}
}

func TestStatsDelegates(t *testing.T) {
	repo := &fakeTicketRepo{statsFn: func(ctx context.Context) (*domain.TicketStats, error) {
		return &domain.TicketStats{Total: 7, New: 2, InProgress: 1, Resolved: 3, Archived: 1}, nil
	}}
	svc := NewTicketService(repo, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if stats.Total != 7 || stats.Archived != 1 {
		t.Fatalf("stats=%+v", stats)
	}
}
