package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/events"
	"github.com/abkoo/helpdesk/internal/repository"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
}

// CreateTicket creates a ticket for a user. A priority outside the closed set
// is silently replaced with the default rather than rejected; empty title or
// description is still rejected at the repository boundary.
func (s *TicketService) CreateTicket(ctx context.Context, creatorID string, input TicketCreateInput) (*domain.Ticket, error) {
	priority := input.Priority
	if !domain.ValidPriority(priority) {
		priority = domain.DefaultPriority
	}

	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		CreatorID:   creatorID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  creatorID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Category: ticket.Category,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// ListTickets returns board rows for the given filters.
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.TicketRow, error) {
	return s.tickets.Fetch(ctx, filter)
}

// UpdateTicket applies a partial field update. An empty field map is a no-op.
func (s *TicketService) UpdateTicket(ctx context.Context, actorID, ticketID string, fields map[string]any) error {
	if err := s.tickets.Update(ctx, ticketID, fields); err != nil {
		return err
	}
	if archived, ok := fields["archived"].(bool); ok {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketArchived,
			TicketID: ticketID,
			ActorID:  actorID,
			Payload:  events.TicketArchivedPayload{Archived: archived},
		})
	}
	return nil
}

// AdvanceTicket moves a ticket one column to the right on the board. At the
// terminal status the move is a no-op.
func (s *TicketService) AdvanceTicket(ctx context.Context, actorID, ticketID string) (*domain.Ticket, error) {
	return s.moveTicket(ctx, actorID, ticketID, domain.NextStatus)
}

// RegressTicket moves a ticket one column to the left, clamping at the first
// status.
func (s *TicketService) RegressTicket(ctx context.Context, actorID, ticketID string) (*domain.Ticket, error) {
	return s.moveTicket(ctx, actorID, ticketID, domain.PreviousStatus)
}

func (s *TicketService) moveTicket(ctx context.Context, actorID, ticketID string, step func(domain.TicketStatus) domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	newStatus := step(ticket.Status)
	if newStatus == ticket.Status {
		return ticket, nil
	}
	if err := s.tickets.Update(ctx, ticketID, map[string]any{"status": newStatus}); err != nil {
		return nil, err
	}
	oldStatus := ticket.Status
	ticket.Status = newStatus
	s.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticketID,
		ActorID:  actorID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

// Stats returns the dashboard counters.
func (s *TicketService) Stats(ctx context.Context) (*domain.TicketStats, error) {
	return s.tickets.Stats(ctx)
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
