package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abkoo/helpdesk/internal/api/dto"
	"github.com/abkoo/helpdesk/internal/auth"
	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/repository"
	"github.com/abkoo/helpdesk/internal/service"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// TicketsHandler manages board endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), session.UserID, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(&domain.TicketRow{Ticket: *ticket, CreatorName: session.DisplayName})})
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	filter := parseTicketQuery(c)
	// Employees only ever see their own tickets; administrators see the
	// whole board unless they filter by creator.
	if !session.IsAdmin() {
		creatorID := session.UserID
		filter.CreatorID = &creatorID
	}

	rows, err := h.service.ListTickets(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(rows))
	for i := range rows {
		items = append(items, ticketResponse(&rows[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /tickets/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	fields := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&fields); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	if err := h.service.UpdateTicket(c.Context(), session.UserID, c.Params("id"), fields); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Advance POST /tickets/:id/advance.
func (h *TicketsHandler) Advance(c *fiber.Ctx) error {
	return h.move(c, h.service.AdvanceTicket)
}

// Regress POST /tickets/:id/regress.
func (h *TicketsHandler) Regress(c *fiber.Ctx) error {
	return h.move(c, h.service.RegressTicket)
}

func (h *TicketsHandler) move(c *fiber.Ctx, moveFn func(ctx context.Context, actorID, ticketID string) (*domain.Ticket, error)) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := moveFn(c.Context(), session.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(&domain.TicketRow{Ticket: *ticket})})
}

// Stats GET /tickets/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	if _, ok := auth.SessionFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Total:      stats.Total,
		New:        stats.New,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		Archived:   stats.Archived,
	}})
}

func parseTicketQuery(c *fiber.Ctx) repository.TicketFilter {
	filter := repository.TicketFilter{}
	if creator := c.Query("creator_id"); creator != "" {
		filter.CreatorID = &creator
	}
	filter.IncludeArchived = c.QueryBool("include_archived", false)
	if search := c.Query("q"); search != "" {
		filter.SearchTerm = &search
	}
	if category := c.Query("category"); category != "" {
		cat := domain.TicketCategory(category)
		filter.Category = &cat
	}
	if priority := c.Query("priority"); priority != "" {
		prio := domain.TicketPriority(priority)
		filter.Priority = &prio
	}
	return filter
}

func ticketResponse(row *domain.TicketRow) dto.TicketResponse {
	return dto.TicketResponse{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Category:     row.Category,
		Status:       row.Status,
		Priority:     row.Priority,
		CreatorID:    row.CreatorID,
		CreatorName:  row.CreatorName,
		AssigneeID:   row.AssigneeID,
		AssigneeName: row.AssigneeName,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Archived:     row.Archived,
	}
}
