package dto

import (
	"time"

	"github.com/abkoo/helpdesk/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
}

// TicketResponse is one board card, enriched with display names.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     domain.TicketCategory `json:"category"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	CreatorID    string                `json:"creator_id"`
	CreatorName  string                `json:"creator_name,omitempty"`
	AssigneeID   *string               `json:"assignee_id"`
	AssigneeName *string               `json:"assignee_name"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Archived     bool                  `json:"archived"`
}

// StatsResponse carries the dashboard counters.
type StatsResponse struct {
	Total      int64 `json:"total"`
	New        int64 `json:"new"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Archived   int64 `json:"archived"`
}
