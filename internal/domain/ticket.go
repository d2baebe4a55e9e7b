package domain

import "time"

// TicketStatus enumerates the kanban columns. The values are the labels the
// dashboard displays, so they stay German.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "Neu"
	TicketStatusInProgress TicketStatus = "In Bearbeitung"
	TicketStatusWaiting    TicketStatus = "Warten auf Benutzer"
	TicketStatusResolved   TicketStatus = "Gelöst"
	TicketStatusClosed     TicketStatus = "Geschlossen"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Niedrig"
	TicketPriorityNormal   TicketPriority = "Normal"
	TicketPriorityHigh     TicketPriority = "Hoch"
	TicketPriorityCritical TicketPriority = "Kritisch"
)

// DefaultPriority is substituted when a caller supplies a priority outside
// the closed set.
const DefaultPriority = TicketPriorityNormal

// TicketCategory enumerates the closed category set.
type TicketCategory string

const (
	TicketCategoryHardware TicketCategory = "Hardware"
	TicketCategorySoftware TicketCategory = "Software"
	TicketCategoryNetwork  TicketCategory = "Netzwerk"
	TicketCategoryOther    TicketCategory = "Sonstiges"
)

// Priorities lists the closed priority set in display order.
var Priorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityNormal,
	TicketPriorityHigh,
	TicketPriorityCritical,
}

// Categories lists the closed category set in display order.
var Categories = []TicketCategory{
	TicketCategoryHardware,
	TicketCategorySoftware,
	TicketCategoryNetwork,
	TicketCategoryOther,
}

// ValidPriority reports membership in the closed priority set.
func ValidPriority(p TicketPriority) bool {
	for _, known := range Priorities {
		if known == p {
			return true
		}
	}
	return false
}

// ValidCategory reports membership in the closed category set.
func ValidCategory(c TicketCategory) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Ticket is the aggregate for support requests. Creator and assignee are weak
// references to users; the referenced account may be deactivated later.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Category    TicketCategory
	Status      TicketStatus
	Priority    TicketPriority
	CreatorID   string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Archived    bool
}

// TicketRow is a ticket enriched with denormalized display names for the
// board. AssigneeName is nil when the ticket is unassigned.
type TicketRow struct {
	Ticket
	CreatorName  string
	AssigneeName *string
}

// TicketStats is the dashboard's aggregate counter set. All counts come from
// one consistent read.
type TicketStats struct {
	Total      int64
	New        int64
	InProgress int64
	Resolved   int64
	Archived   int64
}
