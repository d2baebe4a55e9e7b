package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abkoo/helpdesk/internal/domain"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// TicketFilter captures the board's optional listing filters. Absent filters
// impose no condition; archived tickets are excluded unless requested.
type TicketFilter struct {
	CreatorID       *string
	IncludeArchived bool
	SearchTerm      *string
	Category        *domain.TicketCategory
	Priority        *domain.TicketPriority
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Fetch(ctx context.Context, filter TicketFilter) ([]domain.TicketRow, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Stats(ctx context.Context) (*domain.TicketStats, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// prepareCreate normalizes a ticket ahead of insertion: trims the required
// text fields, rejects empty ones, and pins the creation invariants (initial
// status, not archived) regardless of what the caller set.
func prepareCreate(ticket *domain.Ticket) error {
	ticket.Title = strings.TrimSpace(ticket.Title)
	ticket.Description = strings.TrimSpace(ticket.Description)
	if ticket.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if ticket.Description == "" {
		return apperrors.NewValidationError("description required", nil)
	}
	ticket.Status = domain.InitialStatus
	ticket.Archived = false
	return nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if err := prepareCreate(ticket); err != nil {
		return err
	}

	// now() is the transaction instant, so created_at and updated_at are
	// identical on insert.
	const query = `
        INSERT INTO tickets (title, description, category, status, priority, creator_id, assignee_id, created_at, updated_at, archived)
        VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now(),FALSE)
        RETURNING id, created_at, updated_at`
	if err := r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Status,
		ticket.Priority,
		ticket.CreatorID,
		ticket.AssigneeID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, title, description, category, status, priority, creator_id, assignee_id, created_at, updated_at, archived
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatorID,
		&ticket.AssigneeID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.Archived,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return &ticket, nil
}

func (r *ticketRepository) Fetch(ctx context.Context, filter TicketFilter) ([]domain.TicketRow, error) {
	query, args := buildFetchQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	defer rows.Close()
	return scanTicketRows(rows)
}

func (r *ticketRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	// Empty updates are a contractual no-op: no write, no updated_at bump.
	if len(fields) == 0 {
		return nil
	}
	query, args, err := buildUpdateQuery(id, fields)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.MapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return nil
}

func (r *ticketRepository) Stats(ctx context.Context) (*domain.TicketStats, error) {
	// One query, one snapshot: the counters can never skew against each other.
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = $1),
               COUNT(*) FILTER (WHERE status = $2),
               COUNT(*) FILTER (WHERE status = $3),
               COUNT(*) FILTER (WHERE archived)
        FROM tickets`
	var stats domain.TicketStats
	if err := r.pool.QueryRow(ctx, query,
		domain.TicketStatusNew,
		domain.TicketStatusInProgress,
		domain.TicketStatusResolved,
	).Scan(&stats.Total, &stats.New, &stats.InProgress, &stats.Resolved, &stats.Archived); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &stats, nil
}

func scanTicketRows(rows pgx.Rows) ([]domain.TicketRow, error) {
	var result []domain.TicketRow
	for rows.Next() {
		var row domain.TicketRow
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Description,
			&row.Category,
			&row.Status,
			&row.Priority,
			&row.CreatorID,
			&row.AssigneeID,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Archived,
			&row.CreatorName,
			&row.AssigneeName,
		); err != nil {
			return nil, apperrors.MapError(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}
