package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/events"
	"github.com/abkoo/helpdesk/internal/repository"
)

// UserService exposes the directory operations the dashboard needs: the
// assignment picker listing and soft deactivation.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, logger: logger}
}

// ListActive returns active users ordered by display name.
func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.users.ListActive(ctx)
}

// Deactivate soft-deletes an account. Already-inactive accounts stay
// inactive; repeating the call is not an error.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if err := s.users.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deactivated", zap.String("user_id", id))
	s.publish(ctx, events.Event{
		Type:    events.EventUserDeactivated,
		ActorID: id,
		Payload: events.UserDeactivatedPayload{UserID: id},
	})
	return nil
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
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
