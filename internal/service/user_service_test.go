package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/events"
)

func TestDeactivateIsIdempotent(t *testing.T) {
	// The repository contract makes a repeated deactivation succeed; the
	// service must not turn the second call into an error.
	calls := 0
	repo := &fakeUserRepo{deactivateFn: func(ctx context.Context, id string) error {
		calls++
		return nil
	}}
	svc := NewUserService(repo, nil, zap.NewNop())

	if err := svc.Deactivate(context.Background(), "U2"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := svc.Deactivate(context.Background(), "U2"); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestDeactivatePublishesEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var seen []events.Event
	dispatcher.Subscribe(events.EventUserDeactivated, func(ctx context.Context, event events.Event) error {
		seen = append(seen, event)
		return nil
	})
	svc := NewUserService(&fakeUserRepo{}, dispatcher, zap.NewNop())

	if err := svc.Deactivate(context.Background(), "U2"); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("events=%d, want 1", len(seen))
	}
	payload, ok := seen[0].Payload.(events.UserDeactivatedPayload)
	if !ok || payload.UserID != "U2" {
		t.Fatalf("payload=%v", seen[0].Payload)
	}
}

func TestListActiveDelegates(t *testing.T) {
	repo := &fakeUserRepo{listFn: func(ctx context.Context) ([]domain.User, error) {
		return []domain.User{
			{ID: "u1", DisplayName: "Anna"},
			{ID: "u2", DisplayName: "Bernd"},
		}, nil
	}}
	svc := NewUserService(repo, nil, zap.NewNop())

	users, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(users) != 2 || users[0].DisplayName != "Anna" {
		t.Fatalf("users=%+v", users)
	}
}
