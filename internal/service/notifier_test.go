package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"studio-teams/internal/domain/models"
)

type failingNotificationStore struct {
	insertErr error
	inserted  []models.Notification
}

func (f *failingNotificationStore) Insert(n models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, n)
	return nil
}

func (f *failingNotificationStore) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	return f.inserted, nil
}

func TestNotify_SwallowsInsertFailure(t *testing.T) {
	store := &failingNotificationStore{insertErr: errors.New("connection refused")}
	svc := NewNotificationService(testLogger(), store)

	// Must not panic or surface the failure.
	svc.Notify(uuid.New(), models.NotificationTeamCreated, "Team Created", "msg", nil)
}

func TestNotify_MarshalsMetadata(t *testing.T) {
	store := &failingNotificationStore{}
	svc := NewNotificationService(testLogger(), store)

	svc.Notify(uuid.New(), models.NotificationTeamInvitation, "Team Invitation", "msg",
		map[string]any{"team_id": "abc"})

	if len(store.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(store.inserted))
	}
	if string(store.inserted[0].Metadata) != `{"team_id":"abc"}` {
		t.Fatalf("unexpected metadata: %s", store.inserted[0].Metadata)
	}
}
