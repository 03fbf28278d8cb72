package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studio-teams/internal/domain/models"
	"studio-teams/internal/lib/logger/sl"
)

// Notifier is the fire-and-forget notification capability the workflows
// call after their primary action commits. Failures are swallowed.
type Notifier interface {
	Notify(userID uuid.UUID, ntype, title, message string, metadata map[string]any)
}

type NotificationService struct {
	log              *slog.Logger
	notificationRepo NotificationStore
}

type NotificationStore interface {
	Insert(n models.Notification) error
	ListByUser(userID uuid.UUID) ([]models.Notification, error)
}

func NewNotificationService(
	log *slog.Logger,
	notificationRepo NotificationStore) *NotificationService {
	return &NotificationService{
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// Notify records a notification row. Errors are logged, never returned:
// a lost notification must not fail or roll back the action it follows.
func (s *NotificationService) Notify(userID uuid.UUID, ntype, title, message string, metadata map[string]any) {
	const op = "service.notifier.Notify"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("type", ntype),
	)

	var raw []byte
	if len(metadata) > 0 {
		var err error
		raw, err = json.Marshal(metadata)
		if err != nil {
			log.Warn("failed to marshal notification metadata", sl.Err(err))
			raw = nil
		}
	}

	err := s.notificationRepo.Insert(models.Notification{
		UserID:   userID,
		Type:     ntype,
		Title:    title,
		Message:  message,
		Metadata: raw,
	})
	if err != nil {
		log.Warn("failed to insert notification", sl.Err(err))
	}
}

func (s *NotificationService) ListForUser(userID uuid.UUID) ([]models.Notification, error) {
	const op = "service.notifier.ListForUser"

	notifications, err := s.notificationRepo.ListByUser(userID)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to list notifications", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}
