package repo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studio-teams/internal/domain/models"
)

type NotificationRepo struct {
	storage *sqlx.DB
}

func NewNotificationRepo(storage *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{storage: storage}
}

func (r *NotificationRepo) Insert(n models.Notification) error {
	const op = "repo.notification.Insert"

	query := `
		INSERT INTO notifications (user_id, type, title, message, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`

	var metadata interface{}
	if len(n.Metadata) > 0 {
		metadata = n.Metadata
	}

	_, err := r.storage.Exec(query, n.UserID, n.Type, n.Title, n.Message, metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *NotificationRepo) ListByUser(userID uuid.UUID) ([]models.Notification, error) {
	const op = "repo.notification.ListByUser"

	query := `
		SELECT id, user_id, type, title, message, metadata, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notifications []models.Notification
	err := r.storage.Select(&notifications, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return notifications, nil
}
