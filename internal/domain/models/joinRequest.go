package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type TeamJoinRequest struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	TeamID      uuid.UUID     `db:"team_id" json:"team_id"`
	UserID      uuid.UUID     `db:"user_id" json:"user_id"`
	Message     string        `db:"message" json:"message,omitempty"`
	Status      string        `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	RespondedAt sql.NullTime  `db:"responded_at" json:"responded_at,omitempty"`
	RespondedBy uuid.NullUUID `db:"responded_by" json:"responded_by,omitempty"`
}
