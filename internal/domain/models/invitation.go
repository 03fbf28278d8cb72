package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type TeamInvitation struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	TeamID      uuid.UUID    `db:"team_id" json:"team_id"`
	InviterID   uuid.UUID    `db:"inviter_id" json:"inviter_id"`
	InviteeID   uuid.UUID    `db:"invitee_id" json:"invitee_id"`
	Message     string       `db:"message" json:"message,omitempty"`
	Status      string       `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	RespondedAt sql.NullTime `db:"responded_at" json:"responded_at,omitempty"`
}
