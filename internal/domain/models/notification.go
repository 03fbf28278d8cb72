package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTeamCreated        = "team_created"
	NotificationTeamInvitation     = "team_invitation"
	NotificationInvitationAccepted = "invitation_accepted"
	NotificationInvitationDeclined = "invitation_declined"
	NotificationJoinRequest        = "team_join_request"
	NotificationRequestApproved    = "join_request_approved"
	NotificationRequestRejected    = "join_request_rejected"
)

type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Metadata  []byte    `db:"metadata" json:"metadata,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
