package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleLead   = "lead"
	RoleMember = "member"
)

const DefaultMaxMembers = 5

type Team struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Category    string    `db:"category" json:"category,omitempty"`
	MaxMembers  int       `db:"max_members" json:"max_members"`
	IsOpen      bool      `db:"is_open" json:"is_open"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Members []TeamMember `db:"-" json:"members,omitempty"`
}

type TeamMember struct {
	TeamID   uuid.UUID `db:"team_id" json:"team_id"`
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	Role     string    `db:"role" json:"role"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}
