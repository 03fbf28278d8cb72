package apperrors

import "errors"

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameRequired = errors.New("team name is required")
	ErrTeamNameTooShort = errors.New("team name must be at least 3 characters")
	ErrMaxMembersLow    = errors.New("max_members must be at least 1")
	ErrTeamFull         = errors.New("team is full")
	ErrTeamNotOpen      = errors.New("cannot join this team")
	ErrAlreadyMember    = errors.New("already a member of a team")
	ErrNotMember        = errors.New("not a member of this team")
	ErrNotTeamLead      = errors.New("only the team lead can perform this action")
	ErrTeamLeadMissing  = errors.New("team has no lead")
	ErrLeadMustTransfer = errors.New("transfer leadership or remove members before leaving")
)
