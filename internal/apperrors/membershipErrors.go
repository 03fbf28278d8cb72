package apperrors

import "errors"

var (
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationResolved  = errors.New("invitation already responded to")
	ErrDuplicateInvitation = errors.New("a pending invitation for this user already exists")
	ErrInviteeHasTeam      = errors.New("user is already a member of a team")
	ErrRequestNotFound     = errors.New("join request not found")
	ErrRequestResolved     = errors.New("join request already responded to")
)
