package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/lib/logger/sl"
)

type InvitationService struct {
	log            *slog.Logger
	invitationRepo InvitationProvider
	teamRepo       TeamProvider
	notifier       Notifier
}

type InvitationProvider interface {
	CreateInvitation(inv models.TeamInvitation) (*models.TeamInvitation, error)
	AcceptInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error)
	DeclineInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error)
	ListPendingByTeam(teamID uuid.UUID) ([]models.TeamInvitation, error)
}

func NewInvitationService(
	log *slog.Logger,
	invitationRepo InvitationProvider,
	teamRepo TeamProvider,
	notifier Notifier) *InvitationService {
	return &InvitationService{
		log:            log,
		invitationRepo: invitationRepo,
		teamRepo:       teamRepo,
		notifier:       notifier,
	}
}

func (s *InvitationService) Invite(ctx context.Context, callerID, teamID, inviteeID uuid.UUID, message string) (*models.TeamInvitation, error) {
	const op = "service.invitation.Invite"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
		slog.String("team_id", teamID.String()),
		slog.String("invitee_id", inviteeID.String()),
	)

	log.Info("attempting to invite user")

	team, err := s.teamRepo.GetTeam(teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.requireLead(callerID, teamID); err != nil {
		log.Warn("caller is not the team lead")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.teamRepo.GetMembership(inviteeID); err == nil {
		log.Warn("invitee already belongs to a team")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrInviteeHasTeam)
	} else if !errors.Is(err, apperrors.ErrNotMember) {
		log.Error("failed to check invitee membership", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	invitation, err := s.invitationRepo.CreateInvitation(models.TeamInvitation{
		TeamID:    teamID,
		InviterID: callerID,
		InviteeID: inviteeID,
		Message:   message,
	})
	if err != nil {
		log.Error("failed to create invitation", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notifier.Notify(inviteeID, models.NotificationTeamInvitation,
		"Team Invitation",
		fmt.Sprintf("You have been invited to join team %q.", team.Name),
		map[string]any{
			"invitation_id": invitation.ID.String(),
			"team_id":       teamID.String(),
		})

	log.Info("invitation created successfully",
		slog.String("invitation_id", invitation.ID.String()))

	return invitation, nil
}

func (s *InvitationService) Respond(ctx context.Context, callerID, invitationID uuid.UUID, accept bool) (*models.TeamInvitation, error) {
	const op = "service.invitation.Respond"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
		slog.String("invitation_id", invitationID.String()),
		slog.Bool("accept", accept),
	)

	log.Info("attempting to respond to invitation")

	var (
		invitation *models.TeamInvitation
		err        error
	)
	if accept {
		invitation, err = s.invitationRepo.AcceptInvitation(invitationID, callerID)
	} else {
		invitation, err = s.invitationRepo.DeclineInvitation(invitationID, callerID)
	}
	if err != nil {
		log.Error("failed to respond to invitation", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teamName := "the team"
	if team, teamErr := s.teamRepo.GetTeam(invitation.TeamID); teamErr == nil {
		teamName = fmt.Sprintf("%q", team.Name)
	}

	if accept {
		s.notifier.Notify(invitation.InviterID, models.NotificationInvitationAccepted,
			"Invitation Accepted",
			fmt.Sprintf("Your invitation to %s has been accepted.", teamName),
			map[string]any{"invitation_id": invitation.ID.String()})
	} else {
		s.notifier.Notify(invitation.InviterID, models.NotificationInvitationDeclined,
			"Invitation Declined",
			fmt.Sprintf("Your invitation to %s has been declined.", teamName),
			map[string]any{"invitation_id": invitation.ID.String()})
	}

	log.Info("invitation responded successfully", slog.String("status", invitation.Status))

	return invitation, nil
}

func (s *InvitationService) ListPending(ctx context.Context, callerID, teamID uuid.UUID) ([]models.TeamInvitation, error) {
	const op = "service.invitation.ListPending"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_id", teamID.String()),
	)

	if err := s.requireLead(callerID, teamID); err != nil {
		log.Warn("caller is not the team lead")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	invitations, err := s.invitationRepo.ListPendingByTeam(teamID)
	if err != nil {
		log.Error("failed to list invitations", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invitations, nil
}

func (s *InvitationService) requireLead(callerID, teamID uuid.UUID) error {
	membership, err := s.teamRepo.GetMembership(callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotMember) {
			return apperrors.ErrNotTeamLead
		}
		return err
	}
	if membership.TeamID != teamID || membership.Role != models.RoleLead {
		return apperrors.ErrNotTeamLead
	}
	return nil
}
