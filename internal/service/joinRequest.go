package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/lib/logger/sl"
)

type JoinRequestService struct {
	log         *slog.Logger
	requestRepo JoinRequestProvider
	teamRepo    TeamLookupProvider
	notifier    Notifier
}

type JoinRequestProvider interface {
	CanJoinTeam(teamID, userID uuid.UUID) (bool, error)
	CreateRequest(req models.TeamJoinRequest) (*models.TeamJoinRequest, error)
	GetRequest(requestID uuid.UUID) (*models.TeamJoinRequest, error)
	ApproveRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error)
	RejectRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error)
	ListPendingByTeam(teamID uuid.UUID) ([]models.TeamJoinRequest, error)
}

type TeamLookupProvider interface {
	GetTeam(teamID uuid.UUID) (*models.Team, error)
	GetTeamLead(teamID uuid.UUID) (uuid.UUID, error)
}

func NewJoinRequestService(
	log *slog.Logger,
	requestRepo JoinRequestProvider,
	teamRepo TeamLookupProvider,
	notifier Notifier) *JoinRequestService {
	return &JoinRequestService{
		log:         log,
		requestRepo: requestRepo,
		teamRepo:    teamRepo,
		notifier:    notifier,
	}
}

func (s *JoinRequestService) RequestToJoin(ctx context.Context, callerID, teamID uuid.UUID, message string) (*models.TeamJoinRequest, error) {
	const op = "service.joinRequest.RequestToJoin"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
		slog.String("team_id", teamID.String()),
	)

	log.Info("attempting to request to join team")

	team, err := s.teamRepo.GetTeam(teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	allowed, err := s.requestRepo.CanJoinTeam(teamID, callerID)
	if err != nil {
		log.Error("failed to check join eligibility", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !allowed {
		log.Warn("join request not admissible")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotOpen)
	}

	request, err := s.requestRepo.CreateRequest(models.TeamJoinRequest{
		TeamID:  teamID,
		UserID:  callerID,
		Message: message,
	})
	if err != nil {
		log.Error("failed to create join request", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if leadID, leadErr := s.teamRepo.GetTeamLead(teamID); leadErr == nil {
		s.notifier.Notify(leadID, models.NotificationJoinRequest,
			"New Join Request",
			fmt.Sprintf("Someone has requested to join your team %q.", team.Name),
			map[string]any{
				"request_id": request.ID.String(),
				"team_id":    teamID.String(),
			})
	} else {
		log.Warn("failed to resolve team lead for notification", sl.Err(leadErr))
	}

	log.Info("join request created successfully",
		slog.String("request_id", request.ID.String()))

	return request, nil
}

func (s *JoinRequestService) Respond(ctx context.Context, callerID, requestID uuid.UUID, approve bool) (*models.TeamJoinRequest, error) {
	const op = "service.joinRequest.Respond"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
		slog.String("request_id", requestID.String()),
		slog.Bool("approve", approve),
	)

	log.Info("attempting to respond to join request")

	request, err := s.requestRepo.GetRequest(requestID)
	if err != nil {
		log.Error("failed to get join request", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if request.Status != models.RequestPending {
		log.Warn("join request already resolved", slog.String("status", request.Status))
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrRequestResolved)
	}

	leadID, err := s.teamRepo.GetTeamLead(request.TeamID)
	if err != nil {
		log.Error("failed to resolve team lead", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if leadID != callerID {
		log.Warn("caller is not the team lead")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotTeamLead)
	}

	var updated *models.TeamJoinRequest
	if approve {
		updated, err = s.requestRepo.ApproveRequest(requestID, callerID)
	} else {
		updated, err = s.requestRepo.RejectRequest(requestID, callerID)
	}
	if err != nil {
		log.Error("failed to respond to join request", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teamName := "the team"
	if team, teamErr := s.teamRepo.GetTeam(updated.TeamID); teamErr == nil {
		teamName = fmt.Sprintf("%q", team.Name)
	}

	if approve {
		s.notifier.Notify(updated.UserID, models.NotificationRequestApproved,
			"Join Request Approved",
			fmt.Sprintf("Your request to join %s has been approved. Welcome aboard!", teamName),
			map[string]any{"request_id": updated.ID.String()})
	} else {
		s.notifier.Notify(updated.UserID, models.NotificationRequestRejected,
			"Join Request Rejected",
			fmt.Sprintf("Your request to join %s has been rejected.", teamName),
			map[string]any{"request_id": updated.ID.String()})
	}

	log.Info("join request responded successfully", slog.String("status", updated.Status))

	return updated, nil
}

func (s *JoinRequestService) ListPending(ctx context.Context, callerID, teamID uuid.UUID) ([]models.TeamJoinRequest, error) {
	const op = "service.joinRequest.ListPending"

	log := s.log.With(
		slog.String("op", op),
		slog.String("team_id", teamID.String()),
	)

	leadID, err := s.teamRepo.GetTeamLead(teamID)
	if err != nil {
		log.Error("failed to resolve team lead", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if leadID != callerID {
		log.Warn("caller is not the team lead")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotTeamLead)
	}

	requests, err := s.requestRepo.ListPendingByTeam(teamID)
	if err != nil {
		log.Error("failed to list join requests", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return requests, nil
}
