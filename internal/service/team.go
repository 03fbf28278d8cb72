package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/lib/logger/sl"
)

type TeamService struct {
	log         *slog.Logger
	teamRepo    TeamProvider
	profileRepo ProfileProvider
	notifier    Notifier
}

type TeamProvider interface {
	CreateTeamWithLead(team models.Team) (*models.Team, error)
	GetTeam(teamID uuid.UUID) (*models.Team, error)
	GetTeamWithMembers(teamID uuid.UUID) (*models.Team, error)
	GetMembership(userID uuid.UUID) (*models.TeamMember, error)
	LeaveTeam(teamID, userID uuid.UUID) (bool, error)
}

type ProfileProvider interface {
	GetProfile(userID uuid.UUID) (*models.Profile, error)
}

func NewTeamService(
	log *slog.Logger,
	teamRepo TeamProvider,
	profileRepo ProfileProvider,
	notifier Notifier) *TeamService {
	return &TeamService{
		log:         log,
		teamRepo:    teamRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

type CreateTeamInput struct {
	Name        string
	Description string
	Category    string
	MaxMembers  int
	IsOpen      bool
}

func (s *TeamService) CreateTeam(ctx context.Context, callerID uuid.UUID, input CreateTeamInput) (*models.Team, error) {
	const op = "service.team.CreateTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
	)

	log.Info("attempting to create team", slog.String("name", input.Name))

	if err := validateCreateTeamInput(&input); err != nil {
		log.Warn("invalid create team input", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.profileRepo.GetProfile(callerID)
	if err != nil {
		log.Error("failed to get caller profile", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if profile.RankOrder < models.MinCreateRankOrder {
		log.Warn("rank too low to create team",
			slog.Int("rank_order", profile.RankOrder),
			slog.Int("required", models.MinCreateRankOrder))
		return nil, fmt.Errorf("%s: %w: requires rank %d, current rank is %d",
			op, apperrors.ErrRankTooLow, models.MinCreateRankOrder, profile.RankOrder)
	}

	if _, err := s.teamRepo.GetMembership(callerID); err == nil {
		log.Warn("caller already belongs to a team")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrAlreadyMember)
	} else if !errors.Is(err, apperrors.ErrNotMember) {
		log.Error("failed to check existing membership", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	team, err := s.teamRepo.CreateTeamWithLead(models.Team{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		MaxMembers:  input.MaxMembers,
		IsOpen:      input.IsOpen,
		CreatedBy:   callerID,
	})
	if err != nil {
		log.Error("failed to create team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notifier.Notify(callerID, models.NotificationTeamCreated,
		"Team Created",
		fmt.Sprintf("Your team %q has been created. You are the team lead.", team.Name),
		map[string]any{"team_id": team.ID.String()})

	log.Info("team created successfully", slog.String("team_id", team.ID.String()))

	return team, nil
}

func (s *TeamService) LeaveTeam(ctx context.Context, callerID, teamID uuid.UUID) (bool, error) {
	const op = "service.team.LeaveTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("caller_id", callerID.String()),
		slog.String("team_id", teamID.String()),
	)

	log.Info("attempting to leave team")

	teamDeleted, err := s.teamRepo.LeaveTeam(teamID, callerID)
	if err != nil {
		log.Error("failed to leave team", sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("left team successfully", slog.Bool("team_deleted", teamDeleted))

	return teamDeleted, nil
}

func (s *TeamService) GetTeamWithMembers(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	const op = "service.team.GetTeamWithMembers"

	team, err := s.teamRepo.GetTeamWithMembers(teamID)
	if err != nil {
		s.log.With(slog.String("op", op)).Error("failed to get team", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return team, nil
}

func validateCreateTeamInput(input *CreateTeamInput) error {
	var result *multierror.Error

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		result = multierror.Append(result, apperrors.ErrTeamNameRequired)
	} else if len(input.Name) < 3 {
		result = multierror.Append(result, apperrors.ErrTeamNameTooShort)
	}

	if input.MaxMembers == 0 {
		input.MaxMembers = models.DefaultMaxMembers
	} else if input.MaxMembers < 1 {
		result = multierror.Append(result, apperrors.ErrMaxMembersLow)
	}

	return result.ErrorOrNil()
}
