package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
)

type TeamRepo struct {
	storage *sqlx.DB
}

func NewTeamRepo(storage *sqlx.DB) *TeamRepo {
	return &TeamRepo{storage: storage}
}

// CreateTeamWithLead inserts the team and its lead membership in one
// transaction. The unique index on team_members(user_id) backs the
// single-team invariant even if a concurrent create slips past the
// membership pre-check.
func (r *TeamRepo) CreateTeamWithLead(team models.Team) (*models.Team, error) {
	const op = "repo.team.CreateTeamWithLead"

	tx, err := r.storage.Beginx()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	teamQuery := `
		INSERT INTO teams (name, description, category, max_members, is_open, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, category, max_members, is_open, created_by, created_at
	`

	var created models.Team
	err = tx.QueryRowx(teamQuery,
		team.Name, team.Description, team.Category,
		team.MaxMembers, team.IsOpen, team.CreatedBy,
	).StructScan(&created)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to insert team: %w", op, err)
	}

	memberQuery := `INSERT INTO team_members (team_id, user_id, role) VALUES ($1, $2, $3)`

	_, err = tx.Exec(memberQuery, created.ID, team.CreatedBy, models.RoleLead)
	if err != nil {
		if isUniqueViolation(err, "team_members_user_id_key") {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrAlreadyMember)
		}
		return nil, fmt.Errorf("%s: failed to insert lead membership: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	created.Members = []models.TeamMember{{
		TeamID: created.ID,
		UserID: team.CreatedBy,
		Role:   models.RoleLead,
	}}

	return &created, nil
}

func (r *TeamRepo) GetTeam(teamID uuid.UUID) (*models.Team, error) {
	const op = "repo.team.GetTeam"

	query := `
		SELECT id, name, description, category, max_members, is_open, created_by, created_at
		FROM teams WHERE id = $1
	`

	var team models.Team
	err := r.storage.Get(&team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetTeamWithMembers(teamID uuid.UUID) (*models.Team, error) {
	const op = "repo.team.GetTeamWithMembers"

	team, err := r.GetTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT team_id, user_id, role, joined_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY joined_at
	`

	var members []models.TeamMember
	err = r.storage.Select(&members, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get team members: %w", op, err)
	}

	team.Members = members

	return team, nil
}

// GetMembership returns the caller's membership row, whatever team it
// belongs to. A user belongs to at most one team.
func (r *TeamRepo) GetMembership(userID uuid.UUID) (*models.TeamMember, error) {
	const op = "repo.team.GetMembership"

	query := `SELECT team_id, user_id, role, joined_at FROM team_members WHERE user_id = $1`

	var member models.TeamMember
	err := r.storage.Get(&member, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrNotMember)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &member, nil
}

// LeaveTeam removes the caller's membership. A plain member is simply
// deleted; a lead may only leave as the sole remaining member, in which
// case the whole team row goes with them. Returns whether the team was
// deleted.
func (r *TeamRepo) LeaveTeam(teamID, userID uuid.UUID) (bool, error) {
	const op = "repo.team.LeaveTeam"

	tx, err := r.storage.Beginx()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	// Lock the team row so concurrent joins and leaves serialize.
	var lockedID uuid.UUID
	err = tx.Get(&lockedID, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
		}
		return false, fmt.Errorf("%s: failed to lock team: %w", op, err)
	}

	var member models.TeamMember
	err = tx.Get(&member,
		`SELECT team_id, user_id, role, joined_at FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, apperrors.ErrNotMember)
		}
		return false, fmt.Errorf("%s: failed to get membership: %w", op, err)
	}

	if member.Role == models.RoleMember {
		_, err = tx.Exec(`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
		if err != nil {
			return false, fmt.Errorf("%s: failed to delete membership: %w", op, err)
		}

		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
		}
		return false, nil
	}

	var count int
	err = tx.Get(&count, `SELECT COUNT(*) FROM team_members WHERE team_id = $1`, teamID)
	if err != nil {
		return false, fmt.Errorf("%s: failed to count members: %w", op, err)
	}
	if count > 1 {
		return false, fmt.Errorf("%s: %w", op, apperrors.ErrLeadMustTransfer)
	}

	// Sole remaining lead: delete the team, membership cascades.
	_, err = tx.Exec(`DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return false, fmt.Errorf("%s: failed to delete team: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return true, nil
}

// GetTeamLead returns the user id of the team's current lead.
func (r *TeamRepo) GetTeamLead(teamID uuid.UUID) (uuid.UUID, error) {
	const op = "repo.team.GetTeamLead"

	query := `SELECT user_id FROM team_members WHERE team_id = $1 AND role = $2`

	var leadID uuid.UUID
	err := r.storage.Get(&leadID, query, teamID, models.RoleLead)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamLeadMissing)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return leadID, nil
}
