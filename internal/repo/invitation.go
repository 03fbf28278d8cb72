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

type InvitationRepo struct {
	storage *sqlx.DB
}

func NewInvitationRepo(storage *sqlx.DB) *InvitationRepo {
	return &InvitationRepo{storage: storage}
}

func (r *InvitationRepo) CreateInvitation(inv models.TeamInvitation) (*models.TeamInvitation, error) {
	const op = "repo.invitation.CreateInvitation"

	query := `
		INSERT INTO team_invitations (team_id, inviter_id, invitee_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, team_id, inviter_id, invitee_id, message, status, created_at, responded_at
	`

	var created models.TeamInvitation
	err := r.storage.QueryRowx(query, inv.TeamID, inv.InviterID, inv.InviteeID, inv.Message).
		StructScan(&created)
	if err != nil {
		if isUniqueViolation(err, "team_invitations_pending_key") {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateInvitation)
		}
		return nil, fmt.Errorf("%s: failed to insert invitation: %w", op, err)
	}

	return &created, nil
}

// AcceptInvitation moves a pending invitation to accepted and inserts the
// invitee's membership in one transaction. Capacity is validated under the
// team row lock before the status flips, so a full team leaves the
// invitation pending.
func (r *InvitationRepo) AcceptInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error) {
	const op = "repo.invitation.AcceptInvitation"

	tx, err := r.storage.Beginx()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	inv, err := lockPendingInvitation(tx, invitationID, inviteeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var team models.Team
	err = tx.Get(&team,
		`SELECT id, name, max_members FROM teams WHERE id = $1 FOR UPDATE`, inv.TeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("%s: failed to lock team: %w", op, err)
	}

	var count int
	err = tx.Get(&count, `SELECT COUNT(*) FROM team_members WHERE team_id = $1`, inv.TeamID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count members: %w", op, err)
	}
	if count >= team.MaxMembers {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamFull)
	}

	updateQuery := `
		UPDATE team_invitations SET status = $1, responded_at = now()
		WHERE id = $2
		RETURNING id, team_id, inviter_id, invitee_id, message, status, created_at, responded_at
	`
	var updated models.TeamInvitation
	err = tx.QueryRowx(updateQuery, models.InvitationAccepted, invitationID).StructScan(&updated)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update invitation: %w", op, err)
	}

	_, err = tx.Exec(`INSERT INTO team_members (team_id, user_id, role) VALUES ($1, $2, $3)`,
		inv.TeamID, inviteeID, models.RoleMember)
	if err != nil {
		if isUniqueViolation(err, "team_members_user_id_key") {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrAlreadyMember)
		}
		return nil, fmt.Errorf("%s: failed to insert membership: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return &updated, nil
}

func (r *InvitationRepo) DeclineInvitation(invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error) {
	const op = "repo.invitation.DeclineInvitation"

	tx, err := r.storage.Beginx()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := lockPendingInvitation(tx, invitationID, inviteeID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updateQuery := `
		UPDATE team_invitations SET status = $1, responded_at = now()
		WHERE id = $2
		RETURNING id, team_id, inviter_id, invitee_id, message, status, created_at, responded_at
	`
	var updated models.TeamInvitation
	err = tx.QueryRowx(updateQuery, models.InvitationDeclined, invitationID).StructScan(&updated)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update invitation: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return &updated, nil
}

func (r *InvitationRepo) ListPendingByTeam(teamID uuid.UUID) ([]models.TeamInvitation, error) {
	const op = "repo.invitation.ListPendingByTeam"

	query := `
		SELECT id, team_id, inviter_id, invitee_id, message, status, created_at, responded_at
		FROM team_invitations
		WHERE team_id = $1 AND status = $2
		ORDER BY created_at
	`

	var invs []models.TeamInvitation
	err := r.storage.Select(&invs, query, teamID, models.InvitationPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invs, nil
}

// lockPendingInvitation loads the caller's invitation under a row lock.
// A missing row and an invitation addressed to someone else are the same
// not-found to the caller; a resolved one reports its terminal state.
func lockPendingInvitation(tx *sqlx.Tx, invitationID, inviteeID uuid.UUID) (*models.TeamInvitation, error) {
	query := `
		SELECT id, team_id, inviter_id, invitee_id, message, status, created_at, responded_at
		FROM team_invitations WHERE id = $1 AND invitee_id = $2 FOR UPDATE
	`

	var inv models.TeamInvitation
	err := tx.Get(&inv, query, invitationID, inviteeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	if inv.Status != models.InvitationPending {
		return nil, apperrors.ErrInvitationResolved
	}

	return &inv, nil
}
