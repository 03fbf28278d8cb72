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

type JoinRequestRepo struct {
	storage *sqlx.DB
}

func NewJoinRequestRepo(storage *sqlx.DB) *JoinRequestRepo {
	return &JoinRequestRepo{storage: storage}
}

// CanJoinTeam delegates admissibility to the stored predicate: the team
// must be open, not full, and the user teamless.
func (r *JoinRequestRepo) CanJoinTeam(teamID, userID uuid.UUID) (bool, error) {
	const op = "repo.joinRequest.CanJoinTeam"

	var allowed bool
	err := r.storage.Get(&allowed, `SELECT can_join_team($1, $2)`, teamID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return allowed, nil
}

func (r *JoinRequestRepo) CreateRequest(req models.TeamJoinRequest) (*models.TeamJoinRequest, error) {
	const op = "repo.joinRequest.CreateRequest"

	query := `
		INSERT INTO team_join_requests (team_id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, team_id, user_id, message, status, created_at, responded_at, responded_by
	`

	var created models.TeamJoinRequest
	err := r.storage.QueryRowx(query, req.TeamID, req.UserID, req.Message).StructScan(&created)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to insert join request: %w", op, err)
	}

	return &created, nil
}

func (r *JoinRequestRepo) GetRequest(requestID uuid.UUID) (*models.TeamJoinRequest, error) {
	const op = "repo.joinRequest.GetRequest"

	query := `
		SELECT id, team_id, user_id, message, status, created_at, responded_at, responded_by
		FROM team_join_requests WHERE id = $1
	`

	var req models.TeamJoinRequest
	err := r.storage.Get(&req, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrRequestNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &req, nil
}

// ApproveRequest moves a pending request to approved and inserts the
// requester's membership in one transaction. Capacity is validated under
// the team row lock before the status flips.
func (r *JoinRequestRepo) ApproveRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error) {
	const op = "repo.joinRequest.ApproveRequest"

	tx, err := r.storage.Beginx()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	req, err := lockPendingRequest(tx, requestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var team models.Team
	err = tx.Get(&team,
		`SELECT id, name, max_members FROM teams WHERE id = $1 FOR UPDATE`, req.TeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamNotFound)
		}
		return nil, fmt.Errorf("%s: failed to lock team: %w", op, err)
	}

	var count int
	err = tx.Get(&count, `SELECT COUNT(*) FROM team_members WHERE team_id = $1`, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count members: %w", op, err)
	}
	if count >= team.MaxMembers {
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrTeamFull)
	}

	updateQuery := `
		UPDATE team_join_requests SET status = $1, responded_at = now(), responded_by = $2
		WHERE id = $3
		RETURNING id, team_id, user_id, message, status, created_at, responded_at, responded_by
	`
	var updated models.TeamJoinRequest
	err = tx.QueryRowx(updateQuery, models.RequestApproved, responderID, requestID).
		StructScan(&updated)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update join request: %w", op, err)
	}

	_, err = tx.Exec(`INSERT INTO team_members (team_id, user_id, role) VALUES ($1, $2, $3)`,
		req.TeamID, req.UserID, models.RoleMember)
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

func (r *JoinRequestRepo) RejectRequest(requestID, responderID uuid.UUID) (*models.TeamJoinRequest, error) {
	const op = "repo.joinRequest.RejectRequest"

	tx, err := r.storage.Beginx()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := lockPendingRequest(tx, requestID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updateQuery := `
		UPDATE team_join_requests SET status = $1, responded_at = now(), responded_by = $2
		WHERE id = $3
		RETURNING id, team_id, user_id, message, status, created_at, responded_at, responded_by
	`
	var updated models.TeamJoinRequest
	err = tx.QueryRowx(updateQuery, models.RequestRejected, responderID, requestID).
		StructScan(&updated)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update join request: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return &updated, nil
}

func (r *JoinRequestRepo) ListPendingByTeam(teamID uuid.UUID) ([]models.TeamJoinRequest, error) {
	const op = "repo.joinRequest.ListPendingByTeam"

	query := `
		SELECT id, team_id, user_id, message, status, created_at, responded_at, responded_by
		FROM team_join_requests
		WHERE team_id = $1 AND status = $2
		ORDER BY created_at
	`

	var reqs []models.TeamJoinRequest
	err := r.storage.Select(&reqs, query, teamID, models.RequestPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reqs, nil
}

func lockPendingRequest(tx *sqlx.Tx, requestID uuid.UUID) (*models.TeamJoinRequest, error) {
	query := `
		SELECT id, team_id, user_id, message, status, created_at, responded_at, responded_by
		FROM team_join_requests WHERE id = $1 FOR UPDATE
	`

	var req models.TeamJoinRequest
	err := tx.Get(&req, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}

	if req.Status != models.RequestPending {
		return nil, apperrors.ErrRequestResolved
	}

	return &req, nil
}
