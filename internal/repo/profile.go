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

type ProfileRepo struct {
	storage *sqlx.DB
}

func NewProfileRepo(storage *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{storage: storage}
}

func (r *ProfileRepo) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	const op = "repo.profile.GetProfile"

	query := `
		SELECT p.id, p.display_name, rk.name AS rank_name, rk.rank_order
		FROM profiles p
		JOIN ranks rk ON p.rank_id = rk.id
		WHERE p.id = $1
	`

	var profile models.Profile
	err := r.storage.Get(&profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperrors.ErrProfileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}
