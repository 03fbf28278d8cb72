package models

import "github.com/google/uuid"

// MinCreateRankOrder is the rank ordinal required to create a team.
const MinCreateRankOrder = 3

type Profile struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	RankName    string    `db:"rank_name" json:"rank_name"`
	RankOrder   int       `db:"rank_order" json:"rank_order"`
}
