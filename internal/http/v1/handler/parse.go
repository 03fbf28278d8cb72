package handler

import (
	"fmt"

	"github.com/google/uuid"
)

func parseID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", field)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid uuid", field)
	}

	return id, nil
}
