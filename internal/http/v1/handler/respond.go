package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"studio-teams/internal/apperrors"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("Error encoding JSON response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, message, code string, err error) {
	errorResp := ErrorResponse{
		Error: message,
		Code:  code,
	}
	if err != nil {
		errorResp.Details = err.Error()
	}

	writeJSON(w, status, errorResp)
}

// writeServiceError maps a service failure onto the wire taxonomy:
// bad input, unauthorized, forbidden, not found, conflict, capacity,
// internal.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTeamNameRequired),
		errors.Is(err, apperrors.ErrTeamNameTooShort),
		errors.Is(err, apperrors.ErrMaxMembersLow),
		errors.Is(err, apperrors.ErrUnknownAction):
		writeError(w, http.StatusBadRequest, "invalid request", "validation_error", err)

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "authentication required", "unauthorized", err)

	case errors.Is(err, apperrors.ErrRankTooLow),
		errors.Is(err, apperrors.ErrNotTeamLead):
		writeError(w, http.StatusForbidden, "not allowed", "forbidden", err)

	case errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrTeamLeadMissing),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrNotMember),
		errors.Is(err, apperrors.ErrInvitationNotFound),
		errors.Is(err, apperrors.ErrInvitationResolved),
		errors.Is(err, apperrors.ErrRequestNotFound),
		errors.Is(err, apperrors.ErrRequestResolved):
		writeError(w, http.StatusNotFound, "not found", "not_found", err)

	case errors.Is(err, apperrors.ErrTeamFull):
		writeError(w, http.StatusConflict, "team is full", "capacity_exceeded", err)

	case errors.Is(err, apperrors.ErrAlreadyMember),
		errors.Is(err, apperrors.ErrInviteeHasTeam),
		errors.Is(err, apperrors.ErrTeamNotOpen),
		errors.Is(err, apperrors.ErrDuplicateInvitation),
		errors.Is(err, apperrors.ErrLeadMustTransfer):
		writeError(w, http.StatusConflict, "conflict", "conflict", err)

	default:
		writeError(w, http.StatusInternalServerError, "internal error", "internal", err)
	}
}
