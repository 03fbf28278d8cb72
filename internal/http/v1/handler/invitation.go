package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/http/middleware"
	"studio-teams/internal/lib/logger/sl"
	"studio-teams/internal/service"
)

type ListInvitationsResponse struct {
	Success     bool                    `json:"success"`
	Invitations []models.TeamInvitation `json:"invitations"`
}

type InvitationHandler struct {
	invitationService *service.InvitationService
	log               *slog.Logger
}

func NewInvitationHandler(invitationService *service.InvitationService, log *slog.Logger) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		log:               log,
	}
}

func (h *InvitationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	const op = "handler.invitation.ListPending"

	log := h.log.With(
		slog.String("op", op),
	)

	callerID, ok := middleware.GetUserID(r)
	if !ok {
		log.Error("no caller identity in request context")
		writeError(w, http.StatusUnauthorized, "authentication required", "unauthorized", apperrors.ErrUnauthenticated)
		return
	}

	teamID, err := parseID(chi.URLParam(r, "team_id"), "team_id")
	if err != nil {
		log.Error("invalid team_id", sl.Err(err))
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}

	invitations, err := h.invitationService.ListPending(r.Context(), callerID, teamID)
	if err != nil {
		log.Error("failed to list invitations", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListInvitationsResponse{Success: true, Invitations: invitations})
	log.Info("invitations listed successfully", slog.Int("count", len(invitations)))
}
