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

type ListJoinRequestsResponse struct {
	Success  bool                     `json:"success"`
	Requests []models.TeamJoinRequest `json:"requests"`
}

type JoinRequestHandler struct {
	joinRequestService *service.JoinRequestService
	log                *slog.Logger
}

func NewJoinRequestHandler(joinRequestService *service.JoinRequestService, log *slog.Logger) *JoinRequestHandler {
	return &JoinRequestHandler{
		joinRequestService: joinRequestService,
		log:                log,
	}
}

func (h *JoinRequestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	const op = "handler.joinRequest.ListPending"

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

	requests, err := h.joinRequestService.ListPending(r.Context(), callerID, teamID)
	if err != nil {
		log.Error("failed to list join requests", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListJoinRequestsResponse{Success: true, Requests: requests})
	log.Info("join requests listed successfully", slog.Int("count", len(requests)))
}
