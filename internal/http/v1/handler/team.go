package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/domain/models"
	"studio-teams/internal/lib/logger/sl"
	"studio-teams/internal/service"
)

type GetTeamResponse struct {
	Success bool        `json:"success"`
	Team    models.Team `json:"team"`
}

type TeamHandler struct {
	teamService *service.TeamService
	log         *slog.Logger
}

func NewTeamHandler(teamService *service.TeamService, log *slog.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		log:         log,
	}
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	const op = "handler.team.GetTeam"

	log := h.log.With(
		slog.String("op", op),
	)

	teamID, err := parseID(chi.URLParam(r, "team_id"), "team_id")
	if err != nil {
		log.Error("invalid team_id", sl.Err(err))
		writeError(w, http.StatusBadRequest, err.Error(), "validation_error", nil)
		return
	}

	team, err := h.teamService.GetTeamWithMembers(r.Context(), teamID)
	if err != nil {
		log.Error("failed to get team", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetTeamResponse{Success: true, Team: *team})
	log.Info("team retrieved successfully")
}
