package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/http/v1/handler"
	"studio-teams/internal/service"
)

type ManageTeamRouter struct {
	handler *handler.ManageTeamHandler
}

func NewManageTeamRouter(
	teamService *service.TeamService,
	invitationService *service.InvitationService,
	joinRequestService *service.JoinRequestService,
	log *slog.Logger) *ManageTeamRouter {
	return &ManageTeamRouter{
		handler: handler.NewManageTeamHandler(teamService, invitationService, joinRequestService, log),
	}
}

func (mr *ManageTeamRouter) SetupRoutes(r chi.Router) {
	r.Post("/manage-team", mr.handler.ManageTeam)
}
