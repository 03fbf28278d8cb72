package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/http/v1/handler"
	"studio-teams/internal/service"
)

type InvitationRouter struct {
	handler *handler.InvitationHandler
}

func NewInvitationRouter(invitationService *service.InvitationService, log *slog.Logger) *InvitationRouter {
	return &InvitationRouter{
		handler: handler.NewInvitationHandler(invitationService, log),
	}
}

func (ir *InvitationRouter) SetupRoutes(r chi.Router) {
	r.Get("/teams/{team_id}/invitations", ir.handler.ListPending)
}
