package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/http/v1/handler"
	"studio-teams/internal/service"
)

type JoinRequestRouter struct {
	handler *handler.JoinRequestHandler
}

func NewJoinRequestRouter(joinRequestService *service.JoinRequestService, log *slog.Logger) *JoinRequestRouter {
	return &JoinRequestRouter{
		handler: handler.NewJoinRequestHandler(joinRequestService, log),
	}
}

func (jr *JoinRequestRouter) SetupRoutes(r chi.Router) {
	r.Get("/teams/{team_id}/join-requests", jr.handler.ListPending)
}
