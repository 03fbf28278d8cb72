package v1

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/http/v1/router"
	"studio-teams/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	TeamService         *service.TeamService
	InvitationService   *service.InvitationService
	JoinRequestService  *service.JoinRequestService
	NotificationService *service.NotificationService
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewManageTeamRouter(deps.TeamService, deps.InvitationService, deps.JoinRequestService, log),
		router.NewTeamRouter(deps.TeamService, log),
		router.NewInvitationRouter(deps.InvitationService, log),
		router.NewJoinRequestRouter(deps.JoinRequestService, log),
		router.NewNotificationRouter(deps.NotificationService, log),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
