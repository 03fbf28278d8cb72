package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"studio-teams/internal/http/v1/handler"
	"studio-teams/internal/service"
)

type NotificationRouter struct {
	handler *handler.NotificationHandler
}

func NewNotificationRouter(notificationService *service.NotificationService, log *slog.Logger) *NotificationRouter {
	return &NotificationRouter{
		handler: handler.NewNotificationHandler(notificationService, log),
	}
}

func (nr *NotificationRouter) SetupRoutes(r chi.Router) {
	r.Get("/notifications", nr.handler.ListForCaller)
}
