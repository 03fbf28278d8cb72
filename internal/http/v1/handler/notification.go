package handler

import (
	"log/slog"
	"net/http"

	"studio-teams/internal/apperrors"
	"studio-teams/internal/domain/models"
	"studio-teams/internal/http/middleware"
	"studio-teams/internal/lib/logger/sl"
	"studio-teams/internal/service"
)

type ListNotificationsResponse struct {
	Success       bool                  `json:"success"`
	Notifications []models.Notification `json:"notifications"`
}

type NotificationHandler struct {
	notificationService *service.NotificationService
	log                 *slog.Logger
}

func NewNotificationHandler(notificationService *service.NotificationService, log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		log:                 log,
	}
}

func (h *NotificationHandler) ListForCaller(w http.ResponseWriter, r *http.Request) {
	const op = "handler.notification.ListForCaller"

	log := h.log.With(
		slog.String("op", op),
	)

	callerID, ok := middleware.GetUserID(r)
	if !ok {
		log.Error("no caller identity in request context")
		writeError(w, http.StatusUnauthorized, "authentication required", "unauthorized", apperrors.ErrUnauthenticated)
		return
	}

	notifications, err := h.notificationService.ListForUser(callerID)
	if err != nil {
		log.Error("failed to list notifications", sl.Err(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListNotificationsResponse{Success: true, Notifications: notifications})
	log.Info("notifications listed successfully", slog.Int("count", len(notifications)))
}
