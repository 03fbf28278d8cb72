package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"studio-teams/internal/app/rest"
	"studio-teams/internal/config"
	v1 "studio-teams/internal/http/v1"
	"studio-teams/internal/lib/migrator"
	"studio-teams/internal/repo"
	"studio-teams/internal/service"
	"studio-teams/internal/storage/postgresql"
)

type App struct {
	log     *slog.Logger
	storage *postgresql.Storage
	restApp *rest.App
}

func MustNew(log *slog.Logger) *App {
	cfg := config.MustLoad()

	if err := migrator.RunMigrations(cfg.Postgres, log); err != nil {
		log.Error("failed to run migrations", "error", err)
		panic(err)
	}

	storage := postgresql.Init(cfg.Postgres)

	teamRepo := repo.NewTeamRepo(storage.GetDB())
	invitationRepo := repo.NewInvitationRepo(storage.GetDB())
	joinRequestRepo := repo.NewJoinRequestRepo(storage.GetDB())
	profileRepo := repo.NewProfileRepo(storage.GetDB())
	notificationRepo := repo.NewNotificationRepo(storage.GetDB())

	notificationService := service.NewNotificationService(log, notificationRepo)
	teamService := service.NewTeamService(log, teamRepo, profileRepo, notificationService)
	invitationService := service.NewInvitationService(log, invitationRepo, teamRepo, notificationService)
	joinRequestService := service.NewJoinRequestService(log, joinRequestRepo, teamRepo, notificationService)

	routerDependencies := v1.RouterDependencies{
		TeamService:         teamService,
		InvitationService:   invitationService,
		JoinRequestService:  joinRequestService,
		NotificationService: notificationService,
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg.Server.Port,
		cfg.Auth.JWTSecret,
	)

	return &App{
		log:     log,
		storage: storage,
		restApp: restApp,
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	a.log.With(slog.String("op", op)).Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		a.log.Error("failed to stop HTTP server", "error", err)
	}

	if a.storage != nil {
		a.storage.Close()
		a.log.Info("database connection closed")
	}
}
