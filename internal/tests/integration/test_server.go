package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"studio-teams/internal/auth"
	"studio-teams/internal/config"
	"studio-teams/internal/http/middleware"
	v1 "studio-teams/internal/http/v1"
	"studio-teams/internal/lib/migrator"
	"studio-teams/internal/repo"
	"studio-teams/internal/service"
)

const testJWTSecret = "integration-test-secret"

// Fixture profiles. UserA..UserC hold rank designer (rank_order 3);
// UserD holds rank apprentice (rank_order 1).
var (
	UserA = uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	UserB = uuid.MustParse("00000000-0000-0000-0000-0000000000b2")
	UserC = uuid.MustParse("00000000-0000-0000-0000-0000000000c3")
	UserD = uuid.MustParse("00000000-0000-0000-0000-0000000000d4")
)

type TestServer struct {
	DB     *sqlx.DB
	Server *httptest.Server
}

func NewTestServer() (*TestServer, error) {
	pgCfg := config.PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DbName:   "studio_teams_db",
		SslMode:  "disable",
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := migrator.RunMigrations(pgCfg, log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		pgCfg.Host, pgCfg.Port, pgCfg.User, pgCfg.Password, pgCfg.DbName, pgCfg.SslMode)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	teamRepo := repo.NewTeamRepo(db)
	invitationRepo := repo.NewInvitationRepo(db)
	joinRequestRepo := repo.NewJoinRequestRepo(db)
	profileRepo := repo.NewProfileRepo(db)
	notificationRepo := repo.NewNotificationRepo(db)

	notificationService := service.NewNotificationService(log, notificationRepo)
	teamService := service.NewTeamService(log, teamRepo, profileRepo, notificationService)
	invitationService := service.NewInvitationService(log, invitationRepo, teamRepo, notificationService)
	joinRequestService := service.NewJoinRequestService(log, joinRequestRepo, teamRepo, notificationService)

	deps := v1.RouterDependencies{
		TeamService:         teamService,
		InvitationService:   invitationService,
		JoinRequestService:  joinRequestService,
		NotificationService: notificationService,
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(testJWTSecret, log))
		v1.SetupRoutes(r, &deps, log)
	})

	ts := httptest.NewServer(r)

	return &TestServer{
		DB:     db,
		Server: ts,
	}, nil
}

func (s *TestServer) LoadFixtures() error {
	tables := []string{
		"notifications", "team_join_requests", "team_invitations",
		"team_members", "teams", "profiles", "ranks",
	}
	for _, table := range tables {
		_, err := s.DB.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}

	fixtures := `
		INSERT INTO ranks(id, name, rank_order) VALUES
			(1, 'apprentice', 1),
			(2, 'tailor', 2),
			(3, 'designer', 3),
			(4, 'couturier', 4);

		INSERT INTO profiles(id, display_name, rank_id) VALUES
			('00000000-0000-0000-0000-0000000000a1', 'Alice', 3),
			('00000000-0000-0000-0000-0000000000b2', 'Bruno', 3),
			('00000000-0000-0000-0000-0000000000c3', 'Chiara', 3),
			('00000000-0000-0000-0000-0000000000d4', 'Dior', 1);
	`

	_, err := s.DB.Exec(fixtures)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	return nil
}

func (s *TestServer) TokenFor(userID uuid.UUID) (string, error) {
	return auth.GenerateToken(userID, testJWTSecret, time.Hour)
}

func (s *TestServer) Close() {
	s.Server.Close()
	s.DB.Close()
}
