// @title Fitness dashboard API
// @description API serving aggregated fitness dashboards "fitdash"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/fitdash/internal/api"
	"github.com/limbo/fitdash/internal/realtime"
	"github.com/limbo/fitdash/internal/repository"
	"github.com/limbo/fitdash/internal/service"
	"github.com/limbo/fitdash/pkg/cleanup"
	"github.com/limbo/fitdash/pkg/config"
	jwtservice "github.com/limbo/fitdash/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	location, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "Local"))
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	if err = repository.Migrate(pool, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	sources := service.DashboardSources{
		Profiles: profilesRepo,
		Weights:  repository.NewWeightLogsRepoWithConn(pool),
		Water:    repository.NewWaterLogsRepoWithConn(pool),
		Steps:    repository.NewDailyStepsRepoWithConn(pool),
		Streaks:  repository.NewStreaksRepoWithConn(pool),
		Meals:    repository.NewMealLogsRepoWithConn(pool),
		Workouts: repository.NewWorkoutLogsRepoWithConn(pool),
	}

	stream := realtime.NewHub(logger)
	dashboards := service.NewDashboardHub(sources, stream,
		service.WithLocation(location),
		service.WithWaterTarget(cfg.GetInt("WATER_TARGET_ML", service.DefaultWaterTargetML)),
		service.WithStepTarget(cfg.GetInt("STEP_TARGET", service.DefaultStepTarget)),
		service.WithLogger(logger),
	)

	var origins []string
	if v := cfg.GetString("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		ProfileService: service.NewProfileService(profilesRepo),
		Dashboards:     dashboards,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), jwtservice.DefaultTokenTTL),
		Streamer:       stream,
		AllowedOrigins: origins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.GetString("API_ADDRESS"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
