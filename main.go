package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rinkside_server/config"
	"rinkside_server/routes"
	"rinkside_server/services"
	"rinkside_server/socket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()

	dynamoClient, err := services.InitializeDynamoDBClient(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize DynamoDB client")
	}
	dynamoService := &services.DynamoService{Client: dynamoClient}

	cache := services.NewQueryCache()
	cache.Start(ctx, cfg.CacheSweepInterval)

	db := services.NewDatabaseService(dynamoService, cache, cfg.TablePrefix, cfg.GameListTTL, cfg.FilteredGameTTL)

	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Error().Err(err).Msg("socket server stopped")
		}
	}()
	defer socketServer.Close()

	gameService := services.NewGameService(db, socketServer)
	rosterService := services.NewRosterService(db)
	eventService := services.NewEventService(db, socketServer)
	attendanceService := services.NewAttendanceService(db)
	healthService := services.NewHealthService(dynamoService, cfg.TablePrefix, cfg.GitCommit, cfg.GitBranch, cfg.AnnouncerEnabled)

	announcerService, err := services.NewAnnouncerService(ctx, cfg.AWSRegion, cfg.AudioBucket, cfg.AnnouncerVoice, cfg.AnnouncerEnabled)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize announcer")
	}

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Rinkside scorekeeper API")
	}).Methods("GET")
	r.Handle("/socket.io/", socketServer)

	routes.RegisterGameRoutes(r, gameService)
	routes.RegisterRosterRoutes(r, rosterService)
	routes.RegisterEventRoutes(r, eventService)
	routes.RegisterAttendanceRoutes(r, attendanceService)
	routes.RegisterAnnouncerRoutes(r, announcerService)
	routes.RegisterHealthRoutes(r, healthService)
	routes.RegisterAdminRoutes(r, db, rosterService)

	handler := routes.RequestLogger(routes.NoStore(r))
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
