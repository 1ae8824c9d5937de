package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotelier/internal/adapters/http_server"
	"hotelier/internal/adapters/observability"
	redisad "hotelier/internal/adapters/redis"
	"hotelier/internal/app"
	"hotelier/internal/shared"
	"hotelier/internal/storage/fsjson"
	"hotelier/internal/storage/uploads"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	store := fsjson.New(cfg.HotelsDir)
	files := uploads.New(cfg.UploadsDir, cfg.UploadsURL)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hotels := app.NewHotelService(store, cache, cfg.CacheTTL)
	images := app.NewImageService(store, files, cache)

	// http
	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountStatic("/uploads/images", cfg.UploadsDir)
	srv.MountHandlers(server.NewHandlers(hotels, images))

	log.Info().Str("addr", cfg.HTTPAddr).Str("hotels_dir", cfg.HotelsDir).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
