package main

import (
	"net/http"
	"os"
	"time"

	"pet-care-tracker/internal/adapters/auth/idp"
	"pet-care-tracker/internal/adapters/storage/postgres"
	"pet-care-tracker/internal/config"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/ports/auth"
	"pet-care-tracker/internal/router"

	"github.com/joho/godotenv"
)

// @title Pet Care Tracker API
// @version 1.0
// @description Registro de cuidados de mascotas por hogar: eventos, resúmenes diarios y catálogo.
// @BasePath /
func main() {
	// .env es opcional; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{Timezone: cfg.Timezone, Logger: log}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("storage: postgres", nil)
	} else {
		log.Info("storage: in-memory (set DB_DSN for postgres)", nil)
	}

	var verifier auth.AuthVerifier
	if cfg.AuthBaseURL != "" {
		v, err := idp.NewVerifier(idp.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		})
		if err != nil {
			log.Error("auth verifier init failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = v
		log.Info("auth: idp verifier enabled", map[string]any{"base_url": cfg.AuthBaseURL})
	} else {
		log.Warn("auth: dev mode (X-Debug-User-ID)", nil)
	}
	opts.AuthVerifier = verifier

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
