package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

type serverConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	var cfg serverConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "formdemo"))
	slog.SetDefault(log)

	log.Info("starting server", "addr", cfg.Addr, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, router(log)); err != nil {
		log.Error("server stopped", "error", err)
	}
}

func router(log *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", handleShowSignup())
	r.Post("/", handleSubmitSignup(log))

	return r
}
