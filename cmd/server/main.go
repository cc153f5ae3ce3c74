// Command server wires together the Pictionary-style drawing and
// guessing game server: transport, session router, room registry, and
// REST introspection. Grounded on the teacher's main.go (logger init,
// gin.Default + cors.New, route registration, router.Run), with the
// PostgreSQL/Redis dual-init goroutines and JWT-gated routes removed
// since this server has no persistence and no authentication.
package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doodleserver/internal/config"
	"doodleserver/internal/janitor"
	"doodleserver/internal/logging"
	"doodleserver/internal/restapi"
	"doodleserver/internal/roomregistry"
	"doodleserver/internal/router"
	"doodleserver/internal/timersvc"
	"doodleserver/internal/timing"
	"doodleserver/internal/transport"
	"doodleserver/internal/wordbank"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	bank := wordbank.Default()
	clock := timing.RealClock{}
	rng := timing.NewLockedRand()
	timers := timersvc.New()
	registry := roomregistry.New()

	hub := transport.NewHub(logger, cfg.AllowedOrigin)
	rt := router.New(logger, hub, registry, bank, clock, rng, timers)
	hub.SetInboundHandler(rt.HandleInbound)
	hub.SetDisconnectHandler(rt.HandleDisconnect)

	j := janitor.New(registry, time.Now, logger)
	if err := j.Start(); err != nil {
		logger.Fatal("failed to start janitor", zap.Error(err))
	}
	defer j.Stop()

	engine := gin.Default()
	engine.Use(logging.RequestLogger(logger))
	engine.Use(cors.New(corsConfig(cfg.AllowedOrigin)))

	restapi.Register(engine, registry, logger)
	engine.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := engine.Run(cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// corsConfig builds the single-origin CORS policy spec.md §6
// Configuration calls for. An unset ALLOWED_ORIGIN accepts any origin
// without credentials, suitable for local development; a configured
// origin allows credentials, matching the teacher's production policy.
func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	return cfg
}
