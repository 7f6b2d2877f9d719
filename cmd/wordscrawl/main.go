package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/breadbun407/WordScrawl/internal/config"
	"github.com/breadbun407/WordScrawl/internal/roomapi"
	"github.com/breadbun407/WordScrawl/internal/server"
	"github.com/breadbun407/WordScrawl/internal/sprint"
	"github.com/breadbun407/WordScrawl/internal/websocket"
	"github.com/breadbun407/WordScrawl/pkg/logger"
)

func main() {
	// Initializing and validating config
	cm, err := config.NewConfigManager("internal/config/config.yaml")
	if err != nil {
		fmt.Printf("Error getting config file: %v\n", err)
		os.Exit(1)
	}
	c := cm.GetConfig()
	if err := c.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initializing logger
	log, err := logger.New(logger.Config{
		Env:       c.GeneralParams.Env,
		AddSource: false,
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("config loaded",
		"env", c.GeneralParams.Env,
		"http_server_port", c.HttpServerParams.Port,
		"http_server_address", c.HttpServerParams.Address,
		"sprint_duration_min", c.SprintParams.DurationMinutes,
	)

	// Room state lives entirely in this process; nothing to connect to
	store := sprint.NewStore()
	registry := sprint.NewRegistry()
	gateway := websocket.NewGateway(registry, log)

	coordinator := sprint.NewCoordinator(store, registry, gateway, sprint.RoomDefaults{
		DurationMinutes: c.SprintParams.DurationMinutes,
		Prompt:          c.SprintParams.Prompt,
	}, log)

	wsHandler := websocket.NewHandler(coordinator, gateway, registry, log)
	roomHandler := roomapi.NewHandler(coordinator, log)

	router := server.NewRouter(server.RouterConfig{
		WSHandler:   wsHandler,
		RoomHandler: roomHandler,
		Log:         log,
	})

	srv := server.New(c.HttpServerParams.GetAddress(), router, log)

	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-serverErrors:
		log.Error("server error", "error", err)
		os.Exit(1)

	case sig := <-shutdown:
		log.Info("shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Close live sockets first: their handlers never return on
		// their own, and Shutdown waits for every active handler.
		gateway.CloseAll()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}

		coordinator.Shutdown()
	}
}
