package main

import (
	"context"
	"fmt"

	"github.com/idfinder-gh/idfinder/internal/config"
	myHTTP "github.com/idfinder-gh/idfinder/internal/handler/http"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/notify"
	"github.com/idfinder-gh/idfinder/internal/server"
	"github.com/idfinder-gh/idfinder/internal/service"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("idfinder-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)

	// Claim codes are delivered asynchronously so the gateway never holds
	// up the public claim endpoint.
	dispatcher := notify.NewDispatcher(notify.NewGatewayNotifier(cfg.Notify, log), log)
	workers.New(dispatcher).Run()
	defer dispatcher.Close()

	services := service.NewServices(repos, *cfg, dispatcher, log)
	handler := myHTTP.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
