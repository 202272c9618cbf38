// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. The public surface (search, claims) and the staff
// surface (auth, card and claim management, locations) are separated at
// the router level; authentication, role checks, logging, and tracing
// are all handled here before requests reach the service layer.
package http

import (
	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/service"
)

type Handler struct {
	services *service.Services

	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		server:   server,
		logger:   logger,
	}
}
