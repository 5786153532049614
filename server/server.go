// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/poiesic/toolscout"
)

// Server serves the discovery API over HTTP.
type Server struct {
	echoServer *echo.Echo
	service    *toolscout.Service
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewServer creates an HTTP server over the discovery service.
func NewServer(service *toolscout.Service, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echoServer: e,
		service:    service,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	e.Use(middleware.Recover())

	api := e.Group("/api", middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(_ string) (bool, error) {
			return true, nil
		},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	api.GET("/filters", s.handleFilters)
	api.POST("/chat", s.handleChat)
	api.GET("/persona", s.handlePersona)
	api.POST("/click", s.handleClick)

	return s
}

// Start begins serving on the given address. Blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting HTTP server", "addr", addr)
	return s.echoServer.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echoServer.Shutdown(ctx)
}

// Echo returns the underlying echo instance. Exposed for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echoServer
}
