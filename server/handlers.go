package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/poiesic/toolscout/core"
)

type chatRequest struct {
	Query      string   `json:"query"`
	Categories []string `json:"categories"`
	Pricing    []string `json:"pricing"`
	UserID     string   `json:"user_id"`
}

type clickRequest struct {
	UserID       string `json:"user_id"`
	ToolName     string `json:"tool_name"`
	CategoryName string `json:"category_name"`
}

type personaResponse struct {
	Persona core.Persona `json:"persona"`
}

type clickResponse struct {
	Message        string       `json:"message"`
	UpdatedPersona core.Persona `json:"updated_persona"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, s.service.Filters())
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	resp, err := s.service.Chat(c.Request().Context(), req.UserID, req.Query, req.Categories, req.Pricing)
	if err != nil {
		s.logger.Error("error generating AI recommendation", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error generating AI recommendation"})
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePersona(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = "guest"
	}
	return c.JSON(http.StatusOK, personaResponse{Persona: s.service.Persona(userID)})
}

func (s *Server) handleClick(c echo.Context) error {
	var req clickRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	updated := s.service.RecordClick(req.UserID, req.ToolName, req.CategoryName)
	return c.JSON(http.StatusOK, clickResponse{
		Message:        "Click recorded",
		UpdatedPersona: updated,
	})
}
