package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"charty-backend/internal/content"
)

// ContentHandler serves the fixed public catalogues. Responses are
// byte-stable across calls.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) Leaders(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Leaders)
}

func (h *ContentHandler) Gallery(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Gallery)
}

func (h *ContentHandler) Services(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Services)
}

func (h *ContentHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, content.AboutContent)
}

func (h *ContentHandler) ImpactStats(c echo.Context) error {
	return c.JSON(http.StatusOK, content.ImpactStats())
}
