package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/whois_api/models"
)

type HealthHandler struct {
	version string
	fetcher string
}

func NewHealthHandler(version, fetcher string) *HealthHandler {
	return &HealthHandler{version: version, fetcher: fetcher}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Checks the health of the API and reports which registry fetcher is configured.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "UP",
		Version: h.version,
		Fetcher: h.fetcher,
	})
}
