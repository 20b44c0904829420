package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
	"go.uber.org/zap"
)

// HealthCheck godoc
// @Summary Verificar saúde da API
// @Description Verifica se o backend de armazenamento está respondendo
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Todos os serviços estão saudáveis"
// @Failure 503 {object} HealthResponse "Um ou mais serviços estão indisponíveis"
// @Router /health [get]
func (h *CNHHandlers) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	backend := h.cnhService.Backend()
	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Services:  map[string]string{backend: "healthy"},
	}

	pingCtx, span := utils.TraceEndpointStep(ctx, "ping_store", map[string]interface{}{
		"service.name": backend,
	})
	if err := h.cnhService.Ping(pingCtx); err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{
			"service.operation": "ping",
		})
		h.logger.Warn("storage backend is unhealthy",
			zap.String("backend", backend),
			zap.Error(err))
		health.Status = "unhealthy"
		health.Services[backend] = "unhealthy"
	}
	span.End()

	if health.Status == "healthy" {
		c.JSON(http.StatusOK, health)
		return
	}
	c.JSON(http.StatusServiceUnavailable, health)
}
