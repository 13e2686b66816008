package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler системные endpoints
type SystemHandler struct{}

// NewSystemHandler создает системный обработчик
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth проверка живости сервиса
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) HandleHealth(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": "feature-priority-dashboard",
	})
}
