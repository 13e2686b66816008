package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"featureboard/server/services"
)

// AdminHandler обработчики legacy-пути с sqlite
type AdminHandler struct {
	admin *services.AdminService
}

// NewAdminHandler создает админ-обработчик
func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// HandleSeed заполняет sqlite строками из таблицы
// @Summary Посев sqlite из таблицы
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /admin/seed [post]
func (h *AdminHandler) HandleSeed(c *gin.Context) {
	result, err := h.admin.Seed(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, gin.H{
		"ok":      true,
		"added":   result.Added,
		"skipped": result.Skipped,
	})
}

// HandleListStored возвращает сохраненные фичи с tier-weighted оценками
// @Summary Сохраненные фичи
// @Tags admin
// @Produce json
// @Success 200 {array} database.StoredFeature
// @Failure 500 {object} ErrorResponse
// @Router /admin/features [get]
func (h *AdminHandler) HandleListStored(c *gin.Context) {
	features, err := h.admin.ListStored()
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, features)
}

// HandleRecalculate пересчитывает оценки всех сохраненных фич
// @Summary Пересчет tier-weighted оценок
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/recalculate [post]
func (h *AdminHandler) HandleRecalculate(c *gin.Context) {
	recalculated, err := h.admin.RecalculateAll()
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, gin.H{
		"ok":           true,
		"recalculated": recalculated,
	})
}
