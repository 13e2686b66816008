package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "featureboard/server/errors"
	"featureboard/server/services"
)

// Фиксированные ответы модифицирующих операций: таблица — единственный
// источник данных, через API её менять нельзя
const (
	readOnlyCreateMessage  = "Feature list is read-only. Edit the Google Sheet to add or change features."
	readOnlyUpdateMessage  = "Feature list is read-only. Edit the Google Sheet to update features."
	readOnlyDeleteMessage  = "Feature list is read-only. Edit the Google Sheet to remove features."
	readOnlyRequestMessage = "Feature list is read-only. Edit the Google Sheet to add or change requested clients."

	recalculateMessage = "Scores are computed from the sheet (number of requested clients per feature)."
	syncMessage        = "Sheet is the database; data is always read from the sheet."
)

// FeatureHandler обработчик списка фич
type FeatureHandler struct {
	features *services.FeatureService
}

// NewFeatureHandler создает обработчик фич
func NewFeatureHandler(features *services.FeatureService) *FeatureHandler {
	return &FeatureHandler{features: features}
}

// HandleList возвращает список фич
// @Summary Список фич
// @Description Возвращает фичи из Google Sheets с оценками приоритета
// @Tags features
// @Produce json
// @Param module query string false "Точный фильтр по модулю"
// @Param sort query string false "Сортировка: score, name или module" default(score)
// @Success 200 {array} sheet.FeatureRecord
// @Failure 502 {object} ErrorResponse "Таблица и seed недоступны"
// @Router /features [get]
func (h *FeatureHandler) HandleList(c *gin.Context) {
	features, err := h.features.List(c.Request.Context(), c.Query("module"), c.DefaultQuery("sort", "score"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, features)
}

// HandleSync перечитывает таблицу и возвращает число фич
// @Summary Синхронизация с таблицей
// @Tags features
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} ErrorResponse
// @Router /features/sync-from-sheet [post]
func (h *FeatureHandler) HandleSync(c *gin.Context) {
	count, err := h.features.Count(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, gin.H{
		"ok":      true,
		"message": syncMessage,
		"count":   count,
	})
}

// HandleModules возвращает уникальные модули
// @Summary Список модулей
// @Tags features
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} ErrorResponse
// @Router /features/modules [get]
func (h *FeatureHandler) HandleModules(c *gin.Context) {
	modules, err := h.features.Modules(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, modules)
}

// HandleGet возвращает фичу по позиции в таблице
// @Summary Фича по id
// @Tags features
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Success 200 {object} sheet.FeatureRecord
// @Failure 404 {object} ErrorResponse
// @Router /features/{id} [get]
func (h *FeatureHandler) HandleGet(c *gin.Context) {
	id, ok := h.featureID(c)
	if !ok {
		return
	}

	feature, err := h.features.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, feature)
}

// HandleRequests возвращает клиентские запросы фичи
// @Summary Запросы клиентов по фиче
// @Tags features
// @Produce json
// @Param id path int true "Позиция в таблице, с 1"
// @Success 200 {array} services.RequestEntry
// @Failure 404 {object} ErrorResponse
// @Router /features/{id}/requests [get]
func (h *FeatureHandler) HandleRequests(c *gin.Context) {
	id, ok := h.featureID(c)
	if !ok {
		return
	}

	requests, err := h.features.Requests(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	SendJSONResponse(c, http.StatusOK, requests)
}

// HandleCreate отклоняет создание фичи через API
// @Summary Создание фичи (запрещено)
// @Tags features
// @Produce json
// @Failure 403 {object} ErrorResponse
// @Router /features [post]
func (h *FeatureHandler) HandleCreate(c *gin.Context) {
	HandleError(c, apperrors.NewForbiddenError(readOnlyCreateMessage, nil))
}

// HandleUpdate отклоняет изменение фичи через API
func (h *FeatureHandler) HandleUpdate(c *gin.Context) {
	HandleError(c, apperrors.NewForbiddenError(readOnlyUpdateMessage, nil))
}

// HandleDelete отклоняет удаление фичи через API
func (h *FeatureHandler) HandleDelete(c *gin.Context) {
	HandleError(c, apperrors.NewForbiddenError(readOnlyDeleteMessage, nil))
}

// HandleCreateRequest отклоняет добавление клиентского запроса через API
func (h *FeatureHandler) HandleCreateRequest(c *gin.Context) {
	HandleError(c, apperrors.NewForbiddenError(readOnlyRequestMessage, nil))
}

// HandleRecalculateScores возвращает фиксированный ответ: оценки всегда
// вычисляются из таблицы при чтении
// @Summary Пересчет оценок (no-op)
// @Tags features
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /features/recalculate-scores [post]
func (h *FeatureHandler) HandleRecalculateScores(c *gin.Context) {
	SendJSONResponse(c, http.StatusOK, gin.H{
		"message":      recalculateMessage,
		"recalculated": 0,
	})
}

// featureID разбирает path-параметр id. Нечисловой или неположительный id
// заведомо не совпадет ни с одной позицией таблицы, поэтому отвечаем 404,
// как и на отсутствующую позицию
func (h *FeatureHandler) featureID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		HandleError(c, apperrors.NewNotFoundError("Feature not found", err))
		return 0, false
	}
	return id, true
}
