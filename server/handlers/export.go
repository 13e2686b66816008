package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"featureboard/report"
	apperrors "featureboard/server/errors"
	"featureboard/server/services"
)

// ExportHandler отдает текущий список фич файлом
type ExportHandler struct {
	features *services.FeatureService
	exporter *report.Exporter
}

// NewExportHandler создает обработчик экспорта
func NewExportHandler(features *services.FeatureService) *ExportHandler {
	return &ExportHandler{
		features: features,
		exporter: report.NewExporter(),
	}
}

var exportContentTypes = map[report.ExportFormat]string{
	report.FormatJSON:  "application/json",
	report.FormatCSV:   "text/csv; charset=utf-8",
	report.FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// HandleExport выгружает список фич в xlsx, csv или json
// @Summary Экспорт списка фич
// @Tags features
// @Produce octet-stream
// @Param format query string false "Формат: xlsx, csv или json" default(xlsx)
// @Param module query string false "Точный фильтр по модулю"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Неизвестный формат"
// @Failure 502 {object} ErrorResponse
// @Router /features/export [get]
func (h *ExportHandler) HandleExport(c *gin.Context) {
	format := report.ExportFormat(c.DefaultQuery("format", string(report.FormatExcel)))
	contentType, ok := exportContentTypes[format]
	if !ok {
		HandleError(c, apperrors.NewValidationError(
			fmt.Sprintf("Unsupported export format %q: use xlsx, csv or json", format), nil))
		return
	}

	features, err := h.features.List(c.Request.Context(), c.Query("module"), c.DefaultQuery("sort", "score"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(&buf, features, format); err != nil {
		HandleError(c, apperrors.NewInternalError("failed to export feature list", err))
		return
	}

	filename := fmt.Sprintf("features_%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
