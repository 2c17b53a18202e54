// Package handler provides HTTP handlers for importer endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	importerModel "github.com/vaibhavgupta5/ipl-auction/internal/importer/model"
	"github.com/vaibhavgupta5/ipl-auction/internal/importer/service"
)

// Handler handles HTTP requests for importer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new importer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListFields handles GET /import/fields request.
// @Summary List the importable player fields
// @Tags Import
// @Produce json
// @Success 200 {object} model.FieldsResponse
// @Router /import/fields [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListFields(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListFields(c.Request.Context()))
}

// ImportPlayers handles POST /import/players request. The request is
// multipart: a "file" part with the XLSX and an optional "mapping"
// part holding a field-to-header JSON object.
// @Summary Import players from an XLSX spreadsheet
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Param mapping formData string false "Field-to-header mapping as a JSON object"
// @Success 200 {object} model.ImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /import/players [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ImportPlayers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "file is required", http.StatusBadRequest)
		return
	}

	var mapping map[string]string
	if raw := c.PostForm("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			errorResponse(c, "INVALID_MAPPING", "mapping must be a JSON object", http.StatusBadRequest)
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "could not read uploaded file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	resp, err := h.service.ImportPlayers(c.Request.Context(), file, mapping)
	if err != nil {
		switch {
		case errors.Is(err, importerModel.ErrInvalidFile):
			errorResponse(c, "INVALID_FILE", "file is not a readable spreadsheet", http.StatusBadRequest)
		case errors.Is(err, importerModel.ErrNoRows):
			errorResponse(c, "NO_ROWS", "spreadsheet has no data rows", http.StatusBadRequest)
		case errors.Is(err, importerModel.ErrUnknownField),
			errors.Is(err, importerModel.ErrInvalidMapping),
			errors.Is(err, importerModel.ErrNameNotMapped):
			errorResponse(c, "INVALID_MAPPING", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error importing players", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
