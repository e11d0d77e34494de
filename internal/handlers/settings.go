package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-tracker/internal/dto"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
)

// SettingsStore loads and saves the application settings
type SettingsStore interface {
	Load() models.Settings
	Save(settings models.Settings) error
}

type SettingsHandler struct {
	settings SettingsStore
}

func NewSettingsHandler(settings SettingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settings.Load()))
}

// UpdateSettings validates and stores new settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.settings.Save(req.ToSettings()); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settings.Load()))
}
