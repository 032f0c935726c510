package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSettings godoc
// @Summary      Display settings (currency code and exchange rates)
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Settings
// @Router       /v1/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PutSettings godoc
// @Summary      Update display settings (admin only)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.Settings true "Settings"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/settings [put]
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	var req dto.Settings
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Put(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
