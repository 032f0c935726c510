package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler { return &BackupHandler{svc: svc} }

// Export godoc
// @Summary      Export the full database as a snapshot
// @Description  Every ledger table, serialized with its statically declared schema. Admin only.
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Snapshot
// @Router       /v1/backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	snap, err := h.svc.Export(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="trendphone-backup.json"`)
	c.JSON(http.StatusOK, snap)
}

// Import godoc
// @Summary      Restore a snapshot, replacing all current data
// @Description  Validate-then-replace in one transaction: an invalid snapshot leaves the database untouched; a valid one replaces every table and re-derives all balances. Admin only.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.Snapshot true "Snapshot to restore"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Router       /v1/backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	var snap dto.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid snapshot JSON: "+err.Error()))
		return
	}
	if err := h.svc.Restore(c.Request.Context(), &snap); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
