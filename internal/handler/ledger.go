package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler { return &LedgerHandler{svc: svc} }

// RecordEntry godoc
// @Summary      Record a general ledger entry
// @Description  Standalone revenue or expense row, independent of sales and purchases.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordLedgerEntryRequest true "Entry detail"
// @Success      201  {object} dto.LedgerEntryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ledger [post]
func (h *LedgerHandler) RecordEntry(c *gin.Context) {
	var req dto.RecordLedgerEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListEntries godoc
// @Summary      List ledger entries
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        kind     query string false "revenue | expense | all"
// @Param        category query string false "Category"
// @Param        page     query int    false "Page (default 1)"
// @Param        limit    query int    false "Rows per page (default 50)"
// @Success      200  {object} dto.LedgerListResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ledger [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	var filter dto.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Summary godoc
// @Summary      Revenue, expense and net totals over the whole log
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.LedgerSummaryResponse
// @Router       /v1/ledger/summary [get]
func (h *LedgerHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
