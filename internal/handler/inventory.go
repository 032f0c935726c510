package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// RecordAdjustment godoc
// @Summary      Record a manual stock adjustment
// @Description  Subtracts the quantity from stock and keeps the adjustment row as an audit record. Every kind (damaged, lost, correction) subtracts.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordStockAdjustmentRequest true "Adjustment detail"
// @Success      201  {object} dto.StockAdjustmentResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/inventory/adjustments [post]
func (h *InventoryHandler) RecordAdjustment(c *gin.Context) {
	var req dto.RecordStockAdjustmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordAdjustment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAdjustments godoc
// @Summary      List stock adjustments
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filter by product UUID"
// @Success      200 {array} dto.StockAdjustmentResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/inventory/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid product_id"))
			return
		}
		resp, err := h.svc.ListAdjustmentsByProduct(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.ListAdjustments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock godoc
// @Summary      Products at or below their minimum stock level
// @Description  Negative quantities (possible under the "allow" stock policy) are flagged.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.LowStockResponse
// @Router       /v1/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
