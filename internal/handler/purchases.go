package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// RecordPurchase godoc
// @Summary      Record a supplier purchase
// @Description  Creates an ACID purchase: raises stock per item, re-prices the cost basis and appends supplier ledger rows.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecordPurchaseRequest true "Purchase detail"
// @Success      201  {object} dto.PurchaseResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/purchases [post]
func (h *PurchasesHandler) RecordPurchase(c *gin.Context) {
	var req dto.RecordPurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPurchases godoc
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        date        query string false "Date YYYY-MM-DD"
// @Param        supplier_id query string false "Supplier UUID"
// @Param        page        query int    false "Page (default 1)"
// @Param        limit       query int    false "Rows per page (default 50)"
// @Success      200  {object} dto.PurchaseListResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/purchases [get]
func (h *PurchasesHandler) ListPurchases(c *gin.Context) {
	var filter dto.PurchaseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListPurchases(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPurchase godoc
// @Summary      Get one purchase
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase UUID"
// @Success      200 {object} dto.PurchaseResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/purchases/{id} [get]
func (h *PurchasesHandler) GetPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
