package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SuppliersHandler struct {
	svc    service.SupplierService
	credit service.CreditService
}

func NewSuppliersHandler(svc service.SupplierService, credit service.CreditService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc, credit: credit}
}

// CreateSupplier godoc
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateSupplierRequest true "Supplier detail"
// @Success      201  {object} dto.SupplierResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/suppliers [post]
func (h *SuppliersHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSuppliers godoc
// @Summary      List suppliers with their derived balances
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.SupplierResponse
// @Router       /v1/suppliers [get]
func (h *SuppliersHandler) ListSuppliers(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSupplier godoc
// @Summary      Get one supplier
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Supplier UUID"
// @Success      200 {object} dto.SupplierResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/suppliers/{id} [get]
func (h *SuppliersHandler) GetSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSupplier godoc
// @Summary      Update supplier contact fields
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Supplier UUID"
// @Param        body body dto.UpdateSupplierRequest true "Fields to update"
// @Success      200  {object} dto.SupplierResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/suppliers/{id} [put]
func (h *SuppliersHandler) UpdateSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SupplierStatement godoc
// @Summary      Full supplier movement history plus derived balance
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Supplier UUID"
// @Success      200 {object} dto.StatementResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/suppliers/{id}/statement [get]
func (h *SuppliersHandler) SupplierStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.credit.SupplierStatement(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordSupplierPayment godoc
// @Summary      Record a payment to a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "Supplier UUID"
// @Param        body body dto.RecordPaymentRequest true "Payment detail"
// @Success      201  {object} dto.TransactionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/suppliers/{id}/payments [post]
func (h *SuppliersHandler) RecordSupplierPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.RecordPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.credit.RecordSupplierPayment(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
