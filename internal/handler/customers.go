package handler

import (
	"net/http"

	"github.com/mohamm188/Trend-phone/internal/apierror"
	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomersHandler struct {
	svc    service.CustomerService
	credit service.CreditService
}

func NewCustomersHandler(svc service.CustomerService, credit service.CreditService) *CustomersHandler {
	return &CustomersHandler{svc: svc, credit: credit}
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Description  A non-zero opening balance is realized as the customer's first movement-log row.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCustomerRequest true "Customer detail"
// @Success      201  {object} dto.CustomerResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/customers [post]
func (h *CustomersHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
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

// ListCustomers godoc
// @Summary      List customers with their derived balances
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CustomerResponse
// @Router       /v1/customers [get]
func (h *CustomersHandler) ListCustomers(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCustomer godoc
// @Summary      Get one customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer UUID"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/customers/{id} [get]
func (h *CustomersHandler) GetCustomer(c *gin.Context) {
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

// UpdateCustomer godoc
// @Summary      Update customer contact fields
// @Description  The opening balance is fixed at creation and cannot be edited.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                    true "Customer UUID"
// @Param        body body dto.UpdateCustomerRequest true "Fields to update"
// @Success      200  {object} dto.CustomerResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/customers/{id} [put]
func (h *CustomersHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateCustomerRequest
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

// CustomerStatement godoc
// @Summary      Full movement history plus derived balance
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer UUID"
// @Success      200 {object} dto.StatementResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/customers/{id}/statement [get]
func (h *CustomersHandler) CustomerStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.credit.CustomerStatement(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordCustomerPayment godoc
// @Summary      Record a customer payment
// @Description  Appends a payment row to the movement log and recomputes the balance in the same transaction.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "Customer UUID"
// @Param        body body dto.RecordPaymentRequest true "Payment detail"
// @Success      201  {object} dto.TransactionResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/customers/{id}/payments [post]
func (h *CustomersHandler) RecordCustomerPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.RecordPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.credit.RecordCustomerPayment(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
