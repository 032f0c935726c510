package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamm188/Trend-phone/internal/dto"
	"github.com/mohamm188/Trend-phone/internal/model"
	"github.com/mohamm188/Trend-phone/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	customers   repository.CustomerRepository
	customerTxs repository.TransactionRepository
	credit      CreditService
}

func NewCustomerService(
	customers repository.CustomerRepository,
	customerTxs repository.TransactionRepository,
	credit CreditService,
) CustomerService {
	return &customerService{
		customers:   customers,
		customerTxs: customerTxs,
		credit:      credit,
	}
}

// Create stores the customer and realizes a non-zero opening balance as
// the first movement-log row, so the derived balance literally equals
// the history from day one.
func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := model.Customer{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance,
		Notes:          req.Notes,
	}

	err := runTx(ctx, s.customers.DB(), func(tx *gorm.DB) error {
		if err := s.customers.Create(ctx, tx, &c); err != nil {
			return err
		}
		if !req.OpeningBalance.IsPositive() {
			return nil
		}
		opening := &model.Transaction{
			CustomerID:  c.ID,
			Kind:        "sale",
			Amount:      req.OpeningBalance,
			Description: "Opening balance",
		}
		if err := s.customerTxs.CreateTx(tx, opening); err != nil {
			return err
		}
		_, err := s.credit.RecalcCustomerBalanceTx(tx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("customer_id", c.ID.String()).Msg("customer created")
	return customerResponse(&c), nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return customerResponse(c), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerResponse(&customers[i]))
	}
	return out, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

func customerResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		OpeningBalance: c.OpeningBalance,
		Balance:        c.Balance,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
