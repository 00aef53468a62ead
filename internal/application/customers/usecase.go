package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/codegen"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r repository.Tx) error) error
}

// UseCase administra los clientes de la tienda.
type UseCase struct {
	txRunner   TxRunner
	repo       repository.CustomerRepository
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, repo repository.CustomerRepository, saleRepo repository.SaleRepository, reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{txRunner: txRunner, repo: repo, saleRepo: saleRepo, reportRepo: reportRepo}
}

// Create registra un cliente. El teléfono, si viene, debe ser único entre los
// clientes no eliminados.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	phone := strings.TrimSpace(in.Phone)

	now := time.Now()
	var resp *dto.CustomerResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		if phone != "" {
			existing, err := r.Customers.GetByPhone(phone)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("teléfono %s: %w", phone, domain.ErrDuplicate)
			}
		}
		seq, err := r.Codes.Next(codegen.PrefixCustomer)
		if err != nil {
			return err
		}
		customer := &entity.Customer{
			ID:        uuid.New().String(),
			Code:      codegen.Format(codegen.PrefixCustomer, now, seq),
			Name:      name,
			Phone:     phone,
			Email:     in.Email,
			Address:   in.Address,
			Birthday:  in.Birthday,
			Notes:     in.Notes,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Customers.Create(customer); err != nil {
			return err
		}
		out := toCustomerResponse(customer)
		resp = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *UseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

func (uc *UseCase) List(search string, activeOnly bool, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	customers, total, err := uc.repo.List(search, activeOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers: out,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update aplica solo los campos presentes en la petición. Cambiar el teléfono
// revalida su unicidad.
func (uc *UseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		customer.Name = name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone != "" && phone != customer.Phone {
			existing, err := uc.repo.GetByPhone(phone)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("teléfono %s: %w", phone, domain.ErrDuplicate)
			}
		}
		customer.Phone = phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Birthday != nil {
		customer.Birthday = in.Birthday
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if in.IsActive != nil {
		customer.IsActive = *in.IsActive
	}
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete hace soft delete del cliente. Se rechaza si tiene ventas asociadas:
// el historial debe seguir mostrando a quién se vendió.
func (uc *UseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	count, err := uc.saleRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: el cliente tiene %d ventas registradas", domain.ErrCustomerInUse, count)
	}
	return uc.repo.SoftDelete(id)
}

// Analytics devuelve el agregado histórico de compras del cliente en los
// últimos days días (0 = últimos 365).
func (uc *UseCase) Analytics(ctx context.Context, id string, days int) (*dto.CustomerAnalyticsResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	if days <= 0 {
		days = 365
	}
	to := time.Now()
	from := to.AddDate(0, 0, -days)

	stats, err := uc.reportRepo.GetCustomerStats(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	topItems := make([]dto.TopItemResponse, 0, len(stats.TopItems))
	for _, item := range stats.TopItems {
		topItems = append(topItems, dto.TopItemResponse{
			ItemID:    item.ItemID,
			ItemName:  item.ItemName,
			UnitsSold: item.UnitsSold,
			Revenue:   item.Revenue,
		})
	}
	return &dto.CustomerAnalyticsResponse{
		Customer:   toCustomerResponse(customer),
		Days:       days,
		SaleCount:  stats.SaleCount,
		TotalSpent: stats.TotalSpent,
		AvgSale:    stats.AvgSale,
		LastSaleAt: stats.LastSaleAt,
		TopItems:   topItems,
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:       c.ID,
		Code:     c.Code,
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		Birthday: c.Birthday,
		Notes:    c.Notes,
		IsActive: c.IsActive,
	}
}
