package sales

import (
	"time"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// UseCase casos de uso de ventas: creación, cancelación y consultas.
type UseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso. saleRepo y customerRepo van atados al
// pool (solo lecturas); las mutaciones pasan por el txRunner.
func NewUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, customerRepo: customerRepo}
}

// GetByID devuelve una venta con sus líneas y el nombre del cliente.
func (uc *UseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.saleRepo.ListDetails(id)
	if err != nil {
		return nil, err
	}
	resp := uc.toSaleResponse(sale, details)
	return &resp, nil
}

// List devuelve ventas paginadas con filtros de cliente, fechas, estado y método de pago.
func (uc *UseCase) List(q dto.SaleListQuery) (*dto.SaleListResponse, error) {
	q.DefaultPage()
	filter := repository.SaleFilter{
		CustomerID:    q.CustomerID,
		PaymentMethod: q.PaymentMethod,
		Status:        q.Status,
		Limit:         q.Limit,
		Offset:        q.Offset,
	}
	if q.FromDate != "" {
		from, err := time.Parse("2006-01-02", q.FromDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.FromDate = &from
	}
	if q.ToDate != "" {
		to, err := time.Parse("2006-01-02", q.ToDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// rango inclusivo hasta el final del día
		end := to.Add(24*time.Hour - time.Second)
		filter.ToDate = &end
	}

	sales, total, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		details, err := uc.saleRepo.ListDetails(s.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, uc.toSaleResponse(s, details))
	}
	return &dto.SaleListResponse{
		Sales: out,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

func (uc *UseCase) toSaleResponse(sale *entity.Sale, details []repository.SaleDetailRow) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:            sale.ID,
		Code:          sale.Code,
		SaleDate:      sale.SaleDate,
		TotalAmount:   sale.TotalAmount,
		Discount:      sale.Discount,
		FinalAmount:   sale.FinalAmount,
		PaymentMethod: sale.PaymentMethod,
		Status:        sale.Status,
		Notes:         sale.Notes,
	}
	if sale.CustomerID != nil {
		resp.CustomerID = *sale.CustomerID
		if customer, err := uc.customerRepo.GetByID(*sale.CustomerID); err == nil && customer != nil {
			resp.CustomerName = customer.Name
		}
	}
	lines := make([]dto.SaleLineResponse, 0, len(details))
	for _, d := range details {
		lines = append(lines, dto.SaleLineResponse{
			ID:        d.Detail.ID,
			ItemID:    d.Detail.ItemID,
			ItemName:  d.ItemName,
			Unit:      d.Unit,
			Quantity:  d.Detail.Quantity,
			UnitPrice: d.Detail.UnitPrice,
			CostPrice: d.Detail.CostPrice,
			Subtotal:  d.Detail.Subtotal,
			Profit:    d.Detail.Profit(),
		})
	}
	resp.Details = lines
	return resp
}
