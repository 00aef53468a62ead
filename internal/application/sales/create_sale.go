package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/application/inventory"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/codegen"
)

// Create valida y confirma una venta en una sola transacción.
//
// Dentro de la tx se pre-validan TODAS las líneas (artículo existente y stock
// suficiente, con la fila de inventario bloqueada) antes de mutar nada; solo
// entonces se crean cabecera y líneas y se descuenta el inventario. Un fallo
// en cualquier punto revierte la venta completa: nunca hay descuentos parciales.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Details) == 0 {
		return nil, fmt.Errorf("%w: la venta requiere al menos una línea", domain.ErrInvalidInput)
	}
	for i, line := range in.Details {
		if line.ItemID == "" {
			return nil, fmt.Errorf("%w: línea %d sin artículo", domain.ErrInvalidInput, i+1)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: línea %d con cantidad menor a 1", domain.ErrInvalidInput, i+1)
		}
		if !line.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: línea %d con precio no positivo", domain.ErrInvalidInput, i+1)
		}
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	now := time.Now()
	saleDate := now
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}

	total := decimal.Zero
	for _, line := range in.Details {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	final := total.Sub(in.Discount)
	if final.LessThan(decimal.Zero) {
		final = decimal.Zero
	}

	var resp *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		var customerName string
		var customerID *string
		if in.CustomerID != "" {
			customer, err := r.Customers.GetByID(in.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return fmt.Errorf("cliente %s: %w", in.CustomerID, domain.ErrNotFound)
			}
			customerID = &customer.ID
			customerName = customer.Name
		}

		// Pre-validación de todas las líneas con las filas de inventario
		// bloqueadas; los bloqueos se sostienen hasta el commit, así que la
		// cantidad verificada aquí es la que se descuenta abajo. Si la misma
		// venta repite un artículo, la verificación es acumulada.
		type lineCtx struct {
			item *entity.Item
			inv  *entity.Inventory
		}
		lineCtxs := make([]lineCtx, len(in.Details))
		remaining := make(map[string]int)
		for i, line := range in.Details {
			item, err := r.Items.GetByID(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("artículo %s: %w", line.ItemID, domain.ErrNotFound)
			}
			inv, err := r.Inventory.GetForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			available := 0
			if inv != nil {
				if _, seen := remaining[line.ItemID]; !seen {
					remaining[line.ItemID] = inv.Quantity
				}
				available = remaining[line.ItemID]
			}
			if available < line.Quantity {
				return fmt.Errorf("%w para %q: disponible %d, requerido %d",
					domain.ErrInsufficientStock, item.Name, available, line.Quantity)
			}
			remaining[line.ItemID] -= line.Quantity
			lineCtxs[i] = lineCtx{item: item, inv: inv}
		}

		seq, err := r.Codes.Next(codegen.PrefixSale)
		if err != nil {
			return err
		}
		sale := &entity.Sale{
			ID:            uuid.New().String(),
			// El código lleva la fecha de registro, no la de la venta: la
			// secuencia es global y con una fecha retroactiva los códigos
			// dejarían de ordenar igual que el consecutivo.
			Code:          codegen.Format(codegen.PrefixSale, now, seq),
			CustomerID:    customerID,
			SaleDate:      saleDate,
			TotalAmount:   total,
			Discount:      in.Discount,
			FinalAmount:   final,
			PaymentMethod: paymentMethod,
			Status:        entity.SaleStatusCompleted,
			Notes:         in.Notes,
			CreatedBy:     userID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.Sales.Create(sale); err != nil {
			return err
		}

		lines := make([]dto.SaleLineResponse, 0, len(in.Details))
		for i, line := range in.Details {
			lc := lineCtxs[i]
			// Snapshot del costo promedio al momento de la venta, para
			// calcular utilidad aunque el costo cambie después.
			costPrice := lc.inv.AvgCostOrZero()
			subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			detail := &entity.SaleDetail{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ItemID:    line.ItemID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				CostPrice: costPrice,
				Subtotal:  subtotal,
				CreatedAt: now,
			}
			if err := r.Sales.CreateDetail(detail); err != nil {
				return err
			}
			if _, err := inventory.ApplyDelta(r.Inventory, line.ItemID, -line.Quantity, now); err != nil {
				return err
			}
			lines = append(lines, dto.SaleLineResponse{
				ID:        detail.ID,
				ItemID:    lc.item.ID,
				ItemName:  lc.item.Name,
				Unit:      lc.item.Unit,
				Quantity:  detail.Quantity,
				UnitPrice: detail.UnitPrice,
				CostPrice: detail.CostPrice,
				Subtotal:  detail.Subtotal,
				Profit:    detail.Profit(),
			})
		}

		resp = &dto.SaleResponse{
			ID:            sale.ID,
			Code:          sale.Code,
			CustomerID:    in.CustomerID,
			CustomerName:  customerName,
			SaleDate:      sale.SaleDate,
			TotalAmount:   sale.TotalAmount,
			Discount:      sale.Discount,
			FinalAmount:   sale.FinalAmount,
			PaymentMethod: sale.PaymentMethod,
			Status:        sale.Status,
			Notes:         sale.Notes,
			Details:       lines,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
