package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/codegen"
)

// StockInUseCase procesa recepciones de mercancía de forma transaccional:
// cabecera + líneas + actualización de inventario por línea, todo o nada.
type StockInUseCase struct {
	txRunner TxRunner
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(txRunner TxRunner) *StockInUseCase {
	return &StockInUseCase{txRunner: txRunner}
}

// Create valida la recepción, calcula el total de cabecera y la aplica dentro
// de una transacción: verifica cada artículo, crea cabecera y líneas, y por
// cada línea invoca ApplyReceipt (cantidad + costo promedio). Cualquier fallo
// revierte la recepción completa.
func (uc *StockInUseCase) Create(ctx context.Context, userID string, in dto.StockInRequest) (*dto.StockInResponse, error) {
	if len(in.Details) == 0 {
		return nil, fmt.Errorf("%w: la recepción requiere al menos una línea", domain.ErrInvalidInput)
	}
	for i, line := range in.Details {
		if line.ItemID == "" {
			return nil, fmt.Errorf("%w: línea %d sin artículo", domain.ErrInvalidInput, i+1)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: línea %d con cantidad menor a 1", domain.ErrInvalidInput, i+1)
		}
		if !line.CostPrice.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: línea %d con costo no positivo", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	importDate := now
	if in.ImportDate != nil {
		importDate = *in.ImportDate
	}

	// Total de cabecera: Σ(cantidad × costo) calculado antes de persistir.
	total := decimal.Zero
	for _, line := range in.Details {
		total = total.Add(line.CostPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	var resp *dto.StockInResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		seq, err := r.Codes.Next(codegen.PrefixStockIn)
		if err != nil {
			return err
		}
		stockIn := &entity.StockIn{
			ID:          uuid.New().String(),
			// Fecha de registro en el código, aunque la recepción sea
			// retroactiva; ver la nota equivalente en ventas.
			Code:        codegen.Format(codegen.PrefixStockIn, now, seq),
			ImportDate:  importDate,
			TotalAmount: total,
			Status:      entity.StockInStatusCompleted,
			Notes:       in.Notes,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.StockIns.Create(stockIn); err != nil {
			return err
		}

		lines := make([]dto.StockInLineResponse, 0, len(in.Details))
		for _, line := range in.Details {
			// Rechazo de la recepción completa si el artículo no existe.
			item, err := r.Items.GetByID(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return fmt.Errorf("artículo %s: %w", line.ItemID, domain.ErrNotFound)
			}

			subtotal := line.CostPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			detail := &entity.StockInDetail{
				ID:         uuid.New().String(),
				StockInID:  stockIn.ID,
				ItemID:     line.ItemID,
				Quantity:   line.Quantity,
				CostPrice:  line.CostPrice,
				ExpiryDate: line.ExpiryDate,
				Subtotal:   subtotal,
				CreatedAt:  now,
			}
			if err := r.StockIns.CreateDetail(detail); err != nil {
				return err
			}
			if _, err := ApplyReceipt(r.Inventory, line.ItemID, line.Quantity, line.CostPrice, now); err != nil {
				return err
			}
			lines = append(lines, dto.StockInLineResponse{
				ID:         detail.ID,
				ItemID:     item.ID,
				ItemName:   item.Name,
				Unit:       item.Unit,
				Quantity:   detail.Quantity,
				CostPrice:  detail.CostPrice,
				Subtotal:   detail.Subtotal,
				ExpiryDate: detail.ExpiryDate,
			})
		}

		resp = &dto.StockInResponse{
			ID:          stockIn.ID,
			Code:        stockIn.Code,
			ImportDate:  stockIn.ImportDate,
			TotalAmount: stockIn.TotalAmount,
			Status:      stockIn.Status,
			Notes:       stockIn.Notes,
			Details:     lines,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
