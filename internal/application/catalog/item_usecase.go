package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
	"github.com/jcastro/petshop-api/pkg/codegen"
)

// ItemUseCase administra los artículos del catálogo. Las operaciones que tocan
// más de una tabla (crear artículo + fila de inventario, eliminar ambos) van
// en transacción; las lecturas usan los repositorios atados al pool.
type ItemUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	itemTypeRepo repository.ItemTypeRepository
	invRepo      repository.InventoryRepository
	saleRepo     repository.SaleRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	itemTypeRepo repository.ItemTypeRepository,
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		itemTypeRepo: itemTypeRepo,
		invRepo:      invRepo,
		saleRepo:     saleRepo,
	}
}

// Create registra un artículo y su fila de inventario en cero, en una sola
// transacción. El código se genera con el consecutivo del prefijo IT.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del artículo es obligatorio", domain.ErrInvalidInput)
	}
	if in.ItemTypeID == "" {
		return nil, fmt.Errorf("%w: la categoría es obligatoria", domain.ErrInvalidInput)
	}
	if in.SellingPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := time.Now()
	var resp *dto.ItemResponse
	err := uc.txRunner.Run(ctx, func(r repository.Tx) error {
		itemType, err := r.ItemTypes.GetByID(in.ItemTypeID)
		if err != nil {
			return err
		}
		if itemType == nil {
			return fmt.Errorf("categoría %s: %w", in.ItemTypeID, domain.ErrNotFound)
		}
		existing, err := r.Items.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("artículo %q: %w", name, domain.ErrDuplicate)
		}

		seq, err := r.Codes.Next(codegen.PrefixItem)
		if err != nil {
			return err
		}
		item := &entity.Item{
			ID:           uuid.New().String(),
			Code:         codegen.Format(codegen.PrefixItem, now, seq),
			Name:         name,
			ItemTypeID:   in.ItemTypeID,
			Description:  in.Description,
			SellingPrice: in.SellingPrice,
			Unit:         unit,
			ImagePath:    in.ImagePath,
			IsActive:     active,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Items.Create(item); err != nil {
			return err
		}
		// Fila de inventario en cero desde el primer día; las cantidades solo
		// entran por recepciones de mercancía.
		inv := &entity.Inventory{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			Quantity:    0,
			MinStock:    0,
			LastUpdated: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Inventory.Create(inv); err != nil {
			return err
		}

		out := toItemResponse(item, itemType.Name, &inv.Quantity)
		resp = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}
	typeName := ""
	if itemType, err := uc.itemTypeRepo.GetByID(item.ItemTypeID); err == nil && itemType != nil {
		typeName = itemType.Name
	}
	var qty *int
	if inv, err := uc.invRepo.GetByItemID(id); err == nil && inv != nil {
		qty = &inv.Quantity
	}
	resp := toItemResponse(item, typeName, qty)
	return &resp, nil
}

// List busca artículos con filtros opcionales. La búsqueda por nombre o código
// no distingue mayúsculas ni acentos.
func (uc *ItemUseCase) List(filter repository.ItemFilter, page dto.PageRequest) (*dto.ItemListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	items, total, err := uc.itemRepo.List(filter)
	if err != nil {
		return nil, err
	}

	typeNames := make(map[string]string)
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		typeName, ok := typeNames[item.ItemTypeID]
		if !ok {
			if itemType, err := uc.itemTypeRepo.GetByID(item.ItemTypeID); err == nil && itemType != nil {
				typeName = itemType.Name
			}
			typeNames[item.ItemTypeID] = typeName
		}
		out = append(out, toItemResponse(item, typeName, nil))
	}
	return &dto.ItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		if name != item.Name {
			existing, err := uc.itemRepo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("artículo %q: %w", name, domain.ErrDuplicate)
			}
		}
		item.Name = name
	}
	if in.ItemTypeID != nil {
		itemType, err := uc.itemTypeRepo.GetByID(*in.ItemTypeID)
		if err != nil {
			return nil, err
		}
		if itemType == nil {
			return nil, fmt.Errorf("categoría %s: %w", *in.ItemTypeID, domain.ErrNotFound)
		}
		item.ItemTypeID = *in.ItemTypeID
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: el precio de venta no puede ser negativo", domain.ErrInvalidInput)
		}
		item.SellingPrice = *in.SellingPrice
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.ImagePath != nil {
		item.ImagePath = *in.ImagePath
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	typeName := ""
	if itemType, err := uc.itemTypeRepo.GetByID(item.ItemTypeID); err == nil && itemType != nil {
		typeName = itemType.Name
	}
	resp := toItemResponse(item, typeName, nil)
	return &resp, nil
}

// Delete hace soft delete del artículo y de su fila de inventario, en
// transacción. Se rechaza si el artículo aparece en alguna venta: el historial
// de ventas referencia sus líneas y debe seguir siendo consultable.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(r repository.Tx) error {
		item, err := r.Items.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
		}
		count, err := r.Sales.CountByItem(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: el artículo aparece en %d ventas", domain.ErrItemInUse, count)
		}
		if err := r.Items.SoftDelete(id); err != nil {
			return err
		}
		return r.Inventory.SoftDeleteByItemID(id)
	})
}

func toItemResponse(item *entity.Item, typeName string, qty *int) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           item.ID,
		Code:         item.Code,
		Name:         item.Name,
		ItemTypeID:   item.ItemTypeID,
		ItemTypeName: typeName,
		Description:  item.Description,
		SellingPrice: item.SellingPrice,
		Unit:         item.Unit,
		ImagePath:    item.ImagePath,
		IsActive:     item.IsActive,
		Quantity:     qty,
	}
}
