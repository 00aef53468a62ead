package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/petshop-api/internal/application/dto"
	"github.com/jcastro/petshop-api/internal/domain"
	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// ItemTypeUseCase administra las categorías del catálogo.
type ItemTypeUseCase struct {
	repo repository.ItemTypeRepository
}

// NewItemTypeUseCase construye el caso de uso.
func NewItemTypeUseCase(repo repository.ItemTypeRepository) *ItemTypeUseCase {
	return &ItemTypeUseCase{repo: repo}
}

// Create registra una categoría nueva. El nombre es único entre las no eliminadas.
func (uc *ItemTypeUseCase) Create(in dto.CreateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es obligatorio", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("categoría %q: %w", name, domain.ErrDuplicate)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	itemType := &entity.ItemType{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(itemType); err != nil {
		return nil, err
	}
	resp := toItemTypeResponse(itemType)
	return &resp, nil
}

func (uc *ItemTypeUseCase) GetByID(id string) (*dto.ItemTypeResponse, error) {
	itemType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	resp := toItemTypeResponse(itemType)
	return &resp, nil
}

func (uc *ItemTypeUseCase) List(search string, page dto.PageRequest) ([]dto.ItemTypeResponse, *dto.PageResponse, error) {
	page.DefaultPage()
	itemTypes, total, err := uc.repo.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.ItemTypeResponse, 0, len(itemTypes))
	for _, it := range itemTypes {
		out = append(out, toItemTypeResponse(it))
	}
	return out, &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// ListActive devuelve las categorías activas sin paginar, para selects del frontend.
func (uc *ItemTypeUseCase) ListActive() ([]dto.ItemTypeResponse, error) {
	itemTypes, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemTypeResponse, 0, len(itemTypes))
	for _, it := range itemTypes {
		out = append(out, toItemTypeResponse(it))
	}
	return out, nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ItemTypeUseCase) Update(id string, in dto.UpdateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	itemType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		if name != itemType.Name {
			existing, err := uc.repo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, fmt.Errorf("categoría %q: %w", name, domain.ErrDuplicate)
			}
		}
		itemType.Name = name
	}
	if in.Description != nil {
		itemType.Description = *in.Description
	}
	if in.IsActive != nil {
		itemType.IsActive = *in.IsActive
	}
	itemType.UpdatedAt = time.Now()

	if err := uc.repo.Update(itemType); err != nil {
		return nil, err
	}
	resp := toItemTypeResponse(itemType)
	return &resp, nil
}

// Delete hace soft delete de la categoría. Se rechaza si todavía tiene
// artículos asociados: primero hay que mover o eliminar los artículos.
func (uc *ItemTypeUseCase) Delete(id string) error {
	itemType, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if itemType == nil {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	count, err := uc.repo.CountItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: la categoría tiene %d artículos asociados", domain.ErrConflict, count)
	}
	return uc.repo.SoftDelete(id)
}

func toItemTypeResponse(it *entity.ItemType) dto.ItemTypeResponse {
	return dto.ItemTypeResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		IsActive:    it.IsActive,
	}
}
