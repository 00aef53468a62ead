package catalog_test

import (
	"context"
	"strings"

	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// ── almacén en memoria ────────────────────────────────────────────────────────
//
// memStore simula la base de datos para los tests del catálogo. El memTxRunner
// toma un snapshot antes del callback y lo restaura si falla, reproduciendo el
// todo-o-nada de la transacción real.

type memStore struct {
	itemTypes    map[string]*entity.ItemType
	items        map[string]*entity.Item
	inventory    map[string]*entity.Inventory // clave: itemID
	salesPerItem map[string]int
	seqs         map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		itemTypes:    make(map[string]*entity.ItemType),
		items:        make(map[string]*entity.Item),
		inventory:    make(map[string]*entity.Inventory),
		salesPerItem: make(map[string]int),
		seqs:         make(map[string]int64),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.itemTypes {
		cp := *v
		c.itemTypes[k] = &cp
	}
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.inventory {
		cp := *v
		c.inventory[k] = &cp
	}
	for k, v := range s.salesPerItem {
		c.salesPerItem[k] = v
	}
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.itemTypes = snap.itemTypes
	s.items = snap.items
	s.inventory = snap.inventory
	s.salesPerItem = snap.salesPerItem
	s.seqs = snap.seqs
}

// ── repositorios fake ─────────────────────────────────────────────────────────

type memItemTypeRepo struct{ store *memStore }

func (r *memItemTypeRepo) Create(it *entity.ItemType) error {
	r.store.itemTypes[it.ID] = it
	return nil
}
func (r *memItemTypeRepo) GetByID(id string) (*entity.ItemType, error) {
	return r.store.itemTypes[id], nil
}
func (r *memItemTypeRepo) GetByName(name string) (*entity.ItemType, error) {
	for _, it := range r.store.itemTypes {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}
func (r *memItemTypeRepo) List(search string, limit, offset int) ([]*entity.ItemType, int, error) {
	var out []*entity.ItemType
	for _, it := range r.store.itemTypes {
		if search == "" || strings.Contains(strings.ToLower(it.Name), strings.ToLower(search)) {
			out = append(out, it)
		}
	}
	return out, len(out), nil
}
func (r *memItemTypeRepo) ListActive() ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for _, it := range r.store.itemTypes {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memItemTypeRepo) Update(it *entity.ItemType) error {
	r.store.itemTypes[it.ID] = it
	return nil
}
func (r *memItemTypeRepo) SoftDelete(id string) error {
	delete(r.store.itemTypes, id)
	return nil
}
func (r *memItemTypeRepo) CountItems(itemTypeID string) (int, error) {
	count := 0
	for _, item := range r.store.items {
		if item.ItemTypeID == itemTypeID {
			count++
		}
	}
	return count, nil
}

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) Create(item *entity.Item) error { r.store.items[item.ID] = item; return nil }
func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.store.items[id], nil
}
func (r *memItemRepo) GetByName(name string) (*entity.Item, error) {
	for _, item := range r.store.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, nil
}
func (r *memItemRepo) List(repository.ItemFilter) ([]*entity.Item, int, error) {
	return nil, 0, nil
}
func (r *memItemRepo) Update(item *entity.Item) error { r.store.items[item.ID] = item; return nil }
func (r *memItemRepo) SoftDelete(id string) error {
	delete(r.store.items, id)
	return nil
}

type memInventoryRepo struct{ store *memStore }

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	r.store.inventory[inv.ItemID] = inv
	return nil
}
func (r *memInventoryRepo) GetByItemID(itemID string) (*entity.Inventory, error) {
	return r.store.inventory[itemID], nil
}
func (r *memInventoryRepo) GetForUpdate(itemID string) (*entity.Inventory, error) {
	return r.store.inventory[itemID], nil
}
func (r *memInventoryRepo) Update(inv *entity.Inventory) error {
	r.store.inventory[inv.ItemID] = inv
	return nil
}
func (r *memInventoryRepo) UpdateMinStock(string, int) error { return nil }
func (r *memInventoryRepo) List(repository.InventoryFilter) ([]repository.InventoryRow, int, error) {
	return nil, 0, nil
}
func (r *memInventoryRepo) ListLowStock() ([]repository.InventoryRow, error) { return nil, nil }
func (r *memInventoryRepo) SoftDeleteByItemID(itemID string) error {
	delete(r.store.inventory, itemID)
	return nil
}

type memSaleRepo struct{ store *memStore }

func (r *memSaleRepo) Create(*entity.Sale) error             { return nil }
func (r *memSaleRepo) CreateDetail(*entity.SaleDetail) error { return nil }
func (r *memSaleRepo) GetByID(string) (*entity.Sale, error)  { return nil, nil }
func (r *memSaleRepo) GetForUpdate(string) (*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ListDetails(string) ([]repository.SaleDetailRow, error) { return nil, nil }
func (r *memSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}
func (r *memSaleRepo) UpdateStatusAndNotes(string, string, string) error { return nil }
func (r *memSaleRepo) CountByCustomer(string) (int, error)               { return 0, nil }
func (r *memSaleRepo) CountByItem(itemID string) (int, error) {
	return r.store.salesPerItem[itemID], nil
}

type memCodeRepo struct{ store *memStore }

func (r *memCodeRepo) Next(prefix string) (int64, error) {
	r.store.seqs[prefix]++
	return r.store.seqs[prefix], nil
}

// ── tx runner fake ────────────────────────────────────────────────────────────

type memTxRunner struct{ store *memStore }

func (tr *memTxRunner) Run(_ context.Context, fn func(r repository.Tx) error) error {
	snap := tr.store.clone()
	err := fn(repository.Tx{
		Items:     &memItemRepo{store: tr.store},
		ItemTypes: &memItemTypeRepo{store: tr.store},
		Inventory: &memInventoryRepo{store: tr.store},
		Sales:     &memSaleRepo{store: tr.store},
		Codes:     &memCodeRepo{store: tr.store},
	})
	if err != nil {
		tr.store.restore(snap)
		return err
	}
	return nil
}

// ── seeds ─────────────────────────────────────────────────────────────────────

func seedItemType(store *memStore, id, name string) {
	store.itemTypes[id] = &entity.ItemType{
		ID:       id,
		Name:     name,
		IsActive: true,
	}
}
