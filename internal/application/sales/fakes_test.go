package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// ── almacén en memoria ────────────────────────────────────────────────────────
//
// memStore simula la base de datos para los tests del caso de uso de ventas.
// El memTxRunner toma un snapshot antes del callback y lo restaura si falla,
// reproduciendo el todo-o-nada de la transacción real.

type memStore struct {
	items     map[string]*entity.Item
	inventory map[string]*entity.Inventory // clave: itemID
	sales     map[string]*entity.Sale
	details   []*entity.SaleDetail
	customers map[string]*entity.Customer
	seqs      map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		items:     make(map[string]*entity.Item),
		inventory: make(map[string]*entity.Inventory),
		sales:     make(map[string]*entity.Sale),
		customers: make(map[string]*entity.Customer),
		seqs:      make(map[string]int64),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.inventory {
		cp := *v
		if v.AvgCost != nil {
			cost := *v.AvgCost
			cp.AvgCost = &cost
		}
		c.inventory[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for _, d := range s.details {
		cp := *d
		c.details = append(c.details, &cp)
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.items = snap.items
	s.inventory = snap.inventory
	s.sales = snap.sales
	s.details = snap.details
	s.customers = snap.customers
	s.seqs = snap.seqs
}

// ── repositorios fake ─────────────────────────────────────────────────────────

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) Create(item *entity.Item) error { r.store.items[item.ID] = item; return nil }
func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.store.items[id], nil
}
func (r *memItemRepo) GetByName(string) (*entity.Item, error) { return nil, nil }
func (r *memItemRepo) List(repository.ItemFilter) ([]*entity.Item, int, error) {
	return nil, 0, nil
}
func (r *memItemRepo) Update(*entity.Item) error { return nil }
func (r *memItemRepo) SoftDelete(string) error   { return nil }

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
func (r *memInventoryRepo) SoftDeleteByItemID(string) error                  { return nil }

type memSaleRepo struct{ store *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.store.sales[sale.ID] = sale
	return nil
}
func (r *memSaleRepo) CreateDetail(d *entity.SaleDetail) error {
	r.store.details = append(r.store.details, d)
	return nil
}
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.store.sales[id], nil
}
func (r *memSaleRepo) GetForUpdate(id string) (*entity.Sale, error) {
	return r.store.sales[id], nil
}
func (r *memSaleRepo) ListDetails(saleID string) ([]repository.SaleDetailRow, error) {
	var rows []repository.SaleDetailRow
	for _, d := range r.store.details {
		if d.SaleID != saleID {
			continue
		}
		row := repository.SaleDetailRow{Detail: *d}
		if item, ok := r.store.items[d.ItemID]; ok {
			row.ItemName = item.Name
			row.Unit = item.Unit
		}
		rows = append(rows, row)
	}
	return rows, nil
}
func (r *memSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}
func (r *memSaleRepo) UpdateStatusAndNotes(id, status, notes string) error {
	if sale, ok := r.store.sales[id]; ok {
		sale.Status = status
		sale.Notes = notes
		sale.UpdatedAt = time.Now()
	}
	return nil
}
func (r *memSaleRepo) CountByCustomer(string) (int, error) { return 0, nil }
func (r *memSaleRepo) CountByItem(string) (int, error)     { return 0, nil }

type memCustomerRepo struct{ store *memStore }

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.store.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.store.customers[id], nil
}
func (r *memCustomerRepo) GetByPhone(string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) List(string, bool, int, int) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (r *memCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *memCustomerRepo) SoftDelete(string) error       { return nil }

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
		Inventory: &memInventoryRepo{store: tr.store},
		Sales:     &memSaleRepo{store: tr.store},
		Customers: &memCustomerRepo{store: tr.store},
		Codes:     &memCodeRepo{store: tr.store},
	})
	if err != nil {
		tr.store.restore(snap)
		return err
	}
	return nil
}

// ── seeds ─────────────────────────────────────────────────────────────────────

func seedItem(store *memStore, id, name string) {
	store.items[id] = &entity.Item{
		ID:       id,
		Code:     "IT-20260101-000001-00",
		Name:     name,
		Unit:     "pcs",
		IsActive: true,
	}
}

func seedInventory(store *memStore, itemID string, qty int, avgCost string) {
	cost := decimal.RequireFromString(avgCost)
	store.inventory[itemID] = &entity.Inventory{
		ID:       "inv-" + itemID,
		ItemID:   itemID,
		Quantity: qty,
		AvgCost:  &cost,
	}
}
