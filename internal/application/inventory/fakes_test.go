package inventory_test

import (
	"context"
	"errors"

	"github.com/jcastro/petshop-api/internal/domain/entity"
	"github.com/jcastro/petshop-api/internal/domain/repository"
)

// ── almacén en memoria ────────────────────────────────────────────────────────
//
// memStore simula la base de datos para los tests del caso de uso. El
// memTxRunner toma un snapshot antes de ejecutar el callback y lo restaura si
// este falla, reproduciendo la semántica todo-o-nada de la transacción real.

type memStore struct {
	items     map[string]*entity.Item
	inventory map[string]*entity.Inventory // clave: itemID
	stockIns  map[string]*entity.StockIn
	details   []*entity.StockInDetail
	seqs      map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		items:     make(map[string]*entity.Item),
		inventory: make(map[string]*entity.Inventory),
		stockIns:  make(map[string]*entity.StockIn),
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
	for k, v := range s.stockIns {
		cp := *v
		c.stockIns[k] = &cp
	}
	for _, d := range s.details {
		cp := *d
		c.details = append(c.details, &cp)
	}
	for k, v := range s.seqs {
		c.seqs[k] = v
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.items = snap.items
	s.inventory = snap.inventory
	s.stockIns = snap.stockIns
	s.details = snap.details
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
func (r *memInventoryRepo) UpdateMinStock(itemID string, minStock int) error {
	if inv, ok := r.store.inventory[itemID]; ok {
		inv.MinStock = minStock
	}
	return nil
}
func (r *memInventoryRepo) List(repository.InventoryFilter) ([]repository.InventoryRow, int, error) {
	return nil, 0, nil
}
func (r *memInventoryRepo) ListLowStock() ([]repository.InventoryRow, error) { return nil, nil }
func (r *memInventoryRepo) SoftDeleteByItemID(string) error                  { return nil }

type memStockInRepo struct{ store *memStore }

func (r *memStockInRepo) Create(si *entity.StockIn) error {
	r.store.stockIns[si.ID] = si
	return nil
}
func (r *memStockInRepo) CreateDetail(d *entity.StockInDetail) error {
	r.store.details = append(r.store.details, d)
	return nil
}
func (r *memStockInRepo) GetByID(id string) (*entity.StockIn, error) {
	return r.store.stockIns[id], nil
}
func (r *memStockInRepo) ListDetails(string) ([]repository.StockInDetailRow, error) {
	return nil, nil
}
func (r *memStockInRepo) List(repository.StockInFilter) ([]*entity.StockIn, int, error) {
	return nil, 0, nil
}

type memCodeRepo struct{ store *memStore }

func (r *memCodeRepo) Next(prefix string) (int64, error) {
	r.store.seqs[prefix]++
	return r.store.seqs[prefix], nil
}

// ── tx runner fake ────────────────────────────────────────────────────────────

type notImplementedSaleRepo struct{}

func (notImplementedSaleRepo) Create(*entity.Sale) error             { return errNotWired }
func (notImplementedSaleRepo) CreateDetail(*entity.SaleDetail) error { return errNotWired }
func (notImplementedSaleRepo) GetByID(string) (*entity.Sale, error)  { return nil, errNotWired }
func (notImplementedSaleRepo) GetForUpdate(string) (*entity.Sale, error) {
	return nil, errNotWired
}
func (notImplementedSaleRepo) ListDetails(string) ([]repository.SaleDetailRow, error) {
	return nil, errNotWired
}
func (notImplementedSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, int, error) {
	return nil, 0, errNotWired
}
func (notImplementedSaleRepo) UpdateStatusAndNotes(string, string, string) error {
	return errNotWired
}
func (notImplementedSaleRepo) CountByCustomer(string) (int, error) { return 0, errNotWired }
func (notImplementedSaleRepo) CountByItem(string) (int, error)     { return 0, errNotWired }

var errNotWired = errors.New("repositorio no usado en este test")

type memTxRunner struct{ store *memStore }

func (tr *memTxRunner) Run(_ context.Context, fn func(r repository.Tx) error) error {
	snap := tr.store.clone()
	err := fn(repository.Tx{
		Items:     &memItemRepo{store: tr.store},
		Inventory: &memInventoryRepo{store: tr.store},
		StockIns:  &memStockInRepo{store: tr.store},
		Sales:     notImplementedSaleRepo{},
		Codes:     &memCodeRepo{store: tr.store},
	})
	if err != nil {
		tr.store.restore(snap)
		return err
	}
	return nil
}
