package repository

// Tx agrupa los repositorios atados a una misma transacción de base de datos.
// El TxRunner de infraestructura construye una instancia por transacción y la
// pasa al callback del caso de uso; todo lo mutado a través de ella se confirma
// o revierte en bloque.
type Tx struct {
	Items     ItemRepository
	ItemTypes ItemTypeRepository
	Inventory InventoryRepository
	StockIns  StockInRepository
	Sales     SaleRepository
	Customers CustomerRepository
	Codes     CodeRepository
}
