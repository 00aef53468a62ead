package repository

// CodeRepository entrega consecutivos por prefijo para generar códigos legibles
// (SA, SI, IT, CU...) sin colisiones. El consecutivo avanza dentro de la
// transacción del caller: si la operación hace rollback, el número se pierde
// pero nunca se repite.
type CodeRepository interface {
	Next(prefix string) (int64, error)
}
