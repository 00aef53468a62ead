package inventory

import "github.com/shopspring/decimal"

// AverageCost implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Si la cantidad resultante es cero o negativa devuelve cero (guardia de división por cero).
func AverageCost(currentQty int, currentCost decimal.Decimal, incomingQty int, incomingCost decimal.Decimal) decimal.Decimal {
	cur := decimal.NewFromInt(int64(currentQty))
	inc := decimal.NewFromInt(int64(incomingQty))
	sum := cur.Add(inc)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := cur.Mul(currentCost).Add(inc.Mul(incomingCost))
	return num.Div(sum)
}
