// Package codegen genera códigos legibles y únicos para documentos del sistema
// (ventas, recepciones, artículos, clientes).
//
// Formato: PREFIJO-AAAAMMDD-SECUENCIA-CHECKSUM, ej. SA-20260831-000042-17.
// La secuencia viene de un consecutivo por prefijo en la base de datos
// (repository.CodeRepository), por lo que la unicidad está garantizada por
// construcción; el checksum mod 97 detecta errores de digitación al consultar
// un código a mano.
package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefijos de documento.
const (
	PrefixSale     = "SA"
	PrefixStockIn  = "SI"
	PrefixItem     = "IT"
	PrefixCustomer = "CU"
)

// Format construye el código para un prefijo, fecha y consecutivo dados.
func Format(prefix string, date time.Time, seq int64) string {
	body := fmt.Sprintf("%s%06d", date.Format("20060102"), seq)
	return fmt.Sprintf("%s-%s-%06d-%02d", prefix, date.Format("20060102"), seq, checksum(body))
}

// Validate verifica el formato y el checksum de un código generado por Format.
func Validate(code string) bool {
	parts := strings.Split(code, "-")
	if len(parts) != 4 {
		return false
	}
	prefix, datePart, seqPart, checkPart := parts[0], parts[1], parts[2], parts[3]
	if prefix == "" || len(datePart) != 8 || len(seqPart) == 0 || len(checkPart) != 2 {
		return false
	}
	if _, err := time.Parse("20060102", datePart); err != nil {
		return false
	}
	seq, err := strconv.ParseInt(seqPart, 10, 64)
	if err != nil || seq < 0 {
		return false
	}
	want, err := strconv.Atoi(checkPart)
	if err != nil {
		return false
	}
	body := fmt.Sprintf("%s%06d", datePart, seq)
	return checksum(body) == want
}

// checksum calcula el resto mod 97 del cuerpo numérico del código.
// Se procesa dígito a dígito para no depender del rango de int64.
func checksum(digits string) int {
	rem := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		rem = (rem*10 + int(r-'0')) % 97
	}
	return rem
}
