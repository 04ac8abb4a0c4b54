package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Variant es la combinación talla/color de un producto: la unidad que se
// trackea en stock. Única por (ProductID, SizeID, ColorID) y por SKU.
type Variant struct {
	ID            string
	SKU           string
	ProductID     string
	SizeID        string
	ColorID       string
	PurchasePrice *decimal.Decimal // nil = sin precio configurado
	SalePrice     *decimal.Decimal
	ImageURL      string
	Active        bool // soft delete
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BuildSKU genera el SKU con el formato CODIGOBASE-TALLA-COL, donde COL son
// las 3 primeras letras del color en mayúsculas y sin acentos ("Añil" -> "ANI").
func BuildSKU(productBaseCode, sizeName, colorName string) string {
	col := stripAccents(strings.ToUpper(strings.TrimSpace(colorName)))
	if len(col) > 3 {
		col = col[:3]
	}
	return strings.ToUpper(strings.TrimSpace(productBaseCode)) + "-" +
		strings.ToUpper(strings.TrimSpace(sizeName)) + "-" + col
}

// stripAccents elimina marcas diacríticas (NFD + borrado de combining marks).
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
