package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// condBuilder acumula condiciones SQL y sus argumentos posicionales.
// Traduce los TextFilter (MatchMode de PrimeNG) a ILIKE/lower() sin distinguir
// mayúsculas, igual para todos los listados filtrables.
type condBuilder struct {
	conds []string
	args  []any
}

// add añade una condición con un argumento posicional al final de expr.
// expr debe terminar donde va el placeholder, p. ej. "m.warehouse_id = ".
func (b *condBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf("%s$%d", expr, len(b.args)))
}

// addText añade la condición de un filtro de texto según su modo de coincidencia.
func (b *condBuilder) addText(expr string, f repository.TextFilter) {
	if f.Empty() {
		return
	}
	mode := f.Mode
	if mode == "" {
		mode = repository.MatchContains
	}
	switch mode {
	case repository.MatchStartsWith:
		b.add(expr+" ILIKE ", f.Value+"%")
	case repository.MatchEndsWith:
		b.add(expr+" ILIKE ", "%"+f.Value)
	case repository.MatchEquals:
		b.add("lower("+expr+") = lower(", f.Value)
		b.closeParen()
	case repository.MatchNotEquals:
		b.add("lower("+expr+") <> lower(", f.Value)
		b.closeParen()
	case repository.MatchNotContains:
		b.add(expr+" NOT ILIKE ", "%"+f.Value+"%")
	default: // contains
		b.add(expr+" ILIKE ", "%"+f.Value+"%")
	}
}

// closeParen cierra el paréntesis de la última condición añadida.
func (b *condBuilder) closeParen() {
	b.conds[len(b.conds)-1] += ")"
}

// addDateRange añade el rango de fechas: ambos lados inclusivos, cualquiera opcional.
func (b *condBuilder) addDateRange(expr string, from, to *time.Time) {
	if from != nil {
		b.add(expr+" >= ", *from)
	}
	if to != nil {
		b.add(expr+" <= ", *to)
	}
}

// where devuelve la cláusula WHERE completa, o cadena vacía si no hay condiciones.
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}
