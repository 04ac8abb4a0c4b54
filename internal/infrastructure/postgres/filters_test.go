package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

func TestCondBuilder_SinCondiciones(t *testing.T) {
	var b condBuilder
	assert.Empty(t, b.where())
	assert.Empty(t, b.args)
}

func TestCondBuilder_Add(t *testing.T) {
	var b condBuilder
	b.add("m.warehouse_id = ", "w1")
	b.add("m.type = ", "SALE")

	assert.Equal(t, " WHERE m.warehouse_id = $1 AND m.type = $2", b.where())
	assert.Equal(t, []any{"w1", "SALE"}, b.args)
}

func TestCondBuilder_AddText_Modos(t *testing.T) {
	cases := []struct {
		name     string
		filter   repository.TextFilter
		wantCond string
		wantArg  string
	}{
		{"contains por defecto", repository.TextFilter{Value: "maillot"},
			"p.name ILIKE $1", "%maillot%"},
		{"contains explícito", repository.TextFilter{Value: "maillot", Mode: repository.MatchContains},
			"p.name ILIKE $1", "%maillot%"},
		{"startsWith", repository.TextFilter{Value: "mai", Mode: repository.MatchStartsWith},
			"p.name ILIKE $1", "mai%"},
		{"endsWith", repository.TextFilter{Value: "llot", Mode: repository.MatchEndsWith},
			"p.name ILIKE $1", "%llot"},
		{"equals", repository.TextFilter{Value: "Maillot Pro", Mode: repository.MatchEquals},
			"lower(p.name) = lower($1)", "Maillot Pro"},
		{"notEquals", repository.TextFilter{Value: "Maillot Pro", Mode: repository.MatchNotEquals},
			"lower(p.name) <> lower($1)", "Maillot Pro"},
		{"notContains", repository.TextFilter{Value: "outlet", Mode: repository.MatchNotContains},
			"p.name NOT ILIKE $1", "%outlet%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b condBuilder
			b.addText("p.name", tc.filter)

			assert.Equal(t, " WHERE "+tc.wantCond, b.where())
			assert.Equal(t, []any{tc.wantArg}, b.args)
		})
	}
}

func TestCondBuilder_AddText_FiltroVacioNoAgregaNada(t *testing.T) {
	var b condBuilder
	b.addText("p.name", repository.TextFilter{})

	assert.Empty(t, b.where())
	assert.Empty(t, b.args)
}

func TestCondBuilder_AddDateRange(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	t.Run("ambos lados", func(t *testing.T) {
		var b condBuilder
		b.addDateRange("m.created_at", &from, &to)
		assert.Equal(t, " WHERE m.created_at >= $1 AND m.created_at <= $2", b.where())
		assert.Equal(t, []any{from, to}, b.args)
	})

	t.Run("solo desde", func(t *testing.T) {
		var b condBuilder
		b.addDateRange("m.created_at", &from, nil)
		assert.Equal(t, " WHERE m.created_at >= $1", b.where())
	})

	t.Run("solo hasta", func(t *testing.T) {
		var b condBuilder
		b.addDateRange("m.created_at", nil, &to)
		assert.Equal(t, " WHERE m.created_at <= $1", b.where())
	})
}

func TestCondBuilder_Combinado(t *testing.T) {
	// El orden de los placeholders sigue el orden de inserción.
	var b condBuilder
	b.add("m.warehouse_id = ", "w1")
	b.addText("p.name", repository.TextFilter{Value: "culotte", Mode: repository.MatchStartsWith})
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	b.addDateRange("m.created_at", &from, nil)

	assert.Equal(t,
		" WHERE m.warehouse_id = $1 AND p.name ILIKE $2 AND m.created_at >= $3",
		b.where())
	assert.Len(t, b.args, 3)
}
