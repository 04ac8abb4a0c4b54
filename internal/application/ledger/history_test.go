package ledger_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattscycling/warehouse-api/internal/application/ledger"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// histMovRepo devuelve un histórico fijo para las consultas de solo lectura.
type histMovRepo struct {
	details []*repository.MovementDetail
}

func (r *histMovRepo) Create(*entity.Movement) error { return nil }
func (r *histMovRepo) GetByID(id string) (*repository.MovementDetail, error) {
	for _, d := range r.details {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (r *histMovRepo) List(_ repository.MovementFilter, limit, offset int) ([]*repository.MovementDetail, error) {
	if offset >= len(r.details) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.details) {
		end = len(r.details)
	}
	return r.details[offset:end], nil
}
func (r *histMovRepo) Count(repository.MovementFilter) (int, error) { return len(r.details), nil }
func (r *histMovRepo) ListByVariant(variantID string, _, _ int) ([]*repository.MovementDetail, error) {
	var out []*repository.MovementDetail
	for _, d := range r.details {
		if d.VariantID == variantID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *histMovRepo) ListAll(repository.MovementFilter) ([]*repository.MovementDetail, error) {
	return r.details, nil
}

// plainRenderer evita depender del renderizador real en estos tests.
type plainRenderer struct{}

func (plainRenderer) RenderCSV(movements []*repository.MovementDetail, w io.Writer) error {
	for _, m := range movements {
		if _, err := io.WriteString(w, m.ID+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (plainRenderer) RenderPDF(movements []*repository.MovementDetail) ([]byte, error) {
	return []byte("pdf"), nil
}

func histFixture() (*ledger.HistoryUseCase, *histMovRepo) {
	repo := &histMovRepo{details: []*repository.MovementDetail{
		{Movement: entity.Movement{ID: "mov-1", VariantID: variantID}},
		{Movement: entity.Movement{ID: "mov-2", VariantID: variantID}},
		{Movement: entity.Movement{ID: "mov-3", VariantID: "var-otro"}},
	}}
	variants := &memVariantRepo{bySKU: map[string]*entity.Variant{
		variantSKU: {ID: variantID, SKU: variantSKU, Active: true},
	}}
	return ledger.NewHistoryUseCase(repo, variants, plainRenderer{}), repo
}

func TestHistory_PaginaConTotal(t *testing.T) {
	uc, _ := histFixture()

	list, total, err := uc.History(context.Background(), repository.MovementFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 3, total, "el total cuenta todas las coincidencias, no la página")
}

func TestVariantHistory_FiltraPorVariante(t *testing.T) {
	uc, _ := histFixture()

	list, err := uc.VariantHistory(context.Background(), variantID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestVariantHistory_VarianteInexistente(t *testing.T) {
	uc, _ := histFixture()

	_, err := uc.VariantHistory(context.Background(), "var-fantasma", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc, _ := histFixture()

	err := uc.Export(context.Background(), repository.MovementFilter{}, "xlsx", io.Discard)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_CSVyPDF(t *testing.T) {
	uc, _ := histFixture()

	var csvBuf bytes.Buffer
	require.NoError(t, uc.Export(context.Background(), repository.MovementFilter{}, "csv", &csvBuf))
	assert.Equal(t, "mov-1\nmov-2\nmov-3\n", csvBuf.String())

	// Formato vacío exporta PDF por defecto.
	var pdfBuf bytes.Buffer
	require.NoError(t, uc.Export(context.Background(), repository.MovementFilter{}, "", &pdfBuf))
	assert.Equal(t, "pdf", pdfBuf.String())
}
