package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
)

// La polaridad vive en Sign(): salidas restan, entradas suman.
func TestMovementType_Sign(t *testing.T) {
	outbound := []string{
		entity.MovementTypeSale,
		entity.MovementTypeOutboundDefect,
		entity.MovementTypeOutboundGift,
	}
	inbound := []string{
		entity.MovementTypePurchase,
		entity.MovementTypeManufacturing,
		entity.MovementTypeReturn,
	}

	for _, s := range outbound {
		mt, err := entity.ParseMovementType(s)
		require.NoError(t, err)
		assert.Equal(t, -1, mt.Sign(), "el tipo %s debe restar stock", s)
		assert.True(t, mt.Outbound())
	}
	for _, s := range inbound {
		mt, err := entity.ParseMovementType(s)
		require.NoError(t, err)
		assert.Equal(t, +1, mt.Sign(), "el tipo %s debe sumar stock", s)
		assert.False(t, mt.Outbound())
	}
}

func TestParseMovementType_Desconocido(t *testing.T) {
	_, err := entity.ParseMovementType("TRANSFER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.ParseMovementType("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Sensible a mayúsculas: el enum es cerrado y exacto.
	_, err = entity.ParseMovementType("sale")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildSKU(t *testing.T) {
	assert.Equal(t, "MAIL01-M-AZU", entity.BuildSKU("MAIL01", "M", "Azul"))
	assert.Equal(t, "CUL02-XL-NEG", entity.BuildSKU("cul02", "xl", "negro"))

	// Colores con acento: se quitan las marcas diacríticas antes de cortar.
	assert.Equal(t, "MAIL01-S-ANI", entity.BuildSKU("MAIL01", "S", "Añil"))

	// Colores de menos de 3 letras se usan completos.
	assert.Equal(t, "MAIL01-M-OR", entity.BuildSKU("MAIL01", "M", "or"))

	// Espacios alrededor no cambian el SKU.
	assert.Equal(t, "MAIL01-M-AZU", entity.BuildSKU(" MAIL01 ", " M ", " Azul "))
}
