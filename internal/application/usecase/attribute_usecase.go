package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// AttributeUseCase CRUD mínimo de tallas y colores.
type AttributeUseCase struct {
	sizeRepo  repository.SizeRepository
	colorRepo repository.ColorRepository
}

// NewAttributeUseCase construye el caso de uso.
func NewAttributeUseCase(sizeRepo repository.SizeRepository, colorRepo repository.ColorRepository) *AttributeUseCase {
	return &AttributeUseCase{sizeRepo: sizeRepo, colorRepo: colorRepo}
}

// CreateSize crea una talla (nombre normalizado a mayúsculas).
func (uc *AttributeUseCase) CreateSize(in dto.SizeRequest) (*entity.Size, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Size{ID: uuid.New().String(), Name: name}
	if err := uc.sizeRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSizes lista todas las tallas.
func (uc *AttributeUseCase) ListSizes() ([]*entity.Size, error) {
	return uc.sizeRepo.List()
}

// CreateColor crea un color.
func (uc *AttributeUseCase) CreateColor(in dto.ColorRequest) (*entity.Color, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Color{ID: uuid.New().String(), Name: name, HexCode: in.HexCode}
	if err := uc.colorRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListColors lista todos los colores.
func (uc *AttributeUseCase) ListColors() ([]*entity.Color, error) {
	return uc.colorRepo.List()
}
