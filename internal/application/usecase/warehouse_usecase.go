package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// WarehouseUseCase CRUD de almacenes.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo}
}

// Create crea un almacén. El código se normaliza a mayúsculas y debe ser único.
func (uc *WarehouseUseCase) Create(in dto.WarehouseRequest) (*entity.Warehouse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.warehouseRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:           uuid.New().String(),
		Code:         code,
		Description:  in.Description,
		MapsLocation: in.MapsLocation,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.warehouseRepo.Create(w); err != nil {
		return nil, err
	}
	return w, nil
}

// GetByID devuelve un almacén o ErrNotFound.
func (uc *WarehouseUseCase) GetByID(id string) (*entity.Warehouse, error) {
	w, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Update actualiza los datos del almacén; los campos vacíos se conservan.
func (uc *WarehouseUseCase) Update(id string, in dto.WarehouseRequest) (*entity.Warehouse, error) {
	w, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Code != "" {
		w.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	}
	if in.Description != "" {
		w.Description = in.Description
	}
	if in.MapsLocation != "" {
		w.MapsLocation = in.MapsLocation
	}
	w.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}

// List lista almacenes con filtros de código/descripción y paginación.
func (uc *WarehouseUseCase) List(code, description repository.TextFilter, activeOnly bool, limit, offset int) ([]*entity.Warehouse, error) {
	return uc.warehouseRepo.List(code, description, activeOnly, limit, offset)
}

// Deactivate soft delete: sus líneas de stock sobreviven.
func (uc *WarehouseUseCase) Deactivate(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.warehouseRepo.SetActive(id, false)
}

// Activate reactiva un almacén desactivado.
func (uc *WarehouseUseCase) Activate(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.warehouseRepo.SetActive(id, true)
}
