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

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create crea un producto. El código base se normaliza a mayúsculas y debe ser único.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*entity.Product, error) {
	baseCode := strings.ToUpper(strings.TrimSpace(in.BaseCode))
	if baseCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByBaseCode(baseCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.New().String(),
		BaseCode:  baseCode,
		Name:      in.Name,
		TechSpecs: in.TechSpecs,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Update actualiza nombre y características; los campos vacíos se conservan.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*entity.Product, error) {
	p, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.TechSpecs != "" {
		p.TechSpecs = in.TechSpecs
	}
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List lista productos con filtro de nombre y paginación.
func (uc *ProductUseCase) List(name repository.TextFilter, activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(name, activeOnly, limit, offset)
}

// Deactivate soft delete: el producto deja de aparecer pero su histórico queda.
func (uc *ProductUseCase) Deactivate(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.productRepo.SetActive(id, false)
}

// Activate reactiva un producto desactivado.
func (uc *ProductUseCase) Activate(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.productRepo.SetActive(id, true)
}
