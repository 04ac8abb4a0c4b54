package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/wattscycling/warehouse-api/internal/application/dto"
	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

// VariantUseCase CRUD de variantes talla/color.
type VariantUseCase struct {
	variantRepo repository.VariantRepository
	productRepo repository.ProductRepository
	sizeRepo    repository.SizeRepository
	colorRepo   repository.ColorRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(
	variantRepo repository.VariantRepository,
	productRepo repository.ProductRepository,
	sizeRepo repository.SizeRepository,
	colorRepo repository.ColorRepository,
) *VariantUseCase {
	return &VariantUseCase{
		variantRepo: variantRepo,
		productRepo: productRepo,
		sizeRepo:    sizeRepo,
		colorRepo:   colorRepo,
	}
}

// Create crea una variante generando su SKU (CODIGOBASE-TALLA-COL).
// Producto, talla y color deben existir; el SKU resultante debe ser único.
func (uc *VariantUseCase) Create(in dto.VariantRequest) (*entity.Variant, error) {
	if in.ProductID == "" || in.SizeID == "" || in.ColorID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	size, err := uc.sizeRepo.GetByID(in.SizeID)
	if err != nil {
		return nil, err
	}
	color, err := uc.colorRepo.GetByID(in.ColorID)
	if err != nil {
		return nil, err
	}
	if product == nil || size == nil || color == nil {
		return nil, domain.ErrNotFound
	}

	sku := entity.BuildSKU(product.BaseCode, size.Name, color.Name)
	existing, err := uc.variantRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	v := &entity.Variant{
		ID:            uuid.New().String(),
		SKU:           sku,
		ProductID:     in.ProductID,
		SizeID:        in.SizeID,
		ColorID:       in.ColorID,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		ImageURL:      in.ImageURL,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.variantRepo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID devuelve una variante o ErrNotFound.
func (uc *VariantUseCase) GetByID(id string) (*entity.Variant, error) {
	v, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// UpdatePrices actualiza precios e imagen. Talla/color no cambian: eso es otra variante.
func (uc *VariantUseCase) UpdatePrices(id string, in dto.VariantRequest) (*entity.Variant, error) {
	v, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.PurchasePrice != nil {
		v.PurchasePrice = in.PurchasePrice
	}
	if in.SalePrice != nil {
		v.SalePrice = in.SalePrice
	}
	if in.ImageURL != "" {
		v.ImageURL = in.ImageURL
	}
	v.UpdatedAt = time.Now()
	if err := uc.variantRepo.Update(v); err != nil {
		return nil, err
	}
	return v, nil
}

// ListByProduct lista las variantes de un producto.
func (uc *VariantUseCase) ListByProduct(productID string, activeOnly bool, limit, offset int) ([]*entity.Variant, error) {
	return uc.variantRepo.ListByProduct(productID, activeOnly, limit, offset)
}

// Deactivate soft delete de la variante; su stock y su histórico quedan.
func (uc *VariantUseCase) Deactivate(id string) error {
	if _, err := uc.GetByID(id); err != nil {
		return err
	}
	return uc.variantRepo.SetActive(id, false)
}
