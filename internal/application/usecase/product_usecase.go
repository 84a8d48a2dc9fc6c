package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-erp/internal/application/dto"
	"github.com/jhoicas/gestion-erp/internal/domain"
	"github.com/jhoicas/gestion-erp/internal/domain/entity"
	"github.com/jhoicas/gestion-erp/internal/domain/repository"
	"github.com/jhoicas/gestion-erp/pkg/textutil"
)

// ProductUseCase casos de uso del catálogo de productos. El stock
// (quantity_on_hand) solo se fija en la creación; después lo mutan
// exclusivamente los movimientos y el cierre de inventarios.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto. Devuelve domain.ErrDuplicate si el SKU ya existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.CategoryID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity.IsNegative() || in.MaxQuantity.IsNegative() || in.QuantityOnHand.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkReferences(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		SKU:            in.SKU,
		CategoryID:     in.CategoryID,
		SupplierID:     in.SupplierID,
		UnitMeasure:    in.UnitMeasure,
		MinQuantity:    in.MinQuantity,
		MaxQuantity:    in.MaxQuantity,
		QuantityOnHand: in.QuantityOnHand,
		Cost:           in.Cost,
		SalePrice:      in.SalePrice,
		SearchName:     textutil.Normalize(in.Name),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return productToResponse(product), nil
}

// Update actualiza los datos de catálogo de un producto. Nunca toca
// quantity_on_hand.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.CategoryID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinQuantity.IsNegative() || in.MaxQuantity.IsNegative() || in.Cost.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkReferences(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	if in.SKU != product.SKU {
		existing, err := uc.repo.GetBySKU(in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	product.Name = in.Name
	product.Description = in.Description
	product.SKU = in.SKU
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.UnitMeasure = in.UnitMeasure
	product.MinQuantity = in.MinQuantity
	product.MaxQuantity = in.MaxQuantity
	product.Cost = in.Cost
	product.SalePrice = in.SalePrice
	product.SearchName = textutil.Normalize(in.Name)
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// List lista productos con filtros opcionales. El término de búsqueda se
// normaliza para comparar contra search_name.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	filter.Search = textutil.Normalize(filter.Search)
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return productsToListResponse(list, filter.Limit, filter.Offset), nil
}

// ListBelowMinimum lista productos con stock por debajo del mínimo.
func (uc *ProductUseCase) ListBelowMinimum() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	return productsToListResponse(list, len(list), 0), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) checkReferences(categoryID, supplierID string) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return nil
}

func productsToListResponse(list []*entity.Product, limit, offset int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *productToResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		SKU:            p.SKU,
		CategoryID:     p.CategoryID,
		SupplierID:     p.SupplierID,
		UnitMeasure:    p.UnitMeasure,
		MinQuantity:    p.MinQuantity,
		MaxQuantity:    p.MaxQuantity,
		QuantityOnHand: p.QuantityOnHand,
		Cost:           p.Cost,
		SalePrice:      p.SalePrice,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
