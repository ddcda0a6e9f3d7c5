package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
)

const entityProduct = "product"

// ProductUseCase casos de uso CRUD para productos y consultas de stock.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	clock      clock.Clock
	events     ChangePublisher
}

// NewProductUseCase construye el caso de uso. categories valida la referencia a categoría.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, clk clock.Clock, events ChangePublisher) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, clock: clk, events: publisherOrNop(events)}
}

func validateProduct(in dto.ProductRequest) error {
	if err := firstErr(
		checkText("name", in.Name, entity.ProductNameMaxLength, true),
		checkText("description", in.Description, entity.ProductDescriptionMaxLength, false),
		checkText("sku", in.SKU, entity.ProductSKUMaxLength, true),
		checkText("image_url", in.ImageURL, entity.ProductImageURLMaxLength, false),
	); err != nil {
		return err
	}
	if in.Price.LessThan(entity.MinProductPrice) {
		return invalidf("price debe ser al menos %s", entity.MinProductPrice.StringFixed(2))
	}
	if in.StockQuantity < 0 {
		return invalidf("stock_quantity no puede ser negativo")
	}
	return nil
}

func (uc *ProductUseCase) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := uc.categories.GetByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return invalidf("la categoría %d no existe", *categoryID)
	}
	return nil
}

// Create crea un producto activo. El SKU es único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		ImageURL:      in.ImageURL,
		Active:        true,
		CreatedDate:   uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.changed(ctx, product.ID, ActionCreated)
	out := ToProductResponse(product)
	return &out, nil
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(product)
	return &out, nil
}

// Update reemplaza los campos editables del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.SKU = in.SKU
	product.Price = in.Price
	product.StockQuantity = in.StockQuantity
	product.CategoryID = in.CategoryID
	product.ImageURL = in.ImageURL
	if in.Active != nil {
		product.Active = *in.Active
	}
	now := uc.clock.Now()
	product.UpdatedDate = &now
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToProductResponse(product)
	return &out, nil
}

// UpdateStock fija la cantidad en stock.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, id int64, quantity int) (*dto.ProductResponse, error) {
	if quantity < 0 {
		return nil, invalidf("stock_quantity no puede ser negativo")
	}
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	now := uc.clock.Now()
	product.UpdatedDate = &now
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToProductResponse(product)
	return &out, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, id, ActionDeleted)
	return nil
}

// List lista productos con paginación, orden y búsqueda por nombre, descripción o SKU.
func (uc *ProductUseCase) List(ctx context.Context, page repository.PageRequest) (*dto.ProductListResponse, error) {
	page, err := normalizePage(page, repository.ProductSortFields)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: mapAll(list, ToProductResponse),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// GetActive devuelve los productos activos.
func (uc *ProductUseCase) GetActive(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToProductResponse), nil
}

// GetByCategory devuelve los productos de una categoría.
func (uc *ProductUseCase) GetByCategory(ctx context.Context, categoryID int64) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToProductResponse), nil
}

// GetLowStock devuelve los productos con stock <= threshold.
func (uc *ProductUseCase) GetLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold < 0 {
		return nil, invalidf("threshold no puede ser negativo")
	}
	list, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToProductResponse), nil
}

func (uc *ProductUseCase) find(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func (uc *ProductUseCase) changed(ctx context.Context, id int64, action ChangeAction) {
	uc.events.Publish(ctx, EntityChange{Entity: entityProduct, ID: id, Action: action, At: uc.clock.Now()})
}
