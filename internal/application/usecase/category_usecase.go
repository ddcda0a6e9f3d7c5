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

const entityCategory = "category"

// maxCategoryDepth corta el recorrido de la cadena de padres ante datos corruptos.
const maxCategoryDepth = 1000

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	clock  clock.Clock
	cache  LookupCache
	events ChangePublisher
}

// NewCategoryUseCase construye el caso de uso. cache y events pueden ser nil.
func NewCategoryUseCase(repo repository.CategoryRepository, clk clock.Clock, cache LookupCache, events ChangePublisher) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, clock: clk, cache: cacheOrNop(cache), events: publisherOrNop(events)}
}

func validateCategory(in dto.CategoryRequest) error {
	return firstErr(
		checkText("name", in.Name, entity.CategoryNameMaxLength, true),
		checkText("description", in.Description, entity.CategoryDescriptionMaxLength, false),
	)
}

// Create crea una categoría activa. El nombre es único y el padre, si se indica, debe existir.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ParentCategoryID != nil {
		parent, err := uc.repo.GetByID(ctx, *in.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, invalidf("la categoría padre %d no existe", *in.ParentCategoryID)
		}
	}
	category := &entity.Category{
		Name:             in.Name,
		Description:      in.Description,
		ParentCategoryID: in.ParentCategoryID,
		Active:           true,
		CreatedDate:      uc.clock.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.changed(ctx, category.ID, ActionCreated)
	out := ToCategoryResponse(category)
	return &out, nil
}

// Get obtiene una categoría por ID.
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToCategoryResponse(category)
	return &out, nil
}

// Update reemplaza los campos editables. Rechaza ciclos en la jerarquía (incluido ser su propio padre).
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategory(in); err != nil {
		return nil, err
	}
	category, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	other, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	if in.ParentCategoryID != nil {
		if err := uc.checkParent(ctx, id, *in.ParentCategoryID); err != nil {
			return nil, err
		}
	}
	category.Name = in.Name
	category.Description = in.Description
	category.ParentCategoryID = in.ParentCategoryID
	if in.Active != nil {
		category.Active = *in.Active
	}
	now := uc.clock.Now()
	category.UpdatedDate = &now
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.changed(ctx, id, ActionUpdated)
	out := ToCategoryResponse(category)
	return &out, nil
}

// checkParent verifica que parentID exista y que asignarlo a id no cierre un ciclo.
func (uc *CategoryUseCase) checkParent(ctx context.Context, id, parentID int64) error {
	if parentID == id {
		return invalidf("una categoría no puede ser su propio padre")
	}
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		node, err := uc.repo.GetByID(ctx, current)
		if err != nil {
			return err
		}
		if node == nil {
			if current == parentID {
				return invalidf("la categoría padre %d no existe", parentID)
			}
			return nil
		}
		if node.ParentCategoryID == nil {
			return nil
		}
		if *node.ParentCategoryID == id {
			return invalidf("la categoría %d generaría un ciclo en la jerarquía", parentID)
		}
		current = *node.ParentCategoryID
	}
	return invalidf("jerarquía de categorías demasiado profunda")
}

// Delete elimina físicamente la categoría. Las referencias de productos o subcategorías quedan colgando.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.changed(ctx, id, ActionDeleted)
	return nil
}

// List lista categorías con paginación, orden y búsqueda por nombre o descripción.
func (uc *CategoryUseCase) List(ctx context.Context, page repository.PageRequest) (*dto.CategoryListResponse, error) {
	page, err := normalizePage(page, repository.CategorySortFields)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryListResponse{
		Items: mapAll(list, ToCategoryResponse),
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// GetActive devuelve las categorías activas (lista de lookup, con caché).
func (uc *CategoryUseCase) GetActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	var cached []dto.CategoryResponse
	if uc.cache.Get(ctx, CacheKeyActiveCategories, &cached) {
		return cached, nil
	}
	version, verr := uc.cache.Version(ctx, CacheKeyActiveCategories)
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := mapAll(list, ToCategoryResponse)
	if verr == nil {
		_ = uc.cache.SetIfVersion(ctx, CacheKeyActiveCategories, out, version)
	}
	return out, nil
}

// GetSubcategories devuelve las categorías hijas directas de parentID.
func (uc *CategoryUseCase) GetSubcategories(ctx context.Context, parentID int64) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, ToCategoryResponse), nil
}

func (uc *CategoryUseCase) find(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

func (uc *CategoryUseCase) changed(ctx context.Context, id int64, action ChangeAction) {
	_ = uc.cache.Invalidate(ctx, CacheKeyActiveCategories)
	uc.events.Publish(ctx, EntityChange{Entity: entityCategory, ID: id, Action: action, At: uc.clock.Now()})
}
