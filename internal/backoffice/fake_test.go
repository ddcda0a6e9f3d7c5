package backoffice_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
)

var testNow = time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

// fakeCategories gateway de categorías en memoria que registra cada llamada.
type fakeCategories struct {
	mu         sync.Mutex
	calls      []string
	items      []dto.CategoryResponse
	nextID     int64
	failCreate error
	failUpdate error
	failDelete error
	failList   error
	failActive error
}

var (
	_ backoffice.Gateway[dto.CategoryResponse, dto.CategoryRequest] = (*fakeCategories)(nil)
	_ backoffice.CategoryDirectory                                  = (*fakeCategories)(nil)
)

func (f *fakeCategories) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeCategories) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeCategories) seed(names ...string) {
	for _, name := range names {
		_, _ = f.Create(context.Background(), dto.CategoryRequest{Name: name})
	}
	f.mu.Lock()
	f.calls = nil
	f.mu.Unlock()
}

func (f *fakeCategories) List(_ context.Context, q backoffice.PageQuery) (backoffice.Page[dto.CategoryResponse], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	if f.failList != nil {
		return backoffice.Page[dto.CategoryResponse]{}, f.failList
	}
	size := q.Size
	if size <= 0 {
		size = 20
	}
	start := min(q.Page*size, len(f.items))
	end := min(start+size, len(f.items))
	return backoffice.Page[dto.CategoryResponse]{
		Items: slices.Clone(f.items[start:end]),
		Page:  q.Page,
		Size:  size,
		Total: len(f.items),
	}, nil
}

func (f *fakeCategories) Create(_ context.Context, in dto.CategoryRequest) (dto.CategoryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create")
	if f.failCreate != nil {
		return dto.CategoryResponse{}, f.failCreate
	}
	f.nextID++
	c := dto.CategoryResponse{
		ID:               f.nextID,
		Name:             in.Name,
		Description:      in.Description,
		ParentCategoryID: in.ParentCategoryID,
		Active:           true,
		CreatedDate:      testNow,
	}
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCategories) Update(_ context.Context, id int64, in dto.CategoryRequest) (dto.CategoryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("update %d", id))
	if f.failUpdate != nil {
		return dto.CategoryResponse{}, f.failUpdate
	}
	i := f.index(id)
	if i < 0 {
		return dto.CategoryResponse{}, domain.ErrNotFound
	}
	c := f.items[i]
	c.Name, c.Description, c.ParentCategoryID = in.Name, in.Description, in.ParentCategoryID
	if in.Active != nil {
		c.Active = *in.Active
	}
	updated := testNow.Add(time.Hour)
	c.UpdatedDate = &updated
	f.items[i] = c
	return c, nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("delete %d", id))
	if f.failDelete != nil {
		return f.failDelete
	}
	i := f.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	f.items = slices.Delete(f.items, i, i+1)
	return nil
}

func (f *fakeCategories) ActiveCategories(context.Context) ([]dto.CategoryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("active")
	if f.failActive != nil {
		return nil, f.failActive
	}
	var out []dto.CategoryResponse
	for _, c := range f.items {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) index(id int64) int {
	return slices.IndexFunc(f.items, func(c dto.CategoryResponse) bool { return c.ID == id })
}

// fakeCustomers gateway de clientes en memoria; cuenta las consultas de activos.
type fakeCustomers struct {
	mu            sync.Mutex
	items         []dto.CustomerResponse
	nextID        int64
	activeFetches int
}

var (
	_ backoffice.Gateway[dto.CustomerResponse, dto.CustomerRequest] = (*fakeCustomers)(nil)
	_ backoffice.CustomerDirectory                                  = (*fakeCustomers)(nil)
)

func (f *fakeCustomers) List(_ context.Context, q backoffice.PageQuery) (backoffice.Page[dto.CustomerResponse], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return backoffice.Page[dto.CustomerResponse]{Items: slices.Clone(f.items), Page: q.Page, Size: q.Size, Total: len(f.items)}, nil
}

func (f *fakeCustomers) Create(_ context.Context, in dto.CustomerRequest) (dto.CustomerResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c := dto.CustomerResponse{
		ID:          f.nextID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Active:      true,
		CreatedDate: testNow,
	}
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCustomers) Update(_ context.Context, id int64, in dto.CustomerRequest) (dto.CustomerResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.items, func(c dto.CustomerResponse) bool { return c.ID == id })
	if i < 0 {
		return dto.CustomerResponse{}, domain.ErrNotFound
	}
	c := f.items[i]
	c.FirstName, c.LastName, c.Email = in.FirstName, in.LastName, in.Email
	if in.Active != nil {
		c.Active = *in.Active
	}
	f.items[i] = c
	return c, nil
}

func (f *fakeCustomers) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.items, func(c dto.CustomerResponse) bool { return c.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	f.items = slices.Delete(f.items, i, i+1)
	return nil
}

func (f *fakeCustomers) ActiveCustomers(context.Context) ([]dto.CustomerResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeFetches++
	var out []dto.CustomerResponse
	for _, c := range f.items {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomers) ActiveFetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeFetches
}

// fakeOrders solo lista; las mutaciones no se usan en estos tests.
type fakeOrders struct {
	items []dto.OrderResponse
}

func (f *fakeOrders) List(_ context.Context, q backoffice.PageQuery) (backoffice.Page[dto.OrderResponse], error) {
	return backoffice.Page[dto.OrderResponse]{Items: slices.Clone(f.items), Page: q.Page, Size: q.Size, Total: len(f.items)}, nil
}

func (f *fakeOrders) Create(context.Context, dto.OrderRequest) (dto.OrderResponse, error) {
	return dto.OrderResponse{}, domain.ErrInvalidInput
}

func (f *fakeOrders) Update(context.Context, int64, dto.OrderRequest) (dto.OrderResponse, error) {
	return dto.OrderResponse{}, domain.ErrInvalidInput
}

func (f *fakeOrders) Delete(context.Context, int64) error {
	return domain.ErrInvalidInput
}
