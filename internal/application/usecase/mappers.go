package usecase

import (
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// ToCategoryResponse convierte la entidad al DTO de salida.
func ToCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		Active:           c.Active,
		CreatedDate:      c.CreatedDate,
		UpdatedDate:      c.UpdatedDate,
	}
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		Active:        p.Active,
		CreatedDate:   p.CreatedDate,
		UpdatedDate:   p.UpdatedDate,
	}
}

// ToCustomerResponse convierte la entidad al DTO de salida.
func ToCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		Country:     c.Country,
		Active:      c.Active,
		CreatedDate: c.CreatedDate,
		UpdatedDate: c.UpdatedDate,
	}
}

// ToOrderResponse convierte la entidad al DTO de salida.
func ToOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Notes:           o.Notes,
		OrderDate:       o.OrderDate,
		ShippedDate:     o.ShippedDate,
		DeliveredDate:   o.DeliveredDate,
		CreatedDate:     o.CreatedDate,
		UpdatedDate:     o.UpdatedDate,
	}
}

// ToUserResponse convierte la entidad al DTO de salida.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Enabled:       u.Enabled,
		CreatedDate:   u.CreatedDate,
		UpdatedDate:   u.UpdatedDate,
		LastLoginDate: u.LastLoginDate,
	}
}

// mapAll aplica fn a cada elemento; nunca devuelve nil (JSON "[]" en vez de "null").
func mapAll[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
