package dto

import "time"

// CustomerRequest entrada para crear o actualizar un cliente. Active solo aplica al actualizar.
type CustomerRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Active     *bool  `json:"active,omitempty"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PostalCode  string     `json:"postal_code"`
	Country     string     `json:"country"`
	Active      bool       `json:"active"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date"`
}

// FullName nombre completo para listas de selección.
func (c CustomerResponse) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse = ListResponse[CustomerResponse]
