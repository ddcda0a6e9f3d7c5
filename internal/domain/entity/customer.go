package entity

import "time"

// Límites de Customer.
const (
	CustomerFirstNameMaxLength = 50
	CustomerLastNameMaxLength  = 50
	CustomerEmailMaxLength     = 100
	CustomerPhoneMaxLength     = 20
	CustomerAddressMaxLength   = 500
	CustomerLocalityMaxLength  = 100 // city, state, postal code, country
)

// Customer representa un cliente de la tienda.
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string // único
	Phone       string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	Active      bool
	CreatedDate time.Time
	UpdatedDate *time.Time
}

// FullName devuelve "Nombre Apellido".
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
