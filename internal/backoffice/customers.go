package backoffice

import (
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// CustomerSchema campos de cliente.
var CustomerSchema = Schema{
	Entity: "customer",
	Fields: []Field{
		{Name: "first_name", Label: "First Name", Kind: KindText, MaxLength: entity.CustomerFirstNameMaxLength},
		{Name: "last_name", Label: "Last Name", Kind: KindText, MaxLength: entity.CustomerLastNameMaxLength},
		{Name: "email", Label: "Email", Kind: KindText, MaxLength: entity.CustomerEmailMaxLength},
		{Name: "phone", Label: "Phone", Kind: KindText, MaxLength: entity.CustomerPhoneMaxLength},
		{Name: "address", Label: "Address", Kind: KindText, MaxLength: entity.CustomerAddressMaxLength},
		{Name: "city", Label: "City", Kind: KindText, MaxLength: entity.CustomerLocalityMaxLength},
		{Name: "state", Label: "State", Kind: KindText, MaxLength: entity.CustomerLocalityMaxLength},
		{Name: "postal_code", Label: "Postal Code", Kind: KindText, MaxLength: entity.CustomerLocalityMaxLength},
		{Name: "country", Label: "Country", Kind: KindText, MaxLength: entity.CustomerLocalityMaxLength},
		{Name: "active", Label: "Active", Kind: KindBool, Mode: UpdateOnly},
	},
}

// Customers vista de clientes.
var Customers = Entity[dto.CustomerResponse, dto.CustomerRequest]{
	Schema: CustomerSchema,
	ID:     func(c dto.CustomerResponse) int64 { return c.ID },
	Snapshot: func(c dto.CustomerResponse) Values {
		return Values{
			"first_name":  c.FirstName,
			"last_name":   c.LastName,
			"email":       c.Email,
			"phone":       c.Phone,
			"address":     c.Address,
			"city":        c.City,
			"state":       c.State,
			"postal_code": c.PostalCode,
			"country":     c.Country,
			"active":      boolText(c.Active),
		}
	},
	Bind: func(v Values) (dto.CustomerRequest, error) {
		active, err := OptionalBool(v, "active")
		if err != nil {
			return dto.CustomerRequest{}, err
		}
		return dto.CustomerRequest{
			FirstName:  v["first_name"],
			LastName:   v["last_name"],
			Email:      v["email"],
			Phone:      v["phone"],
			Address:    v["address"],
			City:       v["city"],
			State:      v["state"],
			PostalCode: v["postal_code"],
			Country:    v["country"],
			Active:     active,
		}, nil
	},
	Columns: func(_ Lookups, loc *time.Location) []Column[dto.CustomerResponse] {
		return []Column[dto.CustomerResponse]{
			{Header: "First Name", Format: func(c dto.CustomerResponse) string { return c.FirstName }},
			{Header: "Last Name", Format: func(c dto.CustomerResponse) string { return c.LastName }},
			{Header: "Email", Format: func(c dto.CustomerResponse) string { return c.Email }},
			{Header: "Phone", Format: func(c dto.CustomerResponse) string { return c.Phone }},
			{Header: "City", Format: func(c dto.CustomerResponse) string { return c.City }},
			{Header: "State", Format: func(c dto.CustomerResponse) string { return c.State }},
			{Header: "Active", Format: func(c dto.CustomerResponse) string { return FormatBool(c.Active) }},
			{Header: "Created Date", Format: func(c dto.CustomerResponse) string { return FormatDateTime(c.CreatedDate, loc) }},
		}
	},
	Effects: DefaultEffects(LookupCustomers),
}
