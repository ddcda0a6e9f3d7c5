package backoffice

import (
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// OrderStatuses estados seleccionables en la vista. El backend acepta además CONFIRMED.
var OrderStatuses = []string{
	string(entity.OrderPending),
	string(entity.OrderProcessing),
	string(entity.OrderShipped),
	string(entity.OrderDelivered),
	string(entity.OrderCancelled),
}

// OrderSchema campos de pedido. Cliente y total solo se fijan al crear; el estado solo al editar.
var OrderSchema = Schema{
	Entity: "order",
	Fields: []Field{
		{Name: "customer_id", Label: "Customer", Kind: KindReference, Mode: CreateOnly, Lookup: LookupCustomers},
		{Name: "total_amount", Label: "Total Amount", Kind: KindDecimal, Mode: CreateOnly, Min: bound(0), Scale: 2},
		{Name: "status", Label: "Status", Kind: KindEnum, Mode: UpdateOnly, Options: OrderStatuses},
		{Name: "shipping_address", Label: "Shipping Address", Kind: KindText, MaxLength: entity.OrderAddressMaxLength},
		{Name: "billing_address", Label: "Billing Address", Kind: KindText, MaxLength: entity.OrderAddressMaxLength},
		{Name: "notes", Label: "Notes", Kind: KindText, MaxLength: entity.OrderNotesMaxLength},
	},
}

// Orders vista de pedidos.
var Orders = Entity[dto.OrderResponse, dto.OrderRequest]{
	Schema: OrderSchema,
	ID:     func(o dto.OrderResponse) int64 { return o.ID },
	Snapshot: func(o dto.OrderResponse) Values {
		return Values{
			"status":           o.Status,
			"shipping_address": o.ShippingAddress,
			"billing_address":  o.BillingAddress,
			"notes":            o.Notes,
		}
	},
	Bind: func(v Values) (dto.OrderRequest, error) {
		var out dto.OrderRequest
		var err error
		if out.CustomerID, err = Reference(v["customer_id"]); err != nil {
			return out, err
		}
		if out.TotalAmount, err = Decimal(v["total_amount"]); err != nil {
			return out, err
		}
		out.Status = v["status"]
		out.ShippingAddress, out.BillingAddress, out.Notes = v["shipping_address"], v["billing_address"], v["notes"]
		return out, nil
	},
	Columns: func(lookups Lookups, loc *time.Location) []Column[dto.OrderResponse] {
		dash := func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return FormatDateTime(*t, loc)
		}
		return []Column[dto.OrderResponse]{
			{Header: "Order #", Format: func(o dto.OrderResponse) string { return o.OrderNumber }},
			{Header: "Customer", Format: func(o dto.OrderResponse) string {
				return labelIn(lookups, LookupCustomers, &o.CustomerID)
			}},
			{Header: "Amount", Format: func(o dto.OrderResponse) string { return FormatCurrency(o.TotalAmount) }},
			{Header: "Status", Format: func(o dto.OrderResponse) string { return o.Status }},
			{Header: "Order Date", Format: func(o dto.OrderResponse) string { return FormatDateTime(o.OrderDate, loc) }},
			{Header: "Shipped Date", Format: func(o dto.OrderResponse) string { return dash(o.ShippedDate) }},
			{Header: "Delivered Date", Format: func(o dto.OrderResponse) string { return dash(o.DeliveredDate) }},
		}
	},
	Lookups: []string{LookupCustomers},
	Effects: DefaultEffects(),
}
