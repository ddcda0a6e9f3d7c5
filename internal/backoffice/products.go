package backoffice

import (
	"math"
	"strconv"
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// ProductSchema campos de producto.
var ProductSchema = Schema{
	Entity: "product",
	Fields: []Field{
		{Name: "name", Label: "Product Name", Kind: KindText, MaxLength: entity.ProductNameMaxLength},
		{Name: "description", Label: "Description", Kind: KindText, MaxLength: entity.ProductDescriptionMaxLength},
		{Name: "sku", Label: "SKU", Kind: KindText, MaxLength: entity.ProductSKUMaxLength},
		{Name: "price", Label: "Price", Kind: KindDecimal, Min: bound(0), Scale: 2},
		{Name: "stock_quantity", Label: "Stock Quantity", Kind: KindNumber, Min: bound(0), Max: bound(math.MaxInt32)},
		{Name: "category_id", Label: "Category", Kind: KindReference, Lookup: LookupCategories},
		{Name: "image_url", Label: "Image URL", Kind: KindText, MaxLength: entity.ProductImageURLMaxLength},
		{Name: "active", Label: "Active", Kind: KindBool, Mode: UpdateOnly},
	},
}

// Products vista de productos.
var Products = Entity[dto.ProductResponse, dto.ProductRequest]{
	Schema: ProductSchema,
	ID:     func(p dto.ProductResponse) int64 { return p.ID },
	Snapshot: func(p dto.ProductResponse) Values {
		return Values{
			"name":           p.Name,
			"description":    p.Description,
			"sku":            p.SKU,
			"price":          p.Price.StringFixed(2),
			"stock_quantity": strconv.Itoa(p.StockQuantity),
			"category_id":    idText(p.CategoryID),
			"image_url":      p.ImageURL,
			"active":         boolText(p.Active),
		}
	},
	Bind: func(v Values) (dto.ProductRequest, error) {
		var out dto.ProductRequest
		var err error
		if out.Price, err = Decimal(v["price"]); err != nil {
			return out, err
		}
		if out.StockQuantity, err = Int(v["stock_quantity"]); err != nil {
			return out, err
		}
		if out.CategoryID, err = Reference(v["category_id"]); err != nil {
			return out, err
		}
		if out.Active, err = OptionalBool(v, "active"); err != nil {
			return out, err
		}
		out.Name, out.Description, out.SKU, out.ImageURL = v["name"], v["description"], v["sku"], v["image_url"]
		return out, nil
	},
	Columns: func(lookups Lookups, loc *time.Location) []Column[dto.ProductResponse] {
		return []Column[dto.ProductResponse]{
			{Header: "Product Name", Format: func(p dto.ProductResponse) string { return p.Name }},
			{Header: "SKU", Format: func(p dto.ProductResponse) string { return p.SKU }},
			{Header: "Price", Format: func(p dto.ProductResponse) string { return FormatCurrency(p.Price) }},
			{Header: "Stock", Format: func(p dto.ProductResponse) string { return strconv.Itoa(p.StockQuantity) }},
			{Header: "Category", Format: func(p dto.ProductResponse) string {
				return labelIn(lookups, LookupCategories, p.CategoryID)
			}},
			{Header: "Active", Format: func(p dto.ProductResponse) string { return FormatBool(p.Active) }},
			{Header: "Created Date", Format: func(p dto.ProductResponse) string { return FormatDateTime(p.CreatedDate, loc) }},
		}
	},
	Lookups: []string{LookupCategories},
	Effects: DefaultEffects(),
}
