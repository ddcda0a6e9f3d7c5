package backoffice

import (
	"time"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
)

// CategorySchema campos de categoría. El padre no puede ser la categoría editada.
var CategorySchema = Schema{
	Entity: "category",
	Fields: []Field{
		{Name: "name", Label: "Category Name", Kind: KindText, MaxLength: entity.CategoryNameMaxLength},
		{Name: "description", Label: "Description", Kind: KindText, MaxLength: entity.CategoryDescriptionMaxLength},
		{Name: "parent_category_id", Label: "Parent Category", Kind: KindReference, Lookup: LookupCategories, ExcludeSelf: true},
		{Name: "active", Label: "Active", Kind: KindBool, Mode: UpdateOnly},
	},
}

// Categories vista de categorías.
var Categories = Entity[dto.CategoryResponse, dto.CategoryRequest]{
	Schema: CategorySchema,
	ID:     func(c dto.CategoryResponse) int64 { return c.ID },
	Snapshot: func(c dto.CategoryResponse) Values {
		return Values{
			"name":               c.Name,
			"description":        c.Description,
			"parent_category_id": idText(c.ParentCategoryID),
			"active":             boolText(c.Active),
		}
	},
	Bind: func(v Values) (dto.CategoryRequest, error) {
		parent, err := Reference(v["parent_category_id"])
		if err != nil {
			return dto.CategoryRequest{}, err
		}
		active, err := OptionalBool(v, "active")
		if err != nil {
			return dto.CategoryRequest{}, err
		}
		return dto.CategoryRequest{Name: v["name"], Description: v["description"], ParentCategoryID: parent, Active: active}, nil
	},
	Columns: func(lookups Lookups, loc *time.Location) []Column[dto.CategoryResponse] {
		return []Column[dto.CategoryResponse]{
			{Header: "Category Name", Format: func(c dto.CategoryResponse) string { return c.Name }},
			{Header: "Description", Format: func(c dto.CategoryResponse) string { return c.Description }},
			{Header: "Parent Category", Format: func(c dto.CategoryResponse) string {
				return labelIn(lookups, LookupCategories, c.ParentCategoryID)
			}},
			{Header: "Active", Format: func(c dto.CategoryResponse) string { return FormatBool(c.Active) }},
			{Header: "Created Date", Format: func(c dto.CategoryResponse) string { return FormatDateTime(c.CreatedDate, loc) }},
		}
	},
	Lookups: []string{LookupCategories},
	Effects: DefaultEffects(LookupCategories),
}
