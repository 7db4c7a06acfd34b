package domain

// Category Model
type Category struct {
	Base
	Name        string  `gorm:"not null"`                     // Category name
	Order       int64   `gorm:"column:order_number;not null"` // Display order
	Description *string                                       // Optional description
}

// CategoryPatch lists the category fields an update may overwrite
type CategoryPatch struct {
	Name        *string
	Order       *int64
	Description *string
}

// Columns maps every supplied field to its column
func (p CategoryPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Order != nil {
		cols["order_number"] = *p.Order
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	return cols
}

// Product Model
type Product struct {
	Base
	Name       string   `gorm:"not null"`                     // Product name
	Count      int64    `gorm:"not null;default:0"`           // Units in stock
	CategoryID uint     `gorm:"index;not null"`               // Foreign key to Category
	Category   Category `gorm:"constraint:OnUpdate:CASCADE;"` // Referenced category, deletion does not cascade
}

// ProductPatch lists the product fields an update may overwrite
type ProductPatch struct {
	Name       *string
	Count      *int64
	CategoryID *uint
}

// Columns maps every supplied field to its column
func (p ProductPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Count != nil {
		cols["count"] = *p.Count
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	return cols
}
