package property

import (
	"strings"

	"gorm.io/gorm"
)

// Filter holds the optional list-query parameters. Absent fields impose no
// constraint; present ones AND together.
type Filter struct {
	PropertyType string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	City         string
}

// Apply narrows q to the rows matching every present constraint. City is a
// case-insensitive substring match.
func (f Filter) Apply(q *gorm.DB) *gorm.DB {
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(f.City)+"%")
	}
	return q
}
