package tours

import "travelbook/internal/domain"

type TourForm struct {
	Name          string   `json:"name" binding:"required"`
	NameAr        string   `json:"name_ar"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Discount      float64  `json:"discount" binding:"gte=0"`
	Currency      string   `json:"currency"`
	Duration      int      `json:"duration" binding:"required,gt=0"`
	DurationUnit  string   `json:"duration_unit"`
	Capacity      int      `json:"capacity" binding:"gte=0"`
	CategoryID    *int64   `json:"category_id"`
	CityID        *int64   `json:"city_id"`
	Gallery       []string `json:"gallery"`
	Featured      bool     `json:"featured"`
	Active        *bool    `json:"active"`
}

type ListResponse struct {
	Tours []domain.Tour `json:"tours"`
	Total int64         `json:"total"`
}
