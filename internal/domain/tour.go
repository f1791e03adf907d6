package domain

import (
	"time"

	"gorm.io/datatypes"
)

type DurationUnit string

const (
	DurationDays  DurationUnit = "days"
	DurationHours DurationUnit = "hours"
)

// Tour is a bookable activity, priced and versioned in English/Arabic.
// A Package may reference a Tour by ID but does not own it.
type Tour struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name" validate:"required"`
	NameAr        string         `json:"name_ar" gorm:"column:name_ar"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	DescriptionAr string         `json:"description_ar,omitempty" gorm:"column:description_ar;type:text"`
	Price         float64        `json:"price" validate:"gte=0"`
	Discount      float64        `json:"discount"`
	Currency      string         `json:"currency" gorm:"type:varchar(3);default:USD"`
	Duration      int            `json:"duration" validate:"gt=0"`
	DurationUnit  DurationUnit   `json:"duration_unit" gorm:"type:varchar(10);default:days"`
	Capacity      int            `json:"capacity"`
	CategoryID    *int64         `json:"category_id,omitempty"`
	CityID        *int64         `json:"city_id,omitempty"`
	Gallery       datatypes.JSON `json:"gallery,omitempty" gorm:"type:jsonb"`
	Featured      bool           `json:"featured"`
	Active        bool           `json:"active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	Category *TourCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
