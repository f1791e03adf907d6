package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name" validate:"required"`
	NameAr      string         `json:"name_ar" gorm:"column:name_ar"`
	CityID      *int64         `json:"city_id,omitempty"`
	Address     string         `json:"address,omitempty"`
	Stars       int            `json:"stars" validate:"gte=0,lte=5"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Amenities   datatypes.JSON `json:"amenities,omitempty" gorm:"type:jsonb"`
	MainImage   string         `json:"main_image,omitempty"`
	Active      bool           `json:"active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) SetAmenities(amenities []string) error {
	if len(amenities) == 0 {
		h.Amenities = nil
		return nil
	}
	data, err := json.Marshal(amenities)
	if err != nil {
		return err
	}
	h.Amenities = data
	return nil
}

// Room occupancy limits are intentionally nullable: legacy rows carry any one
// of max_occupancy, max_adults or capacity, and the capacity filter resolves
// them in that priority order.
type Room struct {
	ID           int64     `json:"id"`
	HotelID      int64     `json:"hotel_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Price        float64   `json:"price" validate:"gte=0"`
	MaxOccupancy *int      `json:"max_occupancy,omitempty" gorm:"column:max_occupancy"`
	MaxAdults    *int      `json:"max_adults,omitempty" gorm:"column:max_adults"`
	Capacity     *int      `json:"capacity,omitempty"`
	MaxChildren  *int      `json:"max_children,omitempty" gorm:"column:max_children"`
	MaxInfants   *int      `json:"max_infants,omitempty" gorm:"column:max_infants"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
