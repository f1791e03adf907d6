package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type PricingMode string

const (
	PricingPerBooking PricingMode = "per_booking"
	PricingPercentage PricingMode = "percentage"
	PricingFixed      PricingMode = "fixed_amount"
)

// ItineraryDay, PackItem and Highlight are embedded JSON records owned by
// their parent Package; they have no identity outside of it.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type PackItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Package is a sellable travel product assembled in the admin dashboard.
// List-valued sub-entities are serialized into jsonb columns.
type Package struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title" validate:"required"`
	TitleAr    string      `json:"title_ar" gorm:"column:title_ar"`
	Overview   string      `json:"overview" gorm:"type:text"`
	OverviewAr string      `json:"overview_ar" gorm:"column:overview_ar;type:text"`
	Price      float64     `json:"price" validate:"gte=0"`
	Discount   float64     `json:"discount"`
	Pricing    PricingMode `json:"pricing_mode" gorm:"column:pricing_mode;type:varchar(20);default:per_booking"`
	Currency   string      `json:"currency" gorm:"type:varchar(3);default:USD"`

	DurationDays *int `json:"duration_days,omitempty" gorm:"column:duration_days"`

	CountryID     *int64 `json:"country_id,omitempty"`
	CityID        *int64 `json:"city_id,omitempty"`
	DestinationID *int64 `json:"destination_id,omitempty"`
	CategoryID    *int64 `json:"category_id,omitempty"`
	TourID        *int64 `json:"tour_id,omitempty"`

	AdultCount    int `json:"adult_count" gorm:"column:adult_count"`
	ChildrenCount int `json:"children_count" gorm:"column:children_count"`
	InfantCount   int `json:"infant_count" gorm:"column:infant_count"`

	StartDate *time.Time `json:"start_date,omitempty" gorm:"column:start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" gorm:"column:end_date"`

	MainImage string         `json:"main_image"`
	Gallery   datatypes.JSON `json:"gallery,omitempty" gorm:"type:jsonb"`

	ItineraryDays    datatypes.JSON `json:"itinerary_days,omitempty" gorm:"column:itinerary_days;type:jsonb"`
	IncludedFeatures datatypes.JSON `json:"included_features,omitempty" gorm:"column:included_features;type:jsonb"`
	ExcludedItems    datatypes.JSON `json:"excluded_items,omitempty" gorm:"column:excluded_items;type:jsonb"`
	PackItems        datatypes.JSON `json:"pack_items,omitempty" gorm:"column:pack_items;type:jsonb"`
	Highlights       datatypes.JSON `json:"highlights,omitempty" gorm:"type:jsonb"`
	TravelRoute      datatypes.JSON `json:"travel_route,omitempty" gorm:"column:travel_route;type:jsonb"`
	TravelerTypes    datatypes.JSON `json:"traveler_types,omitempty" gorm:"column:traveler_types;type:jsonb"`

	HotelIDs        datatypes.JSON `json:"hotel_ids,omitempty" gorm:"column:hotel_ids;type:jsonb"`
	SelectedRoomIDs datatypes.JSON `json:"selected_room_ids,omitempty" gorm:"column:selected_room_ids;type:jsonb"`

	Featured  bool      `json:"featured"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Country     *Country         `json:"country,omitempty" gorm:"foreignKey:CountryID"`
	City        *City            `json:"city,omitempty" gorm:"foreignKey:CityID"`
	Destination *Destination     `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	Category    *PackageCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tour        *Tour            `json:"tour,omitempty" gorm:"foreignKey:TourID"`
}

func (Package) TableName() string { return "packages" }

func (p *Package) SetGallery(urls []string) error {
	return setJSON(&p.Gallery, urls, len(urls) == 0)
}

func (p *Package) GetGallery() []string {
	var urls []string
	if len(p.Gallery) == 0 {
		return urls
	}
	_ = json.Unmarshal(p.Gallery, &urls)
	return urls
}

func (p *Package) SetItineraryDays(days []ItineraryDay) error {
	return setJSON(&p.ItineraryDays, days, len(days) == 0)
}

func (p *Package) SetIncludedFeatures(items []string) error {
	return setJSON(&p.IncludedFeatures, items, len(items) == 0)
}

func (p *Package) GetIncludedFeatures() []string {
	var items []string
	if len(p.IncludedFeatures) == 0 {
		return items
	}
	_ = json.Unmarshal(p.IncludedFeatures, &items)
	return items
}

func (p *Package) SetExcludedItems(items []string) error {
	return setJSON(&p.ExcludedItems, items, len(items) == 0)
}

func (p *Package) SetPackItems(items []PackItem) error {
	return setJSON(&p.PackItems, items, len(items) == 0)
}

func (p *Package) SetHighlights(items []Highlight) error {
	return setJSON(&p.Highlights, items, len(items) == 0)
}

func (p *Package) SetTravelRoute(stops []string) error {
	return setJSON(&p.TravelRoute, stops, len(stops) == 0)
}

func (p *Package) SetTravelerTypes(tags []string) error {
	return setJSON(&p.TravelerTypes, tags, len(tags) == 0)
}

func (p *Package) SetHotelIDs(ids []int64) error {
	return setJSON(&p.HotelIDs, ids, len(ids) == 0)
}

func (p *Package) GetHotelIDs() []int64 {
	var ids []int64
	if len(p.HotelIDs) == 0 {
		return ids
	}
	_ = json.Unmarshal(p.HotelIDs, &ids)
	return ids
}

func (p *Package) SetSelectedRoomIDs(ids []int64) error {
	return setJSON(&p.SelectedRoomIDs, ids, len(ids) == 0)
}

func (p *Package) GetSelectedRoomIDs() []int64 {
	var ids []int64
	if len(p.SelectedRoomIDs) == 0 {
		return ids
	}
	_ = json.Unmarshal(p.SelectedRoomIDs, &ids)
	return ids
}

func setJSON(dst *datatypes.JSON, v any, empty bool) error {
	if empty {
		*dst = nil
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	*dst = data
	return nil
}
