package packages

import "travelbook/internal/domain"

// PackageForm is the raw admin-form payload. Numeric and date fields arrive as
// strings exactly as typed; the normalizer coerces them and the validation
// pipeline reports what failed. Structured sub-lists arrive as typed arrays,
// free-text lists as either arrays or newline-delimited text (see ListField).
type PackageForm struct {
	ID int64 `json:"id,omitempty"`

	Title      string `json:"title"`
	TitleAr    string `json:"title_ar"`
	Overview   string `json:"overview"`
	OverviewAr string `json:"overview_ar"`

	Price        string `json:"price"`
	Discount     string `json:"discount"`
	PricingMode  string `json:"pricing_mode"`
	Currency     string `json:"currency"`
	DurationDays string `json:"duration_days"`

	CountryID     *int64 `json:"country_id"`
	CityID        *int64 `json:"city_id"`
	DestinationID *int64 `json:"destination_id"`
	CategoryID    *int64 `json:"category_id"`
	TourID        *int64 `json:"tour_id"`

	AdultCount    string `json:"adult_count"`
	ChildrenCount string `json:"children_count"`
	InfantCount   string `json:"infant_count"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	MainImage       string   `json:"main_image"`
	Gallery         []string `json:"gallery"`
	ExistingGallery []string `json:"existing_gallery"`

	IncludedFeatures ListField `json:"included_features"`
	ExcludedItems    ListField `json:"excluded_items"`
	TravelRoute      ListField `json:"travel_route"`
	TravelerTypes    ListField `json:"traveler_types"`

	ItineraryDays []domain.ItineraryDay `json:"itinerary_days"`
	PackItems     []domain.PackItem     `json:"pack_items"`
	Highlights    []domain.Highlight    `json:"highlights"`

	HotelIDs        []int64 `json:"hotel_ids"`
	SelectedRoomIDs []int64 `json:"selected_room_ids"`

	Featured bool  `json:"featured"`
	Active   *bool `json:"active"`
}

type EligibleRoomsRequest struct {
	HotelIDs        []int64 `json:"hotel_ids" binding:"required"`
	AdultCount      int     `json:"adult_count"`
	ChildrenCount   int     `json:"children_count"`
	InfantCount     int     `json:"infant_count"`
	SelectedRoomIDs []int64 `json:"selected_room_ids"`
}

type EligibleRoomsResponse struct {
	Rooms          []domain.Room `json:"rooms"`
	KeptSelection  []int64       `json:"kept_selection"`
	RemovedRoomIDs []int64       `json:"removed_room_ids"`
}
