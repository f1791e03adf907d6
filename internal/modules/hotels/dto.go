package hotels

type HotelForm struct {
	Name        string   `json:"name" binding:"required"`
	NameAr      string   `json:"name_ar"`
	CityID      *int64   `json:"city_id"`
	Address     string   `json:"address"`
	Stars       int      `json:"stars" binding:"gte=0,lte=5"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	MainImage   string   `json:"main_image"`
	Active      *bool    `json:"active"`
}

type RoomForm struct {
	HotelID      int64   `json:"hotel_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"gte=0"`
	MaxOccupancy *int    `json:"max_occupancy"`
	MaxAdults    *int    `json:"max_adults"`
	Capacity     *int    `json:"capacity"`
	MaxChildren  *int    `json:"max_children"`
	MaxInfants   *int    `json:"max_infants"`
	Active       *bool   `json:"active"`
}
