package domain

import "time"

type Country struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	NameAr    string    `json:"name_ar" gorm:"column:name_ar"`
	Code      string    `json:"code" gorm:"type:varchar(2);uniqueIndex"`
	Currency  string    `json:"currency" gorm:"type:varchar(3)"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type City struct {
	ID        int64     `json:"id"`
	CountryID int64     `json:"country_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	NameAr    string    `json:"name_ar" gorm:"column:name_ar"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Country *Country `json:"country,omitempty" gorm:"foreignKey:CountryID"`
}

// Destination is a marketing grouping (e.g. "Upper Egypt") packages can point at.
type Destination struct {
	ID            int64     `json:"id"`
	CountryID     *int64    `json:"country_id,omitempty"`
	CityID        *int64    `json:"city_id,omitempty"`
	Name          string    `json:"name" validate:"required"`
	NameAr        string    `json:"name_ar" gorm:"column:name_ar"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	DescriptionAr string    `json:"description_ar,omitempty" gorm:"column:description_ar;type:text"`
	ImageURL      string    `json:"image_url,omitempty"`
	Featured      bool      `json:"featured"`
	Active        bool      `json:"active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PackageCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	NameAr      string    `json:"name_ar" gorm:"column:name_ar"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TourCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	NameAr    string    `json:"name_ar" gorm:"column:name_ar"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
