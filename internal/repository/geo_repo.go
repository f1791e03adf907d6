package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

// GeoRepository serves the reference lists the admin form pulls on load:
// countries, cities, destinations and categories.
type GeoRepository struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) *GeoRepository {
	return &GeoRepository{db: db}
}

func (r *GeoRepository) Countries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&countries).Error
	return countries, err
}

func (r *GeoRepository) Cities(ctx context.Context, countryID int64) ([]domain.City, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if countryID > 0 {
		q = q.Where("country_id = ?", countryID)
	}
	var cities []domain.City
	err := q.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *GeoRepository) Destinations(ctx context.Context) ([]domain.Destination, error) {
	var destinations []domain.Destination
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&destinations).Error
	return destinations, err
}

func (r *GeoRepository) PackageCategories(ctx context.Context) ([]domain.PackageCategory, error) {
	var categories []domain.PackageCategory
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *GeoRepository) TourCategories(ctx context.Context) ([]domain.TourCategory, error) {
	var categories []domain.TourCategory
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}
