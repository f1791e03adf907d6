package geo

import (
	"context"

	"travelbook/internal/domain"
)

type GeoRepository interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	Cities(ctx context.Context, countryID int64) ([]domain.City, error)
	Destinations(ctx context.Context) ([]domain.Destination, error)
	PackageCategories(ctx context.Context) ([]domain.PackageCategory, error)
	TourCategories(ctx context.Context) ([]domain.TourCategory, error)
}
