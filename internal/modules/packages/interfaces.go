package packages

import (
	"context"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/repository"
)

// PackageRepository defines the persistence operations the service needs.
type PackageRepository interface {
	Create(ctx context.Context, p *domain.Package) error
	Update(ctx context.Context, p *domain.Package) error
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	List(ctx context.Context, f repository.PackageFilters) ([]domain.Package, int64, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository provides the room inventory for the capacity filter.
type RoomRepository interface {
	ListByHotelIDs(ctx context.Context, hotelIDs []int64) ([]domain.Room, error)
}

// ListCache caches the public package list; a nil implementation is valid.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
