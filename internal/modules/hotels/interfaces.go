package hotels

import (
	"context"

	"travelbook/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, cityID int64, limit, offset int) ([]domain.Hotel, int64, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	List(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Room, int64, error)
}
