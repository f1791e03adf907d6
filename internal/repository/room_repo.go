package repository

import (
	"context"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) ListByHotelIDs(ctx context.Context, hotelIDs []int64) ([]domain.Room, error) {
	if len(hotelIDs) == 0 {
		return []domain.Room{}, nil
	}
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id IN ? AND active = ?", hotelIDs, true).
		Order("hotel_id ASC, price ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) List(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Room, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{}).Where("active = ?", true)
	if hotelID > 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 100
	}

	var rooms []domain.Room
	err := q.Order("hotel_id ASC, price ASC").Limit(limit).Offset(offset).Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}
