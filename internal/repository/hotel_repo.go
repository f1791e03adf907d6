package repository

import (
	"context"
	"errors"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.WithContext(ctx).Preload("Rooms").First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, cityID int64, limit, offset int) ([]domain.Hotel, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Hotel{}).Where("active = ?", true)
	if cityID > 0 {
		q = q.Where("city_id = ?", cityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}

	var hotels []domain.Hotel
	err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}
