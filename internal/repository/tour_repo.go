package repository

import (
	"context"
	"errors"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type TourFilters struct {
	CategoryID int64
	CityID     int64
	Active     *bool
	Limit      int
	Offset     int
}

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	tx := r.db.WithContext(ctx).Model(&domain.Tour{}).
		Where("id = ?", t.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(t)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var t domain.Tour
	err := r.db.WithContext(ctx).Preload("Category").First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TourRepository) List(ctx context.Context, f TourFilters) ([]domain.Tour, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Tour{})

	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.CityID > 0 {
		q = q.Where("city_id = ?", f.CityID)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}

	var tours []domain.Tour
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&tours).Error
	if err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Tour{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
