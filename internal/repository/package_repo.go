package repository

import (
	"context"
	"errors"

	"travelbook/internal/domain"

	"gorm.io/gorm"
)

type PackageFilters struct {
	CountryID  int64
	CityID     int64
	CategoryID int64
	Featured   *bool
	Active     *bool
	Limit      int
	Offset     int
}

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update writes the full record. Optional numeric columns are pointers on the
// model, so nil means NULL rather than "skip column".
func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	tx := r.db.WithContext(ctx).Model(&domain.Package{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(p)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	var p domain.Package
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Destination").
		Preload("Category").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DefaultPageSize is the page size applied when a list request does not ask
// for one. The package list cache only serves requests at this size, so the
// handler default, the repository fallback, and the cache predicate share it.
const DefaultPageSize = 20

func (r *PackageRepository) List(ctx context.Context, f PackageFilters) ([]domain.Package, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Package{})

	if f.CountryID > 0 {
		q = q.Where("country_id = ?", f.CountryID)
	}
	if f.CityID > 0 {
		q = q.Where("city_id = ?", f.CityID)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}

	var packages []domain.Package
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&packages).Error
	if err != nil {
		return nil, 0, err
	}
	return packages, total, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Package{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
