package tours

import (
	"context"

	"travelbook/internal/domain"
	"travelbook/internal/repository"
)

type TourRepository interface {
	Create(ctx context.Context, t *domain.Tour) error
	Update(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	List(ctx context.Context, f repository.TourFilters) ([]domain.Tour, int64, error)
	Delete(ctx context.Context, id int64) error
}
