package tours

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	tours TourRepository
}

func NewService(tours TourRepository) *Service {
	return &Service{tours: tours}
}

func (s *Service) Create(ctx context.Context, form TourForm) (*domain.Tour, error) {
	t, err := s.fromForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.tours.Create(ctx, t); err != nil {
		return nil, mapRepoError(err)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, form TourForm) (*domain.Tour, error) {
	t, err := s.fromForm(form)
	if err != nil {
		return nil, err
	}
	t.ID = id

	if err := s.tours.Update(ctx, t); err != nil {
		return nil, mapRepoError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	t, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, f repository.TourFilters) (*ListResponse, error) {
	items, total, err := s.tours.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListResponse{Tours: items, Total: total}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.tours.Delete(ctx, id))
}

func (s *Service) fromForm(form TourForm) (*domain.Tour, error) {
	unit := domain.DurationUnit(strings.TrimSpace(form.DurationUnit))
	switch unit {
	case domain.DurationDays, domain.DurationHours:
	case "":
		unit = domain.DurationDays
	default:
		return nil, ErrValidation
	}

	currency := strings.ToUpper(strings.TrimSpace(form.Currency))
	if currency == "" {
		currency = "USD"
	}

	t := &domain.Tour{
		Name:          strings.TrimSpace(form.Name),
		NameAr:        strings.TrimSpace(form.NameAr),
		Description:   form.Description,
		DescriptionAr: form.DescriptionAr,
		Price:         form.Price,
		Discount:      form.Discount,
		Currency:      currency,
		Duration:      form.Duration,
		DurationUnit:  unit,
		Capacity:      form.Capacity,
		CategoryID:    form.CategoryID,
		CityID:        form.CityID,
		Featured:      form.Featured,
		Active:        form.Active == nil || *form.Active,
	}

	if len(form.Gallery) > 0 {
		data, err := json.Marshal(form.Gallery)
		if err != nil {
			return nil, err
		}
		t.Gallery = data
	}

	return t, nil
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrBadReference
	}
	return err
}
