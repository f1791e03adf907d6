package hotels

import (
	"context"
	"strings"

	"travelbook/internal/domain"
	"travelbook/internal/pkg/validator"
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

func (s *Service) ListHotels(ctx context.Context, cityID int64, limit, offset int) ([]domain.Hotel, int64, error) {
	return s.hotels.List(ctx, cityID, limit, offset)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *Service) CreateHotel(ctx context.Context, form HotelForm) (*domain.Hotel, error) {
	h := &domain.Hotel{
		Name:        strings.TrimSpace(form.Name),
		NameAr:      strings.TrimSpace(form.NameAr),
		CityID:      form.CityID,
		Address:     strings.TrimSpace(form.Address),
		Stars:       form.Stars,
		Description: form.Description,
		MainImage:   form.MainImage,
		Active:      form.Active == nil || *form.Active,
	}
	if err := h.SetAmenities(form.Amenities); err != nil {
		return nil, err
	}

	if fields := validator.Struct(h); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64, limit, offset int) ([]domain.Room, int64, error) {
	return s.rooms.List(ctx, hotelID, limit, offset)
}

func (s *Service) CreateRoom(ctx context.Context, form RoomForm) (*domain.Room, error) {
	room := &domain.Room{
		HotelID:      form.HotelID,
		Name:         strings.TrimSpace(form.Name),
		Description:  form.Description,
		Price:        form.Price,
		MaxOccupancy: form.MaxOccupancy,
		MaxAdults:    form.MaxAdults,
		Capacity:     form.Capacity,
		MaxChildren:  form.MaxChildren,
		MaxInfants:   form.MaxInfants,
		Active:       form.Active == nil || *form.Active,
	}

	if fields := validator.Struct(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
