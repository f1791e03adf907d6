package packages

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const listCacheKey = "packages:list:default"

type Service struct {
	packages    PackageRepository
	rooms       RoomRepository
	cache       ListCache
	cacheTTL    time.Duration
	placeholder string

	nowFn func() time.Time
}

func NewService(packages PackageRepository, rooms RoomRepository, cache ListCache, cacheTTL time.Duration, placeholder string) *Service {
	return &Service{
		packages:    packages,
		rooms:       rooms,
		cache:       cache,
		cacheTTL:    cacheTTL,
		placeholder: placeholder,
		nowFn:       time.Now,
	}
}

// SubmitResult reports the terminal draft state of one submit attempt along
// with either the saved record or the validation failure.
type SubmitResult struct {
	Package          *domain.Package   `json:"package,omitempty"`
	Validation       *ValidationResult `json:"validation,omitempty"`
	Draft            DraftStatus       `json:"draft_status"`
	Created          bool              `json:"created"`
	StrippedPreviews []string          `json:"stripped_previews,omitempty"`
	RemovedRoomIDs   []int64           `json:"removed_room_ids,omitempty"`
}

// Submit runs the whole pipeline for one explicit submit action:
// normalize → validate → capacity reconcile → create or update.
// A validation failure is reported as ErrValidation with the result attached;
// it never reaches the repository.
func (s *Service) Submit(ctx context.Context, form PackageForm) (*SubmitResult, error) {
	draft := NewDraft()
	if err := draft.To(DraftValidating); err != nil {
		return nil, err
	}

	n := Normalize(form)
	if len(n.StrippedPreviews) > 0 {
		log.Printf("package_submit stripped_previews=%d id=%d", len(n.StrippedPreviews), form.ID)
	}

	validation := Validate(n, s.nowFn())
	if !validation.Valid {
		_ = draft.To(DraftRejected)
		return &SubmitResult{
			Validation:       validation,
			Draft:            draft.Status(),
			StrippedPreviews: n.StrippedPreviews,
		}, ErrValidation
	}

	if err := draft.To(DraftSubmitting); err != nil {
		return nil, err
	}

	removed, err := s.reconcileRooms(ctx, n)
	if err != nil {
		_ = draft.To(DraftRejected)
		return &SubmitResult{Draft: draft.Status()}, err
	}

	record, err := n.Record(s.placeholder)
	if err != nil {
		_ = draft.To(DraftRejected)
		return &SubmitResult{Draft: draft.Status()}, err
	}

	created := record.ID == 0
	if created {
		err = s.packages.Create(ctx, record)
	} else {
		err = s.packages.Update(ctx, record)
	}
	if err != nil {
		_ = draft.To(DraftRejected)
		return &SubmitResult{Draft: draft.Status()}, mapRepoError(err)
	}

	_ = draft.To(DraftSaved)
	s.invalidateListCache(ctx)

	// create mode resets the draft back to idle for the next package;
	// edit mode stays on the saved record
	if created {
		_ = draft.To(DraftIdle)
	}

	return &SubmitResult{
		Package:          record,
		Draft:            draft.Status(),
		Created:          created,
		StrippedPreviews: n.StrippedPreviews,
		RemovedRoomIDs:   removed,
	}, nil
}

// reconcileRooms re-runs the capacity filter against the selected hotels and
// silently prunes room selections the new party size cannot use.
func (s *Service) reconcileRooms(ctx context.Context, n *NormalizedPackage) ([]int64, error) {
	if len(n.HotelIDs) == 0 {
		n.SelectedRoomIDs = nil
		return nil, nil
	}

	rooms, err := s.rooms.ListByHotelIDs(ctx, n.HotelIDs)
	if err != nil {
		return nil, err
	}

	eligible := FilterRooms(rooms, n.AdultCount, n.ChildrenCount, n.InfantCount)
	kept, removed := ReconcileSelection(n.SelectedRoomIDs, eligible)
	if len(removed) > 0 {
		log.Printf("package_rooms_pruned id=%d removed=%v", n.ID, removed)
	}
	n.SelectedRoomIDs = kept
	return removed, nil
}

func (s *Service) EligibleRooms(ctx context.Context, req EligibleRoomsRequest) (*EligibleRoomsResponse, error) {
	rooms, err := s.rooms.ListByHotelIDs(ctx, req.HotelIDs)
	if err != nil {
		return nil, err
	}

	eligible := FilterRooms(rooms, req.AdultCount, req.ChildrenCount, req.InfantCount)
	kept, removed := ReconcileSelection(req.SelectedRoomIDs, eligible)

	return &EligibleRoomsResponse{
		Rooms:          eligible,
		KeptSelection:  kept,
		RemovedRoomIDs: removed,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return p, nil
}

// GetForm hydrates the stored record back into form shape for edit mode.
// Legacy list columns go through HydrateListColumn so downgrades are logged.
func (s *Service) GetForm(ctx context.Context, id int64) (*PackageForm, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	form := PackageForm{
		ID:         p.ID,
		Title:      p.Title,
		TitleAr:    p.TitleAr,
		Overview:   p.Overview,
		OverviewAr: p.OverviewAr,

		PricingMode: string(p.Pricing),
		Currency:    p.Currency,

		CountryID:     p.CountryID,
		CityID:        p.CityID,
		DestinationID: p.DestinationID,
		CategoryID:    p.CategoryID,
		TourID:        p.TourID,

		MainImage:       p.MainImage,
		ExistingGallery: p.GetGallery(),

		IncludedFeatures: HydrateListColumn("included_features", p.IncludedFeatures),
		ExcludedItems:    HydrateListColumn("excluded_items", p.ExcludedItems),
		TravelRoute:      HydrateListColumn("travel_route", p.TravelRoute),
		TravelerTypes:    HydrateListColumn("traveler_types", p.TravelerTypes),

		HotelIDs:        p.GetHotelIDs(),
		SelectedRoomIDs: p.GetSelectedRoomIDs(),

		Featured: p.Featured,
	}

	active := p.Active
	form.Active = &active

	if p.Price != 0 {
		form.Price = formatFloat(p.Price)
	}
	if p.Discount != 0 {
		form.Discount = formatFloat(p.Discount)
	}
	if p.DurationDays != nil {
		form.DurationDays = strconv.Itoa(*p.DurationDays)
	}
	form.AdultCount = strconv.Itoa(p.AdultCount)
	form.ChildrenCount = strconv.Itoa(p.ChildrenCount)
	form.InfantCount = strconv.Itoa(p.InfantCount)

	if p.StartDate != nil {
		form.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		form.EndDate = p.EndDate.Format(dateLayout)
	}

	form.ItineraryDays = hydrateStructured[domain.ItineraryDay]("itinerary_days", p.ItineraryDays)
	form.PackItems = hydrateStructured[domain.PackItem]("pack_items", p.PackItems)
	form.Highlights = hydrateStructured[domain.Highlight]("highlights", p.Highlights)

	return &form, nil
}

type ListResponse struct {
	Packages []domain.Package `json:"packages"`
	Total    int64            `json:"total"`
}

// List returns packages; the default unfiltered first page is served from
// cache when available.
func (s *Service) List(ctx context.Context, f repository.PackageFilters) (*ListResponse, error) {
	cacheable := isDefaultFilters(f)

	if cacheable {
		if data, err := s.cacheGet(ctx); err == nil {
			var cached ListResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	items, total, err := s.packages.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &ListResponse{Packages: items, Total: total}

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cacheSet(ctx, data); err != nil {
				log.Printf("package_list_cache_set_failed error=%q", err.Error())
			}
		}
	}

	return resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *Service) cacheGet(ctx context.Context) ([]byte, error) {
	if s.cache == nil {
		return nil, errors.New("no cache")
	}
	return s.cache.Get(ctx, listCacheKey)
}

func (s *Service) cacheSet(ctx context.Context, data []byte) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, listCacheKey, data, s.cacheTTL)
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		log.Printf("package_list_cache_invalidate_failed error=%q", err.Error())
	}
}

func isDefaultFilters(f repository.PackageFilters) bool {
	return f.CountryID == 0 && f.CityID == 0 && f.CategoryID == 0 &&
		f.Featured == nil && f.Active == nil && f.Offset == 0 &&
		(f.Limit == 0 || f.Limit == repository.DefaultPageSize)
}

func hydrateStructured[T any](field string, column []byte) []T {
	if len(column) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(column, &items); err != nil {
		log.Printf("legacy_json_column field=%s error=%q len=%d", field, err.Error(), len(column))
		return nil
	}
	return items
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrBadReference
	}
	return err
}
