package packages

import (
	"strconv"
	"strings"
	"time"

	"travelbook/internal/domain"
)

const dateLayout = "2006-01-02"

// NormalizedPackage is the typed snapshot the validation pipeline and the
// mutation path work on. Coercion failures never abort normalization; they
// are collected in FieldErrors and reported by the pipeline.
type NormalizedPackage struct {
	ID int64

	Title      string
	TitleAr    string
	Overview   string
	OverviewAr string

	Price    float64
	PriceSet bool
	Discount float64
	Pricing  domain.PricingMode
	Currency string

	DurationDays *int

	CountryID     *int64
	CityID        *int64
	DestinationID *int64
	CategoryID    *int64
	TourID        *int64

	AdultCount    int
	ChildrenCount int
	InfantCount   int

	StartDate *time.Time
	EndDate   *time.Time

	MainImage        string
	Gallery          []string
	StrippedPreviews []string

	IncludedFeatures []string
	ExcludedItems    []string
	TravelRoute      []string
	TravelerTypes    []string

	ItineraryDays []domain.ItineraryDay
	PackItems     []domain.PackItem
	Highlights    []domain.Highlight

	HotelIDs        []int64
	SelectedRoomIDs []int64

	Featured bool
	Active   bool

	FieldErrors map[string]string
}

// Normalize converts raw form input into values matching the persistence
// schema. It is idempotent: normalizing the form built back from a
// NormalizedPackage yields the same result.
func Normalize(form PackageForm) *NormalizedPackage {
	n := &NormalizedPackage{
		ID:          form.ID,
		Title:       strings.TrimSpace(form.Title),
		TitleAr:     strings.TrimSpace(form.TitleAr),
		Overview:    strings.TrimSpace(form.Overview),
		OverviewAr:  strings.TrimSpace(form.OverviewAr),
		MainImage:   strings.TrimSpace(form.MainImage),
		Featured:    form.Featured,
		Active:      form.Active == nil || *form.Active,
		FieldErrors: map[string]string{},
	}

	n.Price, n.PriceSet = parseFloatField("price", form.Price, n.FieldErrors)
	n.Discount, _ = parseFloatField("discount", form.Discount, n.FieldErrors)

	n.Pricing = normalizePricingMode(form.PricingMode)
	n.Currency = strings.ToUpper(strings.TrimSpace(form.Currency))
	if n.Currency == "" {
		n.Currency = "USD"
	}

	if days, ok := parseIntField("duration_days", form.DurationDays, n.FieldErrors); ok {
		n.DurationDays = &days
	}

	n.CountryID = form.CountryID
	n.CityID = form.CityID
	n.DestinationID = form.DestinationID
	n.CategoryID = form.CategoryID
	n.TourID = form.TourID

	n.AdultCount, _ = parseIntField("adult_count", form.AdultCount, n.FieldErrors)
	n.ChildrenCount, _ = parseIntField("children_count", form.ChildrenCount, n.FieldErrors)
	n.InfantCount, _ = parseIntField("infant_count", form.InfantCount, n.FieldErrors)

	n.StartDate = parseDateField("start_date", form.StartDate, n.FieldErrors)
	n.EndDate = parseDateField("end_date", form.EndDate, n.FieldErrors)

	n.Gallery, n.StrippedPreviews = mergeGallery(form.ExistingGallery, form.Gallery)

	n.IncludedFeatures = form.IncludedFeatures.Lines()
	n.ExcludedItems = form.ExcludedItems.Lines()
	n.TravelRoute = form.TravelRoute.Lines()
	n.TravelerTypes = form.TravelerTypes.Lines()

	n.ItineraryDays = form.ItineraryDays
	n.PackItems = form.PackItems
	n.Highlights = form.Highlights

	n.HotelIDs = form.HotelIDs
	n.SelectedRoomIDs = form.SelectedRoomIDs

	return n
}

// Form rebuilds a raw form from normalized values. Used for edit-mode
// hydration and to keep Normalize verifiably idempotent.
func (n *NormalizedPackage) Form() PackageForm {
	form := PackageForm{
		ID:         n.ID,
		Title:      n.Title,
		TitleAr:    n.TitleAr,
		Overview:   n.Overview,
		OverviewAr: n.OverviewAr,

		PricingMode: string(n.Pricing),
		Currency:    n.Currency,

		CountryID:     n.CountryID,
		CityID:        n.CityID,
		DestinationID: n.DestinationID,
		CategoryID:    n.CategoryID,
		TourID:        n.TourID,

		MainImage:       n.MainImage,
		ExistingGallery: n.Gallery,

		IncludedFeatures: StructuredList(n.IncludedFeatures),
		ExcludedItems:    StructuredList(n.ExcludedItems),
		TravelRoute:      StructuredList(n.TravelRoute),
		TravelerTypes:    StructuredList(n.TravelerTypes),

		ItineraryDays: n.ItineraryDays,
		PackItems:     n.PackItems,
		Highlights:    n.Highlights,

		HotelIDs:        n.HotelIDs,
		SelectedRoomIDs: n.SelectedRoomIDs,

		Featured: n.Featured,
	}

	active := n.Active
	form.Active = &active

	if n.PriceSet {
		form.Price = formatFloat(n.Price)
	}
	if n.Discount != 0 {
		form.Discount = formatFloat(n.Discount)
	}
	if n.DurationDays != nil {
		form.DurationDays = strconv.Itoa(*n.DurationDays)
	}

	form.AdultCount = strconv.Itoa(n.AdultCount)
	form.ChildrenCount = strconv.Itoa(n.ChildrenCount)
	form.InfantCount = strconv.Itoa(n.InfantCount)

	if n.StartDate != nil {
		form.StartDate = n.StartDate.Format(dateLayout)
	}
	if n.EndDate != nil {
		form.EndDate = n.EndDate.Format(dateLayout)
	}

	return form
}

// Record builds the outbound persistence record. The at-least-one-image
// invariant is enforced here: with no main image and an empty gallery the
// placeholder URL is substituted.
func (n *NormalizedPackage) Record(placeholder string) (*domain.Package, error) {
	mainImage := n.MainImage
	if mainImage == "" {
		if len(n.Gallery) > 0 {
			mainImage = n.Gallery[0]
		} else {
			mainImage = placeholder
		}
	}

	p := &domain.Package{
		ID:            n.ID,
		Title:         n.Title,
		TitleAr:       n.TitleAr,
		Overview:      n.Overview,
		OverviewAr:    n.OverviewAr,
		Price:         n.Price,
		Discount:      n.Discount,
		Pricing:       n.Pricing,
		Currency:      n.Currency,
		DurationDays:  n.DurationDays,
		CountryID:     n.CountryID,
		CityID:        n.CityID,
		DestinationID: n.DestinationID,
		CategoryID:    n.CategoryID,
		TourID:        n.TourID,
		AdultCount:    n.AdultCount,
		ChildrenCount: n.ChildrenCount,
		InfantCount:   n.InfantCount,
		StartDate:     n.StartDate,
		EndDate:       n.EndDate,
		MainImage:     mainImage,
		Featured:      n.Featured,
		Active:        n.Active,
	}

	setters := []error{
		p.SetGallery(n.Gallery),
		p.SetItineraryDays(n.ItineraryDays),
		p.SetIncludedFeatures(n.IncludedFeatures),
		p.SetExcludedItems(n.ExcludedItems),
		p.SetPackItems(n.PackItems),
		p.SetHighlights(n.Highlights),
		p.SetTravelRoute(n.TravelRoute),
		p.SetTravelerTypes(n.TravelerTypes),
		p.SetHotelIDs(n.HotelIDs),
		p.SetSelectedRoomIDs(n.SelectedRoomIDs),
	}
	for _, err := range setters {
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func normalizePricingMode(raw string) domain.PricingMode {
	switch domain.PricingMode(strings.TrimSpace(raw)) {
	case domain.PricingPercentage:
		return domain.PricingPercentage
	case domain.PricingFixed:
		return domain.PricingFixed
	default:
		return domain.PricingPerBooking
	}
}

func parseFloatField(field, raw string, errs map[string]string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = "not a number"
		return 0, false
	}
	return v, true
}

func parseIntField(field, raw string, errs map[string]string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = "not an integer"
		return 0, false
	}
	return v, true
}

func parseDateField(field, raw string, errs map[string]string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			errs[field] = "invalid date"
			return nil
		}
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// mergeGallery unions persisted URLs with newly uploaded ones, drops ephemeral
// preview handles and deduplicates preserving first-seen order.
func mergeGallery(existing, uploaded []string) (gallery, stripped []string) {
	seen := map[string]bool{}
	for _, url := range append(append([]string{}, existing...), uploaded...) {
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		if isEphemeralPreview(url) {
			stripped = append(stripped, url)
			continue
		}
		gallery = append(gallery, url)
	}
	return gallery, stripped
}

func isEphemeralPreview(url string) bool {
	return strings.HasPrefix(url, "blob:") || strings.HasPrefix(url, "data:")
}
