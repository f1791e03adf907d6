package packages

import (
	"time"

	"github.com/jinzhu/now"
)

// Admin form tabs in their fixed display order. On failure the first tab
// containing an error becomes the active one.
const (
	TabBasic         = "basic"
	TabPricing       = "pricing"
	TabAccommodation = "accommodation"
	TabFeatures      = "features"
	TabItinerary     = "itinerary"
	TabPacking       = "packing"
	TabRoute         = "route"
)

var tabOrder = []string{
	TabBasic, TabPricing, TabAccommodation, TabFeatures, TabItinerary, TabPacking, TabRoute,
}

var fieldTabs = map[string]string{
	"title":             TabBasic,
	"overview":          TabBasic,
	"country_id":        TabBasic,
	"city_id":           TabBasic,
	"category_id":       TabBasic,
	"start_date":        TabBasic,
	"end_date":          TabBasic,
	"duration_days":     TabBasic,
	"price":             TabPricing,
	"discount":          TabPricing,
	"adult_count":       TabPricing,
	"children_count":    TabPricing,
	"infant_count":      TabPricing,
	"hotel_ids":         TabAccommodation,
	"selected_room_ids": TabAccommodation,
	"included_features": TabFeatures,
	"excluded_items":    TabFeatures,
	"itinerary_days":    TabItinerary,
	"pack_items":        TabPacking,
	"travel_route":      TabRoute,
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

const (
	StageRequired = "required"
	StageNumeric  = "numeric"
	StageDates    = "dates"
	StageBusiness = "business"
)

type FieldError struct {
	Field    string   `json:"field"`
	Tab      string   `json:"tab"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

type ValidationResult struct {
	Valid         bool                    `json:"valid"`
	FailedStage   string                  `json:"failed_stage,omitempty"`
	Errors        []FieldError            `json:"errors,omitempty"`
	ErrorsByTab   map[string][]FieldError `json:"errors_by_tab,omitempty"`
	FirstErrorTab string                  `json:"first_error_tab,omitempty"`
}

// BusinessRule is a named boolean predicate evaluated in the final stage.
type BusinessRule struct {
	Code     string
	Title    string
	Message  string
	Field    string
	Severity Severity
	Passes   func(n *NormalizedPackage) bool
}

var businessRules = []BusinessRule{
	{
		Code:     "MIN_DURATION",
		Title:    "Minimum Duration",
		Message:  "A package must span at least 1 day: start and end date cannot be the same",
		Field:    "end_date",
		Severity: SeverityError,
		Passes: func(n *NormalizedPackage) bool {
			if n.StartDate == nil || n.EndDate == nil {
				return true
			}
			return !n.StartDate.Equal(*n.EndDate)
		},
	},
	{
		Code:     "NO_FEATURES_SELECTED",
		Title:    "No Features Selected",
		Message:  "Select at least one included feature",
		Field:    "included_features",
		Severity: SeverityError,
		Passes: func(n *NormalizedPackage) bool {
			return len(n.IncludedFeatures) > 0
		},
	},
}

type stage struct {
	name string
	run  func(n *NormalizedPackage, today time.Time) []FieldError
}

var pipeline = []stage{
	{StageRequired, requiredStage},
	{StageNumeric, numericStage},
	{StageDates, dateStage},
	{StageBusiness, businessStage},
}

// Validate runs the four stages in order against a normalized snapshot.
// The first stage with errors aborts the pipeline; later stages do not run.
// `today` is the reference date for past-date checks (date-only comparison).
func Validate(n *NormalizedPackage, today time.Time) *ValidationResult {
	for _, st := range pipeline {
		errs := st.run(n, today)
		if len(errs) > 0 {
			return failure(st.name, errs)
		}
	}
	return &ValidationResult{Valid: true}
}

func requiredStage(n *NormalizedPackage, _ time.Time) []FieldError {
	var errs []FieldError

	required := func(field, message string, missing bool) {
		if missing {
			errs = append(errs, fieldErr(field, "REQUIRED", message))
		}
	}

	required("title", "Package name is required", n.Title == "")
	required("overview", "Overview is required", n.Overview == "")
	required("country_id", "Country is required", n.CountryID == nil)
	required("city_id", "City is required", n.CityID == nil)
	required("category_id", "Category is required", n.CategoryID == nil)
	required("start_date", "Start date is required", n.StartDate == nil && n.FieldErrors["start_date"] == "")
	required("end_date", "End date is required", n.EndDate == nil && n.FieldErrors["end_date"] == "")
	required("price", "Base price is required", !n.PriceSet && n.FieldErrors["price"] == "")

	return errs
}

func numericStage(n *NormalizedPackage, _ time.Time) []FieldError {
	var errs []FieldError

	if n.FieldErrors["price"] != "" {
		errs = append(errs, fieldErr("price", "INVALID_NUMBER", "Base price must be a number"))
	} else if n.Price < 0.01 {
		errs = append(errs, fieldErr("price", "MIN_PRICE", "Base price must be at least 0.01"))
	}

	counts := []struct {
		field string
		value int
		min   int
		label string
	}{
		{"adult_count", n.AdultCount, 1, "Adults"},
		{"children_count", n.ChildrenCount, 0, "Children"},
		{"infant_count", n.InfantCount, 0, "Infants"},
	}
	for _, c := range counts {
		if n.FieldErrors[c.field] != "" {
			errs = append(errs, fieldErr(c.field, "INVALID_NUMBER", c.label+" count must be a whole number"))
			continue
		}
		if c.value < c.min {
			errs = append(errs, fieldErr(c.field, "MIN_COUNT", c.label+" count is below the minimum"))
		}
	}

	return errs
}

func dateStage(n *NormalizedPackage, today time.Time) []FieldError {
	var errs []FieldError

	// Form dates are anchored to UTC midnight during normalization, so
	// today's calendar date (taken in its own zone) is re-anchored to UTC
	// before comparing. Otherwise a server west of UTC rejects today.
	local := now.New(today).BeginningOfDay()
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	for _, d := range []struct {
		field string
		value *time.Time
	}{
		{"start_date", n.StartDate},
		{"end_date", n.EndDate},
	} {
		if n.FieldErrors[d.field] != "" {
			errs = append(errs, fieldErr(d.field, "INVALID_DATE", "Not a valid date"))
			continue
		}
		if d.value != nil && d.value.Before(midnight) {
			errs = append(errs, fieldErr(d.field, "DATE_IN_PAST", "Date cannot be in the past"))
		}
	}

	if n.StartDate != nil && n.EndDate != nil && n.EndDate.Before(*n.StartDate) {
		errs = append(errs, fieldErr("end_date", "END_BEFORE_START", "End date cannot be before start date"))
	}

	return errs
}

func businessStage(n *NormalizedPackage, _ time.Time) []FieldError {
	var errs []FieldError
	for _, rule := range businessRules {
		if rule.Passes(n) {
			continue
		}
		errs = append(errs, FieldError{
			Field:    rule.Field,
			Tab:      fieldTabs[rule.Field],
			Code:     rule.Code,
			Message:  rule.Message,
			Severity: rule.Severity,
		})
	}
	return errs
}

func fieldErr(field, code, message string) FieldError {
	return FieldError{
		Field:    field,
		Tab:      fieldTabs[field],
		Code:     code,
		Message:  message,
		Severity: SeverityError,
	}
}

func failure(stageName string, errs []FieldError) *ValidationResult {
	byTab := make(map[string][]FieldError)
	for _, e := range errs {
		byTab[e.Tab] = append(byTab[e.Tab], e)
	}

	first := ""
	for _, tab := range tabOrder {
		if len(byTab[tab]) > 0 {
			first = tab
			break
		}
	}

	return &ValidationResult{
		Valid:         false,
		FailedStage:   stageName,
		Errors:        errs,
		ErrorsByTab:   byTab,
		FirstErrorTab: first,
	}
}
