package packages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 1, 10, 14, 30, 0, 0, time.UTC)

func TestValidateAcceptsCompleteForm(t *testing.T) {
	result := Validate(Normalize(validForm()), testToday)

	assert.True(t, result.Valid)
	assert.Empty(t, result.FailedStage)
	assert.Empty(t, result.Errors)
}

func TestValidateRequiredStageAbortsPipeline(t *testing.T) {
	form := validForm()
	form.Title = "   "
	form.Price = "" // would also fail the numeric stage

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageRequired, result.FailedStage)

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
		assert.Equal(t, "REQUIRED", e.Code)
	}
	assert.ElementsMatch(t, []string{"title", "price"}, fields)
}

func TestValidateUnparseableFieldsFailNumericNotRequired(t *testing.T) {
	form := validForm()
	form.Price = "abc"

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageNumeric, result.FailedStage)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "INVALID_NUMBER", result.Errors[0].Code)
	assert.Equal(t, "price", result.Errors[0].Field)
}

func TestValidateNumericStage(t *testing.T) {
	form := validForm()
	form.Price = "0.001"
	form.AdultCount = "0"
	form.ChildrenCount = "-1"

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageNumeric, result.FailedStage)

	codes := map[string]string{}
	for _, e := range result.Errors {
		codes[e.Field] = e.Code
	}
	assert.Equal(t, "MIN_PRICE", codes["price"])
	assert.Equal(t, "MIN_COUNT", codes["adult_count"])
	assert.Equal(t, "MIN_COUNT", codes["children_count"])
}

func TestValidateRejectsPastDates(t *testing.T) {
	form := validForm()
	form.StartDate = "2026-01-09"
	form.EndDate = "2026-01-15"

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageDates, result.FailedStage)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "DATE_IN_PAST", result.Errors[0].Code)
	assert.Equal(t, "start_date", result.Errors[0].Field)
}

func TestValidateTodayIsNotPast(t *testing.T) {
	form := validForm()
	form.StartDate = "2026-01-10"
	form.EndDate = "2026-01-15"

	result := Validate(Normalize(form), testToday)
	assert.True(t, result.Valid)
}

func TestValidateTodayInWesternZoneIsNotPast(t *testing.T) {
	west := time.FixedZone("UTC-6", -6*3600)

	form := validForm()
	form.StartDate = "2026-01-10"
	form.EndDate = "2026-01-15"

	for _, clock := range []time.Time{
		time.Date(2026, 1, 10, 1, 0, 0, 0, west),
		time.Date(2026, 1, 10, 23, 0, 0, 0, west),
	} {
		result := Validate(Normalize(form), clock)
		assert.True(t, result.Valid, "today at %s must not count as past", clock)
	}
}

func TestValidateYesterdayInEasternZoneIsPast(t *testing.T) {
	east := time.FixedZone("UTC+3", 3*3600)
	clock := time.Date(2026, 1, 11, 0, 30, 0, 0, east)

	form := validForm()
	form.StartDate = "2026-01-10"
	form.EndDate = "2026-01-15"

	result := Validate(Normalize(form), clock)
	require.False(t, result.Valid)
	assert.Equal(t, StageDates, result.FailedStage)
	assert.Equal(t, "DATE_IN_PAST", result.Errors[0].Code)
}

func TestValidateEndBeforeStart(t *testing.T) {
	form := validForm()
	form.StartDate = "2026-10-19"
	form.EndDate = "2026-10-12"

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageDates, result.FailedStage)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "END_BEFORE_START", result.Errors[0].Code)
}

func TestValidateMinDurationRule(t *testing.T) {
	form := validForm()
	form.StartDate = "2026-10-12"
	form.EndDate = "2026-10-12"

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageBusiness, result.FailedStage)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "MIN_DURATION", result.Errors[0].Code)
}

func TestValidateRequiresIncludedFeatures(t *testing.T) {
	form := validForm()
	form.IncludedFeatures = ListField{}

	result := Validate(Normalize(form), testToday)

	require.False(t, result.Valid)
	assert.Equal(t, StageBusiness, result.FailedStage)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "NO_FEATURES_SELECTED", result.Errors[0].Code)
	assert.Equal(t, TabFeatures, result.Errors[0].Tab)

	// whitespace-only lines count as empty
	form.IncludedFeatures = RawList("  \n\n  ")
	result = Validate(Normalize(form), testToday)
	require.False(t, result.Valid)
	assert.Equal(t, "NO_FEATURES_SELECTED", result.Errors[0].Code)
}

func TestValidateFirstErrorTabFollowsTabOrder(t *testing.T) {
	form := validForm()
	// both failures live on the pricing tab
	form.Price = "0"
	form.AdultCount = "0"

	result := Validate(Normalize(form), testToday)
	require.False(t, result.Valid)
	assert.Equal(t, TabPricing, result.FirstErrorTab)

	// a basic-tab error wins over a pricing-tab error
	form = validForm()
	form.Title = ""
	form.Price = ""
	result = Validate(Normalize(form), testToday)
	require.False(t, result.Valid)
	assert.Equal(t, TabBasic, result.FirstErrorTab)
	assert.Len(t, result.ErrorsByTab[TabBasic], 1)
	assert.Len(t, result.ErrorsByTab[TabPricing], 1)
}
