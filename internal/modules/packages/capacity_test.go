package packages

import (
	"testing"

	"travelbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestEffectiveCapacityPriority(t *testing.T) {
	tests := []struct {
		name string
		room domain.Room
		want int
	}{
		{"max_occupancy wins over everything", domain.Room{MaxOccupancy: intPtr(4), MaxAdults: intPtr(2), Capacity: intPtr(1)}, 4},
		{"max_adults when no max_occupancy", domain.Room{MaxAdults: intPtr(3), Capacity: intPtr(1)}, 3},
		{"capacity as last resort", domain.Room{Capacity: intPtr(5)}, 5},
		{"default when nothing set", domain.Room{}, 2},
		{"explicit zero is respected", domain.Room{MaxOccupancy: intPtr(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCapacity(tt.room))
		})
	}
}

func TestFilterRoomsByPartySize(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, MaxOccupancy: intPtr(2)},
		{ID: 2, MaxOccupancy: intPtr(4)},
	}

	// 3 adults + 1 child need 4 seats: only room 2 qualifies
	eligible := FilterRooms(rooms, 3, 1, 0)
	assert.Len(t, eligible, 1)
	assert.Equal(t, int64(2), eligible[0].ID)

	// a couple fits both
	eligible = FilterRooms(rooms, 2, 0, 0)
	assert.Len(t, eligible, 2)

	// infants count toward the total
	eligible = FilterRooms(rooms, 2, 0, 1)
	assert.Len(t, eligible, 1)
	assert.Equal(t, int64(2), eligible[0].ID)
}

func TestFilterRoomsLegacyColumns(t *testing.T) {
	rooms := []domain.Room{
		{ID: 10, MaxAdults: intPtr(3)},
		{ID: 11, Capacity: intPtr(2)},
		{ID: 12}, // no occupancy data, treated as a double
	}

	eligible := FilterRooms(rooms, 3, 0, 0)
	assert.Len(t, eligible, 1)
	assert.Equal(t, int64(10), eligible[0].ID)
}

func TestReconcileSelectionPrunesIneligibleRooms(t *testing.T) {
	eligible := []domain.Room{{ID: 2}, {ID: 3}}

	kept, removed := ReconcileSelection([]int64{1, 2, 3}, eligible)
	assert.Equal(t, []int64{2, 3}, kept)
	assert.Equal(t, []int64{1}, removed)

	kept, removed = ReconcileSelection(nil, eligible)
	assert.Empty(t, kept)
	assert.Empty(t, removed)
}
