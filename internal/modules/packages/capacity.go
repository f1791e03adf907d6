package packages

import "travelbook/internal/domain"

// Rooms with no occupancy column at all are treated as standard doubles.
const defaultRoomCapacity = 2

// EffectiveCapacity resolves a room's occupancy limit. Legacy rows carry any
// one of max_occupancy, max_adults or capacity; the first present wins.
func EffectiveCapacity(r domain.Room) int {
	switch {
	case r.MaxOccupancy != nil:
		return *r.MaxOccupancy
	case r.MaxAdults != nil:
		return *r.MaxAdults
	case r.Capacity != nil:
		return *r.Capacity
	default:
		return defaultRoomCapacity
	}
}

// FilterRooms keeps only rooms that can sleep the whole party.
func FilterRooms(rooms []domain.Room, adults, children, infants int) []domain.Room {
	totalGuests := adults + children + infants

	eligible := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if EffectiveCapacity(r) >= totalGuests {
			eligible = append(eligible, r)
		}
	}
	return eligible
}

// ReconcileSelection prunes previously selected rooms that fell outside the
// eligible set after a hotel or traveler-count change. The removal is silent
// by contract; callers log the removed IDs.
func ReconcileSelection(selected []int64, eligible []domain.Room) (kept, removed []int64) {
	eligibleIDs := make(map[int64]bool, len(eligible))
	for _, r := range eligible {
		eligibleIDs[r.ID] = true
	}

	for _, id := range selected {
		if eligibleIDs[id] {
			kept = append(kept, id)
		} else {
			removed = append(removed, id)
		}
	}
	return kept, removed
}
