package model

// DaySnapshot is the recorded booking state for one calendar date. One
// document per date key; bookedSlots holds one entry per occupied
// groomer-slot, so the same label may repeat up to the concurrency cap.
type DaySnapshot struct {
	DateKey     string   `json:"date" bson:"_id"`
	BookedSlots []string `json:"booked_slots" bson:"bookedSlots"`
	DailyLimit  int      `json:"daily_limit" bson:"dailyLimit"`
}

// Booked returns the total number of occupied groomer-slots on the date.
func (s *DaySnapshot) Booked() int {
	return len(s.BookedSlots)
}

// SlotOccupancy counts how many times the label is already booked.
func (s *DaySnapshot) SlotOccupancy(label string) int {
	count := 0
	for _, booked := range s.BookedSlots {
		if booked == label {
			count++
		}
	}
	return count
}

// Slot is one offered time window with its remaining capacity, as shown in
// the slot picker.
type Slot struct {
	Label          string `json:"label"`
	RemainingSpots int    `json:"remaining_spots"`
	TotalSpots     int    `json:"total_spots"`
}

// CapacityRule is derived from the date's weekday/weekend classification and
// never stored.
type CapacityRule struct {
	DailyLimit           int `json:"daily_limit"`
	MaxConcurrentPerSlot int `json:"max_concurrent_per_slot"`
}
