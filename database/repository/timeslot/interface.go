package timeslotRepo

import "freshlaundry/models"

// TimeSlotRepository defines persistence operations for pickup windows.
type TimeSlotRepository interface {
	ListActive() ([]models.TimeSlot, error)
	SeedDefaults() error
}
