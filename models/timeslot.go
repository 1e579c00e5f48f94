package models

// TimeSlot is a pickup window offered to customers. Read-only from the
// customer surface; inactive slots are filtered out at fetch time.
type TimeSlot struct {
	ID        string `bson:"id" json:"id"`
	SlotName  string `bson:"slot_name" json:"slotName"`
	StartTime string `bson:"start_time" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"end_time" json:"endTime"`     // "HH:MM"
	IsActive  bool   `bson:"is_active" json:"isActive"`
}
