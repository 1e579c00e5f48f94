package models

// Plan is a subscription plan in the catalogue. Read-only; only active
// plans are shown.
type Plan struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	Price           float64  `bson:"price" json:"price"`
	Period          string   `bson:"period" json:"period"`
	Description     string   `bson:"description,omitempty" json:"description,omitempty"`
	Features        []string `bson:"features" json:"features"`
	IsPopular       bool     `bson:"is_popular" json:"isPopular"`
	IsActive        bool     `bson:"is_active" json:"isActive"`
	MaxWeightLbs    int      `bson:"max_weight_lbs,omitempty" json:"maxWeightLbs,omitempty"`
	TurnaroundHours int      `bson:"turnaround_hours,omitempty" json:"turnaroundHours,omitempty"`
}
