package planRepo

import "freshlaundry/models"

// PlanRepository defines read operations over the plan catalogue.
type PlanRepository interface {
	ListActive() ([]models.Plan, error)
	GetByID(id string) (*models.Plan, error)
	SeedDefaults() error
}
