package catalog

import "errors"

// ErrServiceNotFound maps to the dedicated not-found view, not an error
// notice.
var ErrServiceNotFound = errors.New("service not found")

// ServiceDetail is a laundry service page.
type ServiceDetail struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	Features        []string `json:"features"`
	Process         []string `json:"process"`
	Pricing         string   `json:"pricing"`
}

// Service exposes the static service catalogue.
type Service interface {
	List() []ServiceDetail
	Get(slug string) (*ServiceDetail, error)
}

// StaticService serves the catalogue from memory; the content is fixed
// marketing copy.
type StaticService struct{}

var services = []ServiceDetail{
	{
		Slug:            "wash-fold",
		Title:           "Wash & Fold",
		Description:     "Professional washing and folding service for your everyday clothes",
		FullDescription: "Our wash and fold service is perfect for busy professionals and families. We carefully sort your laundry, wash it with premium detergents, and fold everything neatly. Your clothes come back fresh, clean, and ready to wear or store.",
		Features: []string{
			"Sorted by color and fabric type",
			"Premium eco-friendly detergents",
			"Careful stain pre-treatment",
			"Perfectly folded and organized",
			"Available for same-day service",
			"Weight-based pricing",
		},
		Process: []string{
			"Drop off or schedule pickup",
			"We sort and inspect items",
			"Wash with care",
			"Dry at optimal temperature",
			"Fold neatly",
			"Ready for pickup or delivery",
		},
		Pricing: "$1.50/lb",
	},
	{
		Slug:            "dry-cleaning",
		Title:           "Dry Cleaning",
		Description:     "Expert dry cleaning for delicate and formal wear",
		FullDescription: "Trust your finest garments to our professional dry cleaning service. We use state-of-the-art equipment and eco-friendly solvents to clean suits, dresses, silk, wool, and other delicate fabrics that require special care.",
		Features: []string{
			"Expert handling of delicates",
			"Eco-friendly cleaning solvents",
			"Professional pressing and finishing",
			"Minor repairs included",
			"Wedding dress cleaning available",
			"Suit and formal wear specialists",
		},
		Process: []string{
			"Garment inspection",
			"Stain identification and treatment",
			"Gentle dry cleaning process",
			"Hand pressing and finishing",
			"Quality inspection",
			"Packaging and delivery",
		},
		Pricing: "Starting at $8/item",
	},
	{
		Slug:            "ironing",
		Title:           "Ironing & Pressing",
		Description:     "Crisp, wrinkle-free clothes ready to wear",
		FullDescription: "Get perfectly pressed clothes without the hassle. Our professional ironing service ensures your shirts, pants, and other garments look crisp and professional. Perfect for business attire and special occasions.",
		Features: []string{
			"Professional steam pressing",
			"Crease perfection",
			"Collar and cuff attention",
			"Hang or fold options",
			"Quick turnaround available",
			"Bulk discounts for businesses",
		},
		Process: []string{
			"Sort by fabric type",
			"Apply appropriate heat settings",
			"Steam and press carefully",
			"Attention to details",
			"Final inspection",
			"Hang or fold as requested",
		},
		Pricing: "$3/item",
	},
	{
		Slug:            "eco-friendly",
		Title:           "Eco-Friendly Wash",
		Description:     "Sustainable cleaning with organic products",
		FullDescription: "Our eco-friendly wash service uses only organic, biodegradable detergents and cold water washing techniques to minimize environmental impact. Perfect for those who care about sustainability without compromising on clean.",
		Features: []string{
			"100% organic detergents",
			"Cold water washing",
			"Biodegradable packaging",
			"Carbon-neutral delivery",
			"Safe for sensitive skin",
			"Plant-based fabric softeners",
		},
		Process: []string{
			"Sort and inspect items",
			"Use organic detergents",
			"Cold water wash cycle",
			"Air dry when possible",
			"Eco-friendly packaging",
			"Carbon-neutral delivery",
		},
		Pricing: "$2.00/lb",
	},
}

// List returns every service page.
func (s *StaticService) List() []ServiceDetail {
	return services
}

// Get looks a service up by slug.
func (s *StaticService) Get(slug string) (*ServiceDetail, error) {
	for i := range services {
		if services[i].Slug == slug {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}
