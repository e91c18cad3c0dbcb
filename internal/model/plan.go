package model

// Plan is one purchasable consultation offering. The catalog is static
// reference data compiled into the binary, not persisted.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Duration    string `json:"duration"`
	Popular     bool   `json:"popular"`
}

// Label is the display form stored on bookings, e.g. "Quick Clarity - ₹221".
func (p Plan) Label() string {
	return p.Name + " - " + p.Price
}

var planCatalog = []Plan{
	{
		ID:          "placement-job",
		Name:        "Placement/Job Insights",
		Price:       "₹199",
		Description: "Upcoming Job/Placement Guidance",
		Details:     "Opportunity Timing & Prep Tips",
		Duration:    "10-12 min only",
	},
	{
		ID:          "quick-clarity",
		Name:        "Quick Clarity",
		Price:       "₹221",
		Description: "One Question + Current Phase",
		Details:     "Honest Direction",
		Duration:    "8-10 min only",
	},
	{
		ID:          "life-career",
		Name:        "Life & Career",
		Price:       "₹351",
		Description: "Career/Studies Growth Direction",
		Details:     "Next 6-12 Months",
		Duration:    "15-18 min only",
		Popular:     true,
	},
	{
		ID:          "future-timing",
		Name:        "Future & Timing",
		Price:       "₹501",
		Description: "Career + Money Opportunity Period",
		Details:     "One Major Block Explained",
		Duration:    "25-30 min only",
	},
}

// Plans returns the full catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(planCatalog))
	copy(out, planCatalog)
	return out
}

// PlanByID resolves an incoming link parameter to a catalog entry.
func PlanByID(id string) (Plan, bool) {
	for _, p := range planCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
