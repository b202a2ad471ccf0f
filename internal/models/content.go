package models

// PlanFeature is one line of a pricing plan's feature list
type PlanFeature struct {
	Text      string `json:"text"`
	Available bool   `json:"available"`
}

// Plan represents a pricing tier
type Plan struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       string        `json:"price"`                  // Monthly price as displayed, e.g. "$10"
	AnnualPrice string        `json:"annual_price,omitempty"` // Per-month price when billed annually
	Period      string        `json:"period,omitempty"`
	Features    []PlanFeature `json:"features"`
	CTA         string        `json:"cta"`
	Highlight   bool          `json:"highlight"`
}

// Feature represents a product feature tile
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQ represents a question and its answer
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Testimonial represents a customer quote
type Testimonial struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"` // 1-5 stars
}
