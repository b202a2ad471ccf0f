package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/models"
)

// Section names served by the content API
const (
	SectionPlans        = "plans"
	SectionFeatures     = "features"
	SectionFAQs         = "faqs"
	SectionTestimonials = "testimonials"
	SectionStats        = "stats"
)

// Sections lists the content sections in page order
var Sections = []string{SectionPlans, SectionFeatures, SectionStats, SectionTestimonials, SectionFAQs}

// Site holds the marketing copy and the sample dashboards
type Site struct {
	Plans        []models.Plan        `json:"plans"`
	Features     []models.Feature     `json:"features"`
	FAQs         []models.FAQ         `json:"faqs"`
	Testimonials []models.Testimonial `json:"testimonials"`
	Stats        []models.StatCard    `json:"stats"`

	charts map[chart.Kind]chart.View
}

// Default returns the built-in site content
func Default() *Site {
	return &Site{
		Plans:        plans(),
		Features:     features(),
		FAQs:         faqs(),
		Testimonials: testimonials(),
		Stats:        statCards(),
		charts:       datasets(),
	}
}

// Section returns one section's records by name
func (s *Site) Section(name string) (interface{}, bool) {
	switch name {
	case SectionPlans:
		return s.Plans, true
	case SectionFeatures:
		return s.Features, true
	case SectionFAQs:
		return s.FAQs, true
	case SectionTestimonials:
		return s.Testimonials, true
	case SectionStats:
		return s.Stats, true
	}
	return nil, false
}

// Dataset returns the sample dataset for a chart kind
func (s *Site) Dataset(kind chart.Kind) (chart.View, bool) {
	v, ok := s.charts[kind]
	return v, ok
}

// Validate checks the copy for empty fields and every sample dataset against
// its chart's rules
func (s *Site) Validate() error {
	var errs []error

	for i, p := range s.Plans {
		if blank(p.Name, p.Price, p.CTA) || len(p.Features) == 0 {
			errs = append(errs, fmt.Errorf("plan %d: name, price, cta and features are required", i))
		}
	}
	for i, f := range s.Features {
		if blank(f.Title, f.Description) {
			errs = append(errs, fmt.Errorf("feature %d: title and description are required", i))
		}
	}
	for i, f := range s.FAQs {
		if blank(f.Question, f.Answer) {
			errs = append(errs, fmt.Errorf("faq %d: question and answer are required", i))
		}
	}
	for i, t := range s.Testimonials {
		if blank(t.Name, t.Quote) || t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %d: name, quote and a 1-5 rating are required", i))
		}
	}
	for i, c := range s.Stats {
		if blank(c.Title, c.Value) {
			errs = append(errs, fmt.Errorf("stat card %d: title and value are required", i))
		}
	}

	for _, kind := range chart.Kinds() {
		v, ok := s.charts[kind]
		if !ok {
			errs = append(errs, fmt.Errorf("no sample dataset for %s", kind))
			continue
		}
		if err := v.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s dataset: %w", kind, err))
		}
	}

	return errors.Join(errs...)
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
