package service

import (
	"github.com/jengzang/sendnow-backend-go/internal/content"
)

// ContentService serves the static marketing copy
type ContentService struct {
	site *content.Site
}

// NewContentService creates a content service
func NewContentService(site *content.Site) *ContentService {
	return &ContentService{site: site}
}

// All returns every section keyed by name
func (s *ContentService) All() map[string]interface{} {
	all := make(map[string]interface{}, len(content.Sections))
	for _, name := range content.Sections {
		v, _ := s.site.Section(name)
		all[name] = v
	}
	return all
}

// Section returns one section, or false when the name is unknown
func (s *ContentService) Section(name string) (interface{}, bool) {
	return s.site.Section(name)
}

// Sections lists the section names in page order
func (s *ContentService) Sections() []string {
	return content.Sections
}
