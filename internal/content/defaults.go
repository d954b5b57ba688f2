package content

import (
	"strings"

	"github.com/phravins/pagecraft/internal/layout"
)

// Copy is a title/tagline/CTA triple.
type Copy struct {
	Title   string
	Tagline string
	CTA     string
}

type rule struct {
	brand    layout.Brand
	keywords []string
	copy     Copy
}

// rules are tested top to bottom; the first rule with a keyword contained in
// the lowercased prompt wins.
var rules = []rule{
	{
		brand:    layout.BrandFood,
		keywords: []string{"food", "restaurant"},
		copy:     Copy{"Culinary Excellence", "Where Every Flavor Tells a Story", "Explore Our Menu"},
	},
	{
		brand:    layout.BrandFashion,
		keywords: []string{"fashion", "clothing"},
		copy:     Copy{"Fashion Forward", "Express Your Authentic Style", "Discover the Collection"},
	},
	{
		brand:    layout.BrandTech,
		keywords: []string{"tech", "software"},
		copy:     Copy{"Innovation Hub", "Shaping Tomorrow's Solutions", "Start Innovating"},
	},
	{
		brand:    layout.BrandBeauty,
		keywords: []string{"beauty", "cosmetic"},
		copy:     Copy{"Beauty Redefined", "Reveal Your Natural Radiance", "Begin Your Journey"},
	},
	{
		brand:    layout.BrandFitness,
		keywords: []string{"fitness", "health"},
		copy:     Copy{"Wellness Journey", "Transform Your Life, One Step at a Time", "Start Your Transformation"},
	},
}

var genericCopy = Copy{"Brand Experience", "Elevate Your Experience", "Experience Now"}

// Classify returns the brand whose keywords match prompt first, or "".
func Classify(prompt string) layout.Brand {
	if r, ok := match(prompt); ok {
		return r.brand
	}
	return ""
}

// Defaults returns the canned copy for prompt.
func Defaults(prompt string) Copy {
	if r, ok := match(prompt); ok {
		return r.copy
	}
	return genericCopy
}

func DefaultTitle(prompt string) string   { return Defaults(prompt).Title }
func DefaultTagline(prompt string) string { return Defaults(prompt).Tagline }
func DefaultCTA(prompt string) string     { return Defaults(prompt).CTA }

func match(prompt string) (rule, bool) {
	lower := strings.ToLower(prompt)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r, true
			}
		}
	}
	return rule{}, false
}
