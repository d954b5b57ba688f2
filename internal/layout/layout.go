// Package layout holds the landing-page configuration and the operations that
// change it. A Configuration is a value; every change goes through Apply.
package layout

import (
	"fmt"
	"strings"
)

// AnimationStyle names one of the enter-transition presets.
type AnimationStyle string

const (
	FadeIn    AnimationStyle = "fade-in"
	SlideIn   AnimationStyle = "slide-in"
	ScaleIn   AnimationStyle = "scale-in"
	SlideUp   AnimationStyle = "slide-up"
	SlideDown AnimationStyle = "slide-down"
)

// AnimationStyles lists the presets in menu order.
var AnimationStyles = []AnimationStyle{FadeIn, SlideIn, ScaleIn, SlideUp, SlideDown}

// Brand is the keyword category a prompt was matched to.
type Brand string

const (
	BrandFood    Brand = "food"
	BrandFashion Brand = "fashion"
	BrandTech    Brand = "tech"
	BrandBeauty  Brand = "beauty"
	BrandFitness Brand = "fitness"
)

type ColorTheme struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Background string `json:"background" yaml:"background"`
}

type FontStyle struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

type Animation struct {
	Style    AnimationStyle `json:"style" yaml:"style"`
	Duration string         `json:"duration" yaml:"duration"`
	Easing   string         `json:"easing" yaml:"easing"`
}

// Preset returns the style if it is known, fade-in otherwise.
func (a Animation) Preset() AnimationStyle {
	if IsAnimationStyle(string(a.Style)) {
		return a.Style
	}
	return FadeIn
}

func IsAnimationStyle(s string) bool {
	for _, st := range AnimationStyles {
		if string(st) == s {
			return true
		}
	}
	return false
}

type Spacing struct {
	Base  string `json:"base" yaml:"base"`
	Large string `json:"large" yaml:"large"`
	Small string `json:"small" yaml:"small"`
}

type Content struct {
	Title           string   `json:"title" yaml:"title"`
	Tagline         string   `json:"tagline" yaml:"tagline"`
	CTA             string   `json:"cta" yaml:"cta"`
	PromptText      string   `json:"promptText" yaml:"prompt_text"`
	ProductImages   []string `json:"productImages" yaml:"product_images"`
	ProductCaptions []string `json:"productCaptions" yaml:"product_captions"`
	BackgroundImage string   `json:"backgroundImage,omitempty" yaml:"background_image,omitempty"`
}

// ProductCaption is the caption of product image i, or "Product N" when the
// image has none.
func (c Content) ProductCaption(i int) string {
	if i < len(c.ProductCaptions) && strings.TrimSpace(c.ProductCaptions[i]) != "" {
		return c.ProductCaptions[i]
	}
	return fmt.Sprintf("Product %d", i+1)
}

// Configuration describes the page being generated.
type Configuration struct {
	ColorTheme ColorTheme `json:"colorTheme" yaml:"color_theme"`
	FontStyle  FontStyle  `json:"fontStyle" yaml:"font_style"`
	Animation  Animation  `json:"animation" yaml:"animation"`
	Spacing    Spacing    `json:"spacing" yaml:"spacing"`
	Content    Content    `json:"content" yaml:"content"`
	Brand      Brand      `json:"brandType,omitempty" yaml:"brand_type,omitempty"`
}

// Default returns the configuration a session starts with.
func Default() Configuration {
	return Configuration{
		ColorTheme: ColorTheme{
			Primary:    "#4F46E5",
			Secondary:  "#333333",
			Background: "#ffffff",
		},
		FontStyle: FontStyle{
			Heading: "Playfair Display",
			Body:    "Roboto",
		},
		Animation: Animation{
			Style:    FadeIn,
			Duration: "0.3s",
			Easing:   "ease-in-out",
		},
		Spacing: Spacing{
			Base:  "1rem",
			Large: "2rem",
			Small: "0.5rem",
		},
		Content: Content{
			Title:           "Shop the Look",
			Tagline:         "Discover our latest collection",
			CTA:             "Explore Now",
			PromptText:      "Find your perfect style",
			ProductImages:   []string{},
			ProductCaptions: []string{},
		},
	}
}

// Clone returns a copy that shares no slices with c.
func (c Configuration) Clone() Configuration {
	out := c
	out.Content.ProductImages = append([]string{}, c.Content.ProductImages...)
	out.Content.ProductCaptions = append([]string{}, c.Content.ProductCaptions...)
	return out
}

// BrandOr returns the brand or fallback when none was detected.
func (c Configuration) BrandOr(fallback Brand) Brand {
	if c.Brand == "" {
		return fallback
	}
	return c.Brand
}
