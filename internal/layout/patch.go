package layout

import "strings"

// Patch is a typed partial update. Nil groups and nil fields are left alone.
type Patch struct {
	ColorTheme *ColorPatch     `json:"colorTheme,omitempty"`
	FontStyle  *FontPatch      `json:"fontStyle,omitempty"`
	Animation  *AnimationPatch `json:"animation,omitempty"`
	Spacing    *SpacingPatch   `json:"spacing,omitempty"`
	Content    *ContentPatch   `json:"content,omitempty"`
	Brand      *Brand          `json:"brandType,omitempty"`
}

type ColorPatch struct {
	Primary    *string `json:"primary,omitempty"`
	Secondary  *string `json:"secondary,omitempty"`
	Background *string `json:"background,omitempty"`
}

type FontPatch struct {
	Heading *string `json:"heading,omitempty"`
	Body    *string `json:"body,omitempty"`
}

type AnimationPatch struct {
	Style    *string `json:"style,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Easing   *string `json:"easing,omitempty"`
}

type SpacingPatch struct {
	Base  *string `json:"base,omitempty"`
	Large *string `json:"large,omitempty"`
	Small *string `json:"small,omitempty"`
}

// ContentPatch replaces text fields. ProductImages, when non-nil, replaces the
// whole list and drops the old captions; AppendImages adds to the end of it.
// Captions pair with images by index and are kept the same length.
type ContentPatch struct {
	Title           *string   `json:"title,omitempty"`
	Tagline         *string   `json:"tagline,omitempty"`
	CTA             *string   `json:"cta,omitempty"`
	PromptText      *string   `json:"promptText,omitempty"`
	ProductImages   *[]string `json:"productImages,omitempty"`
	AppendImages    []string  `json:"appendImages,omitempty"`
	ProductCaptions *[]string `json:"productCaptions,omitempty"`
	AppendCaptions  []string  `json:"appendCaptions,omitempty"`
	BackgroundImage *string   `json:"backgroundImage,omitempty"`
}

// Str is a helper for building patches.
func Str(s string) *string { return &s }

// Apply returns cfg with p merged in, category by category. cfg is not modified.
func Apply(cfg Configuration, p Patch) Configuration {
	out := cfg.Clone()

	if c := p.ColorTheme; c != nil {
		set(&out.ColorTheme.Primary, c.Primary)
		set(&out.ColorTheme.Secondary, c.Secondary)
		set(&out.ColorTheme.Background, c.Background)
	}
	if f := p.FontStyle; f != nil {
		set(&out.FontStyle.Heading, f.Heading)
		set(&out.FontStyle.Body, f.Body)
	}
	if a := p.Animation; a != nil {
		if a.Style != nil {
			out.Animation.Style = AnimationStyle(strings.TrimSpace(*a.Style))
			out.Animation.Style = out.Animation.Preset()
		}
		set(&out.Animation.Duration, a.Duration)
		set(&out.Animation.Easing, a.Easing)
	}
	if s := p.Spacing; s != nil {
		set(&out.Spacing.Base, s.Base)
		set(&out.Spacing.Large, s.Large)
		set(&out.Spacing.Small, s.Small)
	}
	if c := p.Content; c != nil {
		setText(&out.Content.Title, c.Title)
		setText(&out.Content.Tagline, c.Tagline)
		setText(&out.Content.CTA, c.CTA)
		setText(&out.Content.PromptText, c.PromptText)
		if c.BackgroundImage != nil {
			out.Content.BackgroundImage = *c.BackgroundImage
		}
		if c.ProductImages != nil {
			out.Content.ProductImages = append([]string{}, (*c.ProductImages)...)
			out.Content.ProductCaptions = nil
		}
		if c.ProductCaptions != nil {
			out.Content.ProductCaptions = append([]string{}, (*c.ProductCaptions)...)
		}
		captions := alignCaptions(out.Content.ProductCaptions, len(out.Content.ProductImages))
		out.Content.ProductImages = append(out.Content.ProductImages, c.AppendImages...)
		captions = append(captions, c.AppendCaptions...)
		out.Content.ProductCaptions = alignCaptions(captions, len(out.Content.ProductImages))
	}
	if p.Brand != nil {
		out.Brand = *p.Brand
	}
	return out
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// setText keeps the previous value when the update is blank, so rendered
// pages never show empty copy.
func setText(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}

// alignCaptions returns captions cut or padded with "" to length n.
func alignCaptions(captions []string, n int) []string {
	out := make([]string, n)
	copy(out, captions)
	return out
}

func AppendImages(images ...string) Patch {
	return Patch{Content: &ContentPatch{AppendImages: images}}
}

// AddImages appends uploads together with their captions.
func AddImages(images ...Image) Patch {
	srcs := make([]string, len(images))
	captions := make([]string, len(images))
	for i, img := range images {
		srcs[i] = img.Src
		captions[i] = img.Caption
	}
	return Patch{Content: &ContentPatch{AppendImages: srcs, AppendCaptions: captions}}
}

func ClearImages() Patch {
	empty := []string{}
	return Patch{Content: &ContentPatch{ProductImages: &empty}}
}

func SetBrand(b Brand) Patch {
	return Patch{Brand: &b}
}
