package layout

import (
	"net/url"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FontCatalog is the set of web font families offered by the font pickers.
var FontCatalog = []string{
	"Playfair Display",
	"Roboto",
	"Inter",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Poppins",
	"Raleway",
	"Merriweather",
	"Lora",
	"Nunito",
	"Oswald",
	"Source Sans 3",
	"DM Sans",
	"Work Sans",
	"Cormorant Garamond",
	"Libre Baskerville",
	"Space Grotesk",
}

var lowerCatalog = func() []string {
	out := make([]string, len(FontCatalog))
	for i, f := range FontCatalog {
		out[i] = strings.ToLower(f)
	}
	return out
}()

// ResolveFont maps loose input ("playfair", "opensans") to a catalog family.
// Input that matches nothing is returned trimmed but otherwise unchanged.
func ResolveFont(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return q
	}
	lq := strings.ToLower(q)
	for i, f := range lowerCatalog {
		if f == lq {
			return FontCatalog[i]
		}
	}
	matches := fuzzy.Find(strings.ReplaceAll(lq, " ", ""), lowerCatalog)
	if len(matches) == 0 {
		return q
	}
	return FontCatalog[matches[0].Index]
}

// FontStylesheetURL builds the web font stylesheet link for both families.
func FontStylesheetURL(f FontStyle) string {
	var families []string
	seen := map[string]bool{}
	for _, name := range []string{f.Heading, f.Body} {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		families = append(families, "family="+strings.ReplaceAll(url.PathEscape(name), "%20", "+"))
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(append(families, "display=swap"), "&")
}

// ResolveFonts returns p with its font families mapped through ResolveFont.
func (p Patch) ResolveFonts() Patch {
	if p.FontStyle == nil {
		return p
	}
	fs := *p.FontStyle
	if fs.Heading != nil {
		fs.Heading = Str(ResolveFont(*fs.Heading))
	}
	if fs.Body != nil {
		fs.Body = Str(ResolveFont(*fs.Body))
	}
	p.FontStyle = &fs
	return p
}
