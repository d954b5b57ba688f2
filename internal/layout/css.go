package layout

import "strings"

var cssStrip = strings.NewReplacer(
	";", "", "{", "", "}", "", "<", "", ">", "",
	"\n", " ", "\r", " ",
)

// CSSValue makes s safe to place as a single declaration value. Characters
// that could end the declaration or the enclosing rule are dropped.
func CSSValue(s string) string {
	return strings.TrimSpace(cssStrip.Replace(s))
}

var cssURLStrip = strings.NewReplacer(`"`, "", `\`, "", "\n", "", "\r", "")

// CSSURL wraps s as a quoted url() value.
func CSSURL(s string) string {
	return `url("` + cssURLStrip.Replace(s) + `")`
}

var cssFontStrip = strings.NewReplacer("<", "", ">", "", "\n", " ", "\r", " ")
var cssStringEscape = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// CSSFontFamily quotes a family name as a CSS string, so names such as
// "Source Sans 3" stay valid. Blank input gives "".
func CSSFontFamily(name string) string {
	name = strings.TrimSpace(cssFontStrip.Replace(name))
	if name == "" {
		return ""
	}
	return `"` + cssStringEscape.Replace(name) + `"`
}
