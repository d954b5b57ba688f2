package preview

import (
	"fmt"
	"strings"

	"github.com/phravins/pagecraft/internal/layout"
)

type variant struct {
	from string
	to   string
}

// Enter transitions, hidden state to visible state.
var variants = map[layout.AnimationStyle]variant{
	layout.SlideIn:   {from: "transform: translateX(100px); opacity: 0;", to: "transform: translateX(0); opacity: 1;"},
	layout.FadeIn:    {from: "opacity: 0;", to: "opacity: 1;"},
	layout.ScaleIn:   {from: "transform: scale(0.8); opacity: 0;", to: "transform: scale(1); opacity: 1;"},
	layout.SlideUp:   {from: "transform: translateY(50px); opacity: 0;", to: "transform: translateY(0); opacity: 1;"},
	layout.SlideDown: {from: "transform: translateY(-50px); opacity: 0;", to: "transform: translateY(0); opacity: 1;"},
}

// AnimationClass is the class that plays the configured enter transition.
func AnimationClass(a layout.Animation) string {
	return "pc-anim-" + string(a.Preset())
}

// AnimationCSS returns keyframes and classes for every preset.
func AnimationCSS() string {
	var b strings.Builder
	for _, style := range layout.AnimationStyles {
		v := variants[style]
		fmt.Fprintf(&b, "@keyframes pc-%s { from { %s } to { %s } }\n", style, v.from, v.to)
		fmt.Fprintf(&b, ".pc-anim-%s { animation-name: pc-%s; animation-fill-mode: both; }\n", style, style)
	}
	return b.String()
}
