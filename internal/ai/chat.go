package ai

import (
	"github.com/spf13/cobra"
)

// AICmd groups commands about the text generation backend. Subcommands that
// need a concrete provider are attached by main.
var AICmd = &cobra.Command{
	Use:   "ai",
	Short: "Text generation backend commands",
	Long:  "Inspect and try the backend that writes title, tagline and CTA copy",
}
