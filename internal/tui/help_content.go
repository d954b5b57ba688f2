package tui

// GeneratorHelp is shown with Ctrl+H or ? in the generator.
const GeneratorHelp = `
# Pagecraft - Help & Usage Guide

## Overview

Describe a brand, let the text generation backend write a title, tagline and
call to action, then export the layout as React, Shopify Liquid or static HTML.
When the backend is unavailable the copy falls back to keyword defaults for
food, fashion, tech, beauty and fitness brands.

## Prompt screen

| Key | Description |
|---|---|
| Ctrl+D | Generate copy for the description |
| Ctrl+O | Add product images by path |
| Ctrl+H | Show this help |
| Esc | Clear the prompt, or go back |

## Result screen

| Key | Description |
|---|---|
| Tab / F | Cycle export format |
| S | Toggle the configuration summary |
| A | Cycle animation preset |
| I | Add product images |
| X | Clear product images |
| Z | Save export.zip to the output directory |
| C | Copy the current source to the clipboard |
| N / Esc | Write a new prompt |
| R | Reset the layout to defaults |
| Q | Quit |

## Tips

- Mention the kind of business ("restaurant", "skincare", "gym") to get
  matching fallback copy.
- Images larger than 5 MB or that are not images are skipped and listed in
  the status line.
- ` + "`pagecraft serve`" + ` opens the same layout in a browser with a live preview.
`

// RenderHelp renders markdown help for a pane of the given width.
func RenderHelp(content string, width int) string {
	return renderMarkdown(content, width-4)
}

// SettingsHelp documents the settings form.
const SettingsHelp = `
# Settings

Settings are written to ` + "`~/.pagecraft.yaml`" + `. Environment variables with the
` + "`PAGECRAFT_`" + ` prefix override the file, and ` + "`HF_ACCESS_TOKEN`" + ` is read from the
environment or a ` + "`.env`" + ` file in the working directory.

| Field | Meaning |
|---|---|
| AI Backend | huggingface (default), ollama, openai, mistral, groq, deepseek, lmstudio |
| AI Model | Model id; empty uses the backend default |
| API Key | Access token; for Hugging Face it is stored as hf_access_token |
| Base URL | Override the endpoint, e.g. a local OpenAI compatible server |
| Output Dir | Where export.zip is saved |
| Default Format | react, shopify or html |
`
