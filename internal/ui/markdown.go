package ui

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	rendererMu          sync.Mutex
)

// RenderMarkdown renders markdown into styled terminal output wrapped at
// width. On renderer failure the raw markdown is returned.
func RenderMarkdown(markdown string, width int) string {
	if width <= 0 {
		width = 80
	}
	out, err := renderWithGlamour(markdown, width)
	if err != nil {
		return markdown
	}
	return out
}

// renderWithGlamour uses glamour to render markdown into styled terminal output.
func renderWithGlamour(markdown string, width int) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	// Recreate renderer only if width changed or not initialized.
	if cachedRenderer == nil || cachedRendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
	}

	return cachedRenderer.Render(markdown)
}
