package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/codeora/internal/application/port"
)

// PathEntry is one labelled filesystem location.
type PathEntry struct {
	Icon  string
	Label string
	Path  string
}

// RenderPaths lists labelled paths with aligned labels.
func (t *Theme) RenderPaths(entries []PathEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Label))
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		path := e.Path
		if path == "" {
			path = "(not set)"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Highlight.Render(e.Icon),
			t.Subtle.Render(fmt.Sprintf("%-*s", width, e.Label)),
			t.Normal.Render(path),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderDesktopStatus shows which launcher files exist.
func (t *Theme) RenderDesktopStatus(status *port.DesktopIntegrationStatus) string {
	mark := func(ok bool) string {
		if ok {
			return t.SuccessStyle.Render(IconCheck)
		}
		return t.Subtle.Render(IconX)
	}

	lines := []string{
		fmt.Sprintf("%s %s %s", mark(status.DesktopFileInstalled), t.Normal.Render("Launcher entry"), t.Subtle.Render(status.DesktopFilePath)),
		fmt.Sprintf("%s %s %s", mark(status.IconInstalled), t.Normal.Render("Icon"), t.Subtle.Render(status.IconFilePath)),
	}
	if status.ExecutablePath != "" {
		lines = append(lines, fmt.Sprintf("  %s %s", t.Subtle.Render("Exec"), t.Normal.Render(status.ExecutablePath)))
	}
	return strings.Join(lines, "\n")
}
