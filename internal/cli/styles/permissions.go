package styles

import (
	"fmt"
	"time"

	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PermissionsRenderer renders stored permission decisions.
type PermissionsRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewPermissionsRenderer(theme *Theme) *PermissionsRenderer {
	return &PermissionsRenderer{theme: theme, now: time.Now}
}

// RenderList renders records as a table, one row per origin and type.
func (r *PermissionsRenderer) RenderList(records []*entity.PermissionRecord) string {
	header := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconShield), r.theme.Title.Render("Permissions"))
	if len(records) == 0 {
		return header + "\n\n" + r.theme.Subtle.Render("No stored permission decisions.")
	}

	now := r.now()
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		updated := time.Time{}
		if rec.UpdatedAt > 0 {
			updated = time.Unix(rec.UpdatedAt, 0)
		}
		rows = append(rows, []string{
			rec.Origin,
			string(rec.Type),
			string(rec.Decision),
			RelativeTime(updated, now),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("ORIGIN", "PERMISSION", "DECISION", "UPDATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(r.theme.Accent).Bold(true)
			}
			if col == 2 {
				return style.Inherit(r.decisionStyle(entity.PermissionDecision(rows[row][col])))
			}
			return style.Foreground(r.theme.Text)
		})

	return lipgloss.JoinVertical(lipgloss.Left, header, "", t.Render())
}

func (r *PermissionsRenderer) decisionStyle(d entity.PermissionDecision) lipgloss.Style {
	switch d {
	case entity.PermissionGranted:
		return r.theme.SuccessStyle
	case entity.PermissionDenied:
		return r.theme.ErrorStyle
	default:
		return r.theme.Subtle
	}
}

// RenderReset reports how many decisions were removed.
func (r *PermissionsRenderer) RenderReset(origin string, removed int64) string {
	scope := "all origins"
	if origin != "" {
		scope = origin
	}
	noun := "decisions"
	if removed == 1 {
		noun = "decision"
	}
	return fmt.Sprintf("%s Removed %s %s for %s",
		r.theme.WarningStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprint(removed)),
		noun,
		r.theme.Normal.Render(scope),
	)
}
