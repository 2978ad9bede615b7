package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Runtime   []DoctorRuntimeCheck
	// Services are optional: a failure is a warning, not an error.
	Services []DoctorServiceCheck
}

type DoctorRuntimeCheck struct {
	Name            string
	Installed       bool
	Version         string
	RequiredVersion string
	OK              bool
	Error           string
}

type DoctorServiceCheck struct {
	Name   string
	OK     bool
	Detail string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := []string{r.renderRuntime(report.Runtime)}
	if len(report.Services) > 0 {
		sections = append(sections, r.renderServices(report.Services))
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OverallOK), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderRuntime(checks []DoctorRuntimeCheck) string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		lines = append(lines, r.renderRuntimeCheck(c))
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Runtime", r.theme.Highlight.Render(IconPackage)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderRuntimeCheck(c DoctorRuntimeCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"
	summary := fmt.Sprintf("%s (>= %s)", c.Version, c.RequiredVersion)

	switch {
	case !c.Installed:
		icon, statusStyle, status = IconX, r.theme.ErrorStyle, "Missing"
		summary = c.Error
	case !c.OK && c.Error != "":
		icon, statusStyle, status = IconWarning, r.theme.WarningStyle, "Unknown"
		summary = fmt.Sprintf("%s: %s", c.Version, c.Error)
	case !c.OK:
		icon, statusStyle, status = IconWarning, r.theme.WarningStyle, "Too old"
		summary = fmt.Sprintf("have %s, need >= %s", c.Version, c.RequiredVersion)
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, r.theme.Subtle.Render(summary))
}

func (r *DoctorRenderer) renderServices(checks []DoctorServiceCheck) string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		icon, style := IconCheck, r.theme.SuccessStyle
		if !c.OK {
			icon, style = IconWarning, r.theme.WarningStyle
		}
		line := fmt.Sprintf("%s %s", style.Render(icon), r.theme.Normal.Render(c.Name))
		if c.Detail != "" {
			line += "\n  " + r.theme.Subtle.Render(c.Detail)
		}
		lines = append(lines, line)
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Desktop", r.theme.Highlight.Render(IconGlobe)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}
