package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/lifecast/internal/content"
	"github.com/kingrea/lifecast/internal/engine"
)

const barWidth = 28

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	identityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginTop(1)
	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))
)

// Report assembles the default console view: header, narrative, rationale,
// and — when an aggregate is present — the probability outlook.
func Report(pack content.Pack, name, timeline string, p engine.PickSet, agg *engine.Aggregate) string {
	var sections []string
	sections = append(sections, titleStyle.Render("Life Goals Predictor 2050 📅"))
	sections = append(sections, identityStyle.Render(fmt.Sprintf("Name: %s | Timeline: %s", name, timeline)))
	sections = append(sections, "")
	sections = append(sections, Narrative(pack, name, timeline, p))
	sections = append(sections, sectionStyle.Render("Why this result:"))
	for _, line := range Rationale(p) {
		sections = append(sections, bulletStyle.Render(" - "+line))
	}
	if agg != nil {
		sections = append(sections, sectionStyle.Render("Probability outlook (Monte Carlo):"))
		sections = append(sections, ProbBars(agg, barWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ProbBars renders per-domain frequency bars for the top six traits of each
// domain, most frequent first.
func ProbBars(agg *engine.Aggregate, width int) string {
	total := agg.Trials
	if total < 1 {
		total = 1
	}
	var lines []string
	for _, domain := range content.Domains {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("[%s]", strings.ToUpper(string(domain))))
		for _, entry := range agg.Tally(domain).Top(6) {
			share := float64(entry.Count) / float64(total)
			bars := strings.Repeat("█", int(share*float64(width)))
			lines = append(lines, fmt.Sprintf(" - %-20s %5.1f%% %s", entry.ID, share*100, bars))
		}
	}
	return strings.Join(lines, "\n")
}
